package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
)

const (
	EnvDecks = "BLACKJACK_DECKS"
	EnvSeed  = "BLACKJACK_SEED"
	EnvDebug = "BLACKJACK_DEBUG"
)

// Config holds the settings of a console session
type Config struct {
	Decks              int   // 0 asks the player at startup
	Seed               int64 // 0 means a non-deterministic shoe
	ReshuffleThreshold int
	Debug              bool
}

// Default returns the configuration used when nothing is set
func Default() Config {
	return Config{
		ReshuffleThreshold: domain.DefaultReshuffleThreshold,
	}
}

// FromEnv overlays the BLACKJACK_* environment variables on cfg
func FromEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvDecks); ok && v != "" {
		decks, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDecks, err)
		}
		cfg.Decks = decks
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}

	return cfg, nil
}

// Load reads the environment, then the command line flags in args. Flags win.
func Load(args []string, stderr io.Writer) (Config, error) {
	cfg, err := FromEnv(Default(), os.LookupEnv)
	if err != nil {
		return cfg, err
	}
	return FromFlags(cfg, args, stderr)
}

// FromFlags parses args on top of cfg and validates the result
func FromFlags(cfg Config, args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("blackjack", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.IntVar(&cfg.Decks, "decks", cfg.Decks, "number of decks in the shoe (1-8, 0 to ask)")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for a reproducible shoe (0 for random)")
	fs.IntVar(&cfg.ReshuffleThreshold, "threshold", cfg.ReshuffleThreshold, "rebuild the shoe when fewer cards remain")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "log every game event and dump the event log on exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration. Decks may be 0, meaning the player is asked.
func (c Config) Validate() error {
	var errs []error
	if c.Decks != 0 && (c.Decks < cards.MinDecks || c.Decks > cards.MaxDecks) {
		errs = append(errs, fmt.Errorf("%w: decks must be between %d and %d, got %d",
			cards.ErrInvalidConfiguration, cards.MinDecks, cards.MaxDecks, c.Decks))
	}
	if err := c.SessionRules().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SessionRules converts the configuration into engine session rules
func (c Config) SessionRules() domain.SessionRules {
	rules := domain.DefaultSessionRules()
	rules.ReshuffleThreshold = c.ReshuffleThreshold
	return rules
}

// HasSeed reports whether the shoe should be reproducible
func (c Config) HasSeed() bool {
	return c.Seed != 0
}

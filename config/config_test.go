package config

import (
	"bytes"
	"flag"
	"testing"

	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 0, cfg.Decks)
	assert.Equal(t, 15, cfg.ReshuffleThreshold)
	assert.False(t, cfg.HasSeed())
	assert.NoError(t, cfg.Validate())
}

func TestFromFlags(t *testing.T) {
	var stderr bytes.Buffer

	cfg, err := FromFlags(Default(), []string{"-decks", "6", "-seed", "42", "-threshold", "20", "-debug"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Decks)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.HasSeed())
	assert.Equal(t, 20, cfg.ReshuffleThreshold)
	assert.True(t, cfg.Debug)
	assert.Equal(t, domain.SessionRules{ReshuffleThreshold: 20, RebuildDecks: 1}, cfg.SessionRules())
}

func TestFromFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"too many decks", []string{"-decks", "9"}},
		{"negative decks", []string{"-decks", "-1"}},
		{"threshold too small", []string{"-threshold", "3"}},
		{"unknown flag", []string{"-bets", "10"}},
		{"positional argument", []string{"extra"}},
		{"not a number", []string{"-decks", "six"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			_, err := FromFlags(Default(), tt.args, &stderr)
			assert.Error(t, err)
		})
	}
}

func TestFromFlags_InvalidDecksIsInvalidConfiguration(t *testing.T) {
	var stderr bytes.Buffer
	_, err := FromFlags(Default(), []string{"-decks", "12"}, &stderr)
	assert.ErrorIs(t, err, cards.ErrInvalidConfiguration)
}

func TestFromFlags_Help(t *testing.T) {
	var stderr bytes.Buffer
	_, err := FromFlags(Default(), []string{"-h"}, &stderr)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "-decks")
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(Default(), env(map[string]string{
		EnvDecks: "4",
		EnvSeed:  "7",
		EnvDebug: "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Decks)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Debug)
}

func TestFromEnv_Invalid(t *testing.T) {
	_, err := FromEnv(Default(), env(map[string]string{EnvDecks: "lots"}))
	assert.ErrorContains(t, err, EnvDecks)

	_, err = FromEnv(Default(), env(map[string]string{EnvSeed: "x"}))
	assert.ErrorContains(t, err, EnvSeed)

	_, err = FromEnv(Default(), env(map[string]string{EnvDebug: "maybe"}))
	assert.ErrorContains(t, err, EnvDebug)
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := FromEnv(Default(), env(map[string]string{EnvDecks: "4"}))
	require.NoError(t, err)

	var stderr bytes.Buffer
	cfg, err = FromFlags(cfg, []string{"-decks", "2"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Decks)
}

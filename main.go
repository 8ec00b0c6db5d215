package main

import (
	"errors"
	"flag"
	"os"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/console"
)

func main() {
	cfg, err := config.Load(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	logger := console.NewLogger(os.Stderr, cfg.Debug)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	if _, err := console.New(cfg, os.Stdin, os.Stdout, logger).Run(); err != nil {
		logger.Error("session ended with an error", "error", err)
		os.Exit(1)
	}
}

package console

import (
	"io"
	"log/slog"

	"github.com/pterm/pterm"
)

// NewLogger creates a slog logger printing through pterm to w
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := pterm.LogLevelInfo
	if debug {
		level = pterm.LogLevelDebug
	}

	logger := pterm.DefaultLogger.WithWriter(w).WithLevel(level)
	return slog.New(pterm.NewSlogHandler(logger))
}

// Package logging builds the process-wide slog logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pokemon-5e/internal/config"
)

// New returns a logger writing to w at the configured level and format.
// Unknown levels fall back to info, unknown formats to text.
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// Install builds a logger with New and makes it the slog default.
func Install(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	logger := New(cfg, w)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

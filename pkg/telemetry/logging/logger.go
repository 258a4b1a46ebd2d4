// Package logging provides structured logging setup for Mercator Themis
// built on log/slog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"mercator-hq/themis/pkg/config"
)

// New creates a slog.Logger from configuration. Format "json" uses the JSON
// handler, "text" the text handler. Writer defaults to os.Stdout when nil.
func New(cfg config.LoggingConfig, writer io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	if writer == nil {
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(writer, opts)
	case "json", "":
		handler = slog.NewJSONHandler(writer, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q: must be one of json, text", cfg.Format)
	}

	return slog.New(handler), nil
}

// Setup creates a logger from configuration and installs it as the process
// default so package-level slog calls use it.
func Setup(cfg config.LoggingConfig) (*slog.Logger, error) {
	logger, err := New(cfg, nil)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

// Component returns a child logger tagged with a component name for
// correlation.
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("component", name)
}

// parseLevel parses a log level string.
func parseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
	}
}

// Package logging builds the charmbracelet/log logger used across the CLI.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"todo/internal/config"
)

// Prefix is printed before every log line.
const Prefix = "todo"

// Options holds configuration for the logger.
type Options struct {
	Level           log.Level
	Formatter       log.Formatter
	ReportTimestamp bool
}

// OptionsFromConfig derives logger options from cfg.
// Debug forces the debug level.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Level:     ParseLevel(cfg.LogLevel),
		Formatter: ParseFormatter(cfg.LogFormat),
	}
	if cfg.Debug {
		opts.Level = log.DebugLevel
		opts.ReportTimestamp = true
	}
	return opts
}

// New creates a logger writing to w, tagged with a fresh session id.
func New(w io.Writer, opts Options) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Level:           opts.Level,
		Formatter:       opts.Formatter,
		ReportTimestamp: opts.ReportTimestamp,
		Prefix:          Prefix,
	})
	return logger.With("session", uuid.NewString())
}

// ParseLevel parses a string log level to a charmbracelet/log Level.
func ParseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}

// ParseFormatter parses a string formatter name to a charmbracelet/log Formatter.
func ParseFormatter(format string) log.Formatter {
	switch format {
	case "json":
		return log.JSONFormatter
	case "logfmt":
		return log.LogfmtFormatter
	default:
		return log.TextFormatter
	}
}

// Package config handles the XDG configuration directory and config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional TOML config filename.
	ConfigFile = "config.toml"

	// DefaultMaxInput is the input buffer size; one byte is reserved,
	// so lines keep at most 99 bytes.
	DefaultMaxInput = 100

	// DefaultPrompt is printed before each menu choice is read.
	DefaultPrompt = "> "

	// DefaultLogLevel keeps the menu output free of log lines.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is the charmbracelet/log text formatter.
	DefaultLogFormat = "text"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat is one of text, json, logfmt.
	LogFormat string `toml:"log_format"`

	// MaxInput is the input buffer size in bytes, terminator included.
	MaxInput int `toml:"max_input"`

	// Prompt is printed before each menu choice.
	Prompt string `toml:"prompt"`
}

// New creates a Config with defaults for the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	cfg := &Config{Dir: dir}
	setDefaults(cfg)
	return cfg, nil
}

// Load creates a Config and applies, in order, the config file in the
// config directory and environment variables.
// A missing config file is not an error.
func Load(configDir string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.loadFile(); err != nil {
		return nil, err
	}
	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// FilePath returns the path to the config file.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// Validate checks settings that the shell depends on.
func (c *Config) Validate() error {
	if c.MaxInput < 2 {
		return fmt.Errorf("max_input must be at least 2, got %d", c.MaxInput)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level: %s", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("unknown log format: %s", c.LogFormat)
	}
	return nil
}

func setDefaults(c *Config) {
	c.LogLevel = DefaultLogLevel
	c.LogFormat = DefaultLogFormat
	c.MaxInput = DefaultMaxInput
	c.Prompt = DefaultPrompt
}

// loadFile decodes the TOML config file over the current values.
func (c *Config) loadFile() error {
	path := c.FilePath()
	if _, err := toml.DecodeFile(path, c); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading config file %s: %w", path, err)
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func (c *Config) loadFromEnv() error {
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("TODO_LOG_FORMAT"); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("TODO_QUIET"); v != "" {
		quiet, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TODO_QUIET: %s", v)
		}
		c.Quiet = quiet
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/service"
	"todo/internal/shell"
	"todo/internal/ui"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// StoreFactory creates the task store for a session.
// Used to inject the backend during dispatch.
type StoreFactory func() service.Service

// TUIRunner runs the full-screen interface.
type TUIRunner func(ctx context.Context, cfg *config.Config, svc service.Service) error

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  StoreFactory
	tui      TUIRunner
}

// NewDispatcher creates a new dispatcher with the given registry and store factory.
func NewDispatcher(registry *commands.Registry, factory StoreFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		tui:      ui.RunTUI,
	}
}

// SetTUIRunner replaces the TUI entry point (for testing).
func (d *Dispatcher) SetTUIRunner(run TUIRunner) {
	d.tui = run
}

// Run parses arguments and runs the selected mode.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	// No args -> interactive menu
	mode := "menu"
	if len(args) > 0 {
		mode = args[0]
		args = args[1:]
	}

	// If first token starts with -, it's an error (flags require a mode)
	if strings.HasPrefix(mode, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", mode)
		return exitcode.UserError
	}

	switch mode {
	case "help":
		fmt.Fprint(out, helpText)
		return exitcode.Success
	case "version":
		fmt.Fprintf(out, "todo %s\n", Version)
		return exitcode.Success
	case "menu", "tui":
	default:
		fmt.Fprintf(errOut, "error: unknown command: %s\n", mode)
		return exitcode.UserError
	}

	cfg, code := d.loadConfig(args, errOut)
	if code != exitcode.Success {
		return code
	}

	logger := logging.New(errOut, logging.OptionsFromConfig(cfg))
	svc := service.WithLogger(d.factory(), logger)
	logger.Debug("session started", "mode", mode, "config", cfg.FilePath())

	var err error
	if mode == "tui" {
		err = d.tui(ctx, cfg, svc)
	} else {
		err = shell.New(d.registry, cfg, svc, logger, in, out).Run(ctx)
	}

	switch {
	case err == nil:
		return exitcode.Success
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(errOut, "error: interrupted")
		return exitcode.Interrupted
	default:
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.IOError
	}
}

// loadConfig parses common flags and loads the config they point at.
// Flags override the config file and environment.
func (d *Dispatcher) loadConfig(args []string, errOut io.Writer) (*config.Config, int) {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet("todo", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var configDir, logLevel, logFormat string
	var quiet, debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")
	fs.StringVar(&logLevel, "log-level", "", "")
	fs.StringVar(&logFormat, "log-format", "", "")

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return nil, exitcode.UserError
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", fs.Arg(0))
		return nil, exitcode.UserError
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return nil, exitcode.ConfigError
	}

	// Only flags given on the command line override loaded values
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "quiet":
			cfg.Quiet = quiet
		case "debug":
			cfg.Debug = debug
		case "log-level":
			cfg.LogLevel = strings.ToLower(logLevel)
		case "log-format":
			cfg.LogFormat = strings.ToLower(logFormat)
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return nil, exitcode.UserError
	}

	return cfg, exitcode.Success
}

const helpText = `Usage:
  todo [common flags]          Run the interactive menu
  todo menu [common flags]     Run the interactive menu
  todo tui [common flags]      Run the full-screen interface
  todo help
  todo version

Menu:
  1. Add task                  (add, create)
  2. List all tasks            (list, ls)
  3. Mark a task as completed  (done, complete)
  4. Edit task                 (edit, update)
  5. Delete task               (rm, delete)
  6. Exit                      (exit, quit, q)
  ?  Show options              (help, h)

Common flags:
  --config <dir>        Override config directory
  --quiet               Suppress informational output
  --debug               Print debug logs to stderr
  --log-level <level>   debug, info, warn or error
  --log-format <fmt>    text, json or logfmt
`

// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (unknown command, bad flags).
	UserError = 1

	// ConfigError indicates an unreadable or invalid configuration.
	ConfigError = 2

	// IOError indicates a terminal or input failure.
	IOError = 3

	// Interrupted indicates the session was cancelled by a signal.
	Interrupted = 130
)

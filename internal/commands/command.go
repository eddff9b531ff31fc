// Package commands provides the menu command interface and implementations.
package commands

import (
	"context"
	"errors"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

// ErrExit is returned by a command to end the menu loop.
var ErrExit = errors.New("exit")

// Prompter reads the answer to a prompt.
type Prompter interface {
	// Prompt prints label and reads one line of input.
	// The line terminator is removed. Returns io.EOF when input ends.
	Prompt(label string) (string, error)
}

// Command defines the interface for menu commands.
type Command interface {
	// Key returns the menu number, or "" for commands not shown in the menu.
	Key() string

	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns the menu label.
	Synopsis() string

	// Run executes the command.
	// cfg is always provided.
	// in reads any further input the command needs.
	// User-facing failures are printed to out and Run returns nil;
	// a non-nil error ends the menu loop (ErrExit, io.EOF, context errors).
	Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error
}

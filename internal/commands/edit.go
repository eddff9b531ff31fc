package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Key() string       { return "4" }
func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Edit task" }

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error {
	pos, err := readPosition(in)
	if err != nil {
		return reportError(out, err)
	}

	// The new text is read before the bounds check.
	desc, err := in.Prompt("Enter edited task: ")
	if err != nil {
		return err
	}

	if err := svc.Edit(pos, desc); err != nil {
		return reportError(out, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, output.MsgUpdated)
	}
	return nil
}

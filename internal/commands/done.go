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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Key() string       { return "3" }
func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string  { return "Mark a task as completed" }

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error {
	pos, err := readPosition(in)
	if err != nil {
		return reportError(out, err)
	}

	if err := svc.MarkCompleted(pos); err != nil {
		return reportError(out, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, output.MsgCompleted)
	}
	return nil
}

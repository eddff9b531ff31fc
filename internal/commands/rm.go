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
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Key() string       { return "5" }
func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete task" }

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error {
	pos, err := readPosition(in)
	if err != nil {
		return reportError(out, err)
	}

	if err := svc.Delete(pos); err != nil {
		return reportError(out, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, output.MsgDeleted)
	}
	return nil
}

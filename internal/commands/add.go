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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Key() string       { return "1" }
func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Add task" }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error {
	// Descriptions are stored as entered, including empty ones
	desc, err := in.Prompt("Enter task: ")
	if err != nil {
		return err
	}

	svc.Add(desc)

	if !cfg.Quiet {
		fmt.Fprintln(out, output.MsgAdded)
	}
	return nil
}

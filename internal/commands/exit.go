package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd ends the menu loop.
type ExitCmd struct{}

func (c *ExitCmd) Key() string       { return "6" }
func (c *ExitCmd) Name() string      { return "exit" }
func (c *ExitCmd) Aliases() []string { return []string{"quit", "q"} }
func (c *ExitCmd) Synopsis() string  { return "Exit" }

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error {
	return ErrExit
}

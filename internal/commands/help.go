package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

func init() {
	Register(&HelpCmd{Registry: DefaultRegistry})
}

// HelpCmd reprints the menu of Registry.
type HelpCmd struct {
	Registry *Registry
}

func (c *HelpCmd) Key() string       { return "" }
func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return []string{"h", "?"} }
func (c *HelpCmd) Synopsis() string  { return "Show options" }

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error {
	PrintMenu(out, c.Registry)
	return nil
}

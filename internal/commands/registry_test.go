package commands

import (
	"context"
	"io"
	"strings"
	"testing"

	"todo/internal/config"
	"todo/internal/service"
)

type stubCmd struct {
	key, name string
	aliases   []string
}

func (c *stubCmd) Key() string       { return c.key }
func (c *stubCmd) Name() string      { return c.name }
func (c *stubCmd) Aliases() []string { return c.aliases }
func (c *stubCmd) Synopsis() string  { return "stub " + c.name }
func (c *stubCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in Prompter, out io.Writer) error {
	return nil
}

func TestRegistry_FindByKeyNameAlias(t *testing.T) {
	for _, name := range []string{"1", "add", "create", "6", "exit", "q", "?", "help"} {
		if _, ok := DefaultRegistry.Find(name); !ok {
			t.Errorf("expected %q to resolve", name)
		}
	}
	if _, ok := DefaultRegistry.Find("7"); ok {
		t.Error("expected 7 to be unknown")
	}
}

func TestRegistry_DuplicateKey(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&stubCmd{key: "1", name: "one"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register(&stubCmd{key: "1", name: "uno"})
	if err == nil || !strings.Contains(err.Error(), "already registered: 1") {
		t.Errorf("expected duplicate key error, got %v", err)
	}
	// A failed registration leaves no partial entries behind.
	if _, ok := r.Find("uno"); ok {
		t.Error("expected uno not to be registered")
	}
}

func TestRegistry_DuplicateAlias(t *testing.T) {
	r := NewRegistry()
	_ = r.Register(&stubCmd{name: "one", aliases: []string{"x"}})
	if err := r.Register(&stubCmd{name: "two", aliases: []string{"x"}}); err == nil {
		t.Error("expected duplicate alias error")
	}
}

func TestRegistry_MenuOrder(t *testing.T) {
	r := NewRegistry()
	for _, c := range []*stubCmd{
		{key: "10", name: "ten"},
		{key: "2", name: "two"},
		{name: "hidden"},
		{key: "1", name: "one", aliases: []string{"first"}},
	} {
		if err := r.Register(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	var names []string
	for _, c := range r.Menu() {
		names = append(names, c.Name())
	}
	if strings.Join(names, ",") != "one,two,ten" {
		t.Errorf("expected one,two,ten, got %v", names)
	}
}

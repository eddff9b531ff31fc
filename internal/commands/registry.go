package commands

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"

	"todo/internal/output"
)

// Registry holds registered commands.
type Registry struct {
	mu   sync.RWMutex
	cmds map[string]Command // key, name and aliases map to command
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Returns an error if the key, name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := []string{c.Name()}
	if c.Key() != "" {
		names = append(names, c.Key())
	}
	names = append(names, c.Aliases()...)

	for _, name := range names {
		if _, exists := r.cmds[name]; exists {
			return fmt.Errorf("command already registered: %s", name)
		}
	}
	for _, name := range names {
		r.cmds[name] = c
	}

	return nil
}

// Find looks up a command by menu key, name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Menu returns the commands that have a menu key, in key order.
func (r *Registry) Menu() []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		if cmd.Key() != "" {
			seen[cmd.Key()] = cmd
		}
	}

	result := make([]Command, 0, len(seen))
	for _, cmd := range seen {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return keyLess(result[i].Key(), result[j].Key())
	})
	return result
}

// keyLess orders numeric keys numerically and everything else lexically.
func keyLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}
	return a < b
}

// PrintMenu writes the numbered menu for r.
func PrintMenu(w io.Writer, r *Registry) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.MenuHeader)
	for _, cmd := range r.Menu() {
		output.FormatMenuItem(w, cmd.Key(), cmd.Synopsis())
	}
}

// DefaultRegistry is the global command registry.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}

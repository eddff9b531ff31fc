// Package ui provides an optional full-screen terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	doneStyle    = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	inputStyle   = lipgloss.NewStyle().Bold(true)
)

// RunTUI starts the TUI over svc.
func RunTUI(ctx context.Context, cfg *config.Config, svc service.Service) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}
	program := tea.NewProgram(NewModel(cfg, svc), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAdd
	modeEdit
)

// Model is the bubbletea model for the task list.
type Model struct {
	cfg      *config.Config
	svc      service.Service
	entries  []service.Entry
	cursor   int
	mode     inputMode
	input    textinput.Model
	message  string
	isError  bool
	showHelp bool
}

// NewModel creates a model over svc.
func NewModel(cfg *config.Config, svc service.Service) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = cfg.MaxInput - 1
	ti.Width = 60

	m := &Model{cfg: cfg, svc: svc, input: ti}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.mode != modeBrowse {
		return m.updateInput(key)
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "?", "h":
		m.showHelp = !m.showHelp
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		return m, m.input.Focus()
	case "e":
		if len(m.entries) > 0 {
			m.mode = modeEdit
			m.input.SetValue(m.entries[m.cursor].Description)
			return m, m.input.Focus()
		}
	case "x", "enter":
		m.apply(m.svc.MarkCompleted(m.position()), output.MsgCompleted)
	case "d":
		m.apply(m.svc.Delete(m.position()), output.MsgDeleted)
	}
	return m, nil
}

func (m *Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.endInput()
		return m, nil
	case tea.KeyEnter:
		m.submit()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) submit() {
	text := m.input.Value()
	switch m.mode {
	case modeAdd:
		m.cursor = m.svc.Add(text) - 1
		m.apply(nil, output.MsgAdded)
	case modeEdit:
		m.apply(m.svc.Edit(m.position(), text), output.MsgUpdated)
	}
	m.endInput()
}

func (m *Model) endInput() {
	m.mode = modeBrowse
	m.input.Blur()
	m.input.SetValue("")
}

// apply records the outcome of a store call and re-reads the list.
func (m *Model) apply(err error, success string) {
	if err != nil {
		m.message = output.MsgInvalidIndex
		m.isError = true
	} else {
		m.message = success
		m.isError = false
	}
	m.refresh()
}

// position returns the 1-based position under the cursor.
func (m *Model) position() int {
	return m.cursor + 1
}

func (m *Model) refresh() {
	m.entries = slices.Collect(m.svc.List())
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Tasks") + "\n\n")

	if m.showHelp {
		writeHelp(&b)
		return b.String()
	}

	if len(m.entries) == 0 {
		b.WriteString("  " + output.MsgNoTasks + "\n")
	}
	for i, e := range m.entries {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		check := "[ ]"
		desc := output.NormalizeDescription(e.Description)
		if e.Completed {
			check = "[x]"
			desc = doneStyle.Render(desc)
		}
		b.WriteString(fmt.Sprintf("%s%d. %s %s\n", pointer, e.Position, check, desc))
	}
	b.WriteString("\n")

	switch m.mode {
	case modeAdd:
		b.WriteString(inputStyle.Render("Enter task: ") + m.input.View() + "\n")
	case modeEdit:
		b.WriteString(inputStyle.Render("Enter edited task: ") + m.input.View() + "\n")
	}

	if m.message != "" {
		style := messageStyle
		if m.isError {
			style = errorStyle
		}
		b.WriteString(style.Render(m.message) + "\n")
	}

	b.WriteString("a add | e edit | x complete | d delete | ? help | q quit\n")
	return b.String()
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  up, k        Move up\n")
	b.WriteString("  down, j      Move down\n")
	b.WriteString("  a            Add task\n")
	b.WriteString("  e            Edit selected task\n")
	b.WriteString("  x, enter     Mark selected task as completed\n")
	b.WriteString("  d            Delete selected task\n")
	b.WriteString("  h, ?         Toggle this help screen\n")
	b.WriteString("  q, ctrl+c    Quit\n")
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// Messages printed by the menu commands.
const (
	MsgAdded         = "Task added."
	MsgCompleted     = "Task is now completed."
	MsgUpdated       = "Task updated successfully."
	MsgDeleted       = "Task deleted."
	MsgInvalidIndex  = "Invalid index."
	MsgInvalidChoice = "Invalid choice."
	MsgNoTasks       = "no tasks found"
)

// MenuHeader is printed above the numbered menu.
const MenuHeader = "Options"

// FormatEntry formats a task line.
// Format: "{N}. {DESCRIPTION} is {D|N}\n"
func FormatEntry(w io.Writer, e service.Entry) {
	fmt.Fprintf(w, "%d. %s is %c\n", e.Position, NormalizeDescription(e.Description), e.StatusChar())
}

// FormatMenuItem formats a numbered menu line.
func FormatMenuItem(w io.Writer, key, synopsis string) {
	fmt.Fprintf(w, "%s. %s\n", key, synopsis)
}

// NormalizeDescription normalizes a task description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func NormalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}

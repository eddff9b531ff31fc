package service

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when a position is outside [1, length].
var ErrInvalidIndex = errors.New("invalid index")

// Task represents a single task item.
type Task struct {
	Description string
	Completed   bool
}

// Entry is a task together with its current 1-based position.
type Entry struct {
	Position int
	Task
}

// StatusChar returns 'D' for a completed task and 'N' otherwise.
func (t Task) StatusChar() byte {
	if t.Completed {
		return 'D'
	}
	return 'N'
}

// InvalidIndexError wraps ErrInvalidIndex with the offending position.
func InvalidIndexError(pos, length int) error {
	return fmt.Errorf("%w: %d (have %d tasks)", ErrInvalidIndex, pos, length)
}

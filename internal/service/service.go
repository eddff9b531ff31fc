// Package service defines the backend-agnostic interface for task operations.
package service

import "iter"

// Service defines the interface for task store operations.
// All positions are 1-based, as shown to the user.
// Commands and front ends never import a backend directly.
type Service interface {
	// Add appends a new, not completed task and returns its position.
	Add(description string) int

	// List yields the tasks in storage order.
	// The sequence is finite and restartable; positions reflect the
	// current length on each iteration.
	List() iter.Seq[Entry]

	// Len returns the number of tasks.
	Len() int

	// MarkCompleted sets the completed flag of the task at pos.
	// Marking a completed task again succeeds.
	// Returns ErrInvalidIndex if pos is outside [1, Len()].
	MarkCompleted(pos int) error

	// Edit replaces the description of the task at pos.
	// The completed flag is left as is.
	// Returns ErrInvalidIndex if pos is outside [1, Len()].
	Edit(pos int, description string) error

	// Delete removes the task at pos. Later tasks move down by one.
	// Returns ErrInvalidIndex if pos is outside [1, Len()].
	Delete(pos int) error
}

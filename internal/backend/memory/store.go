// Package memory implements the service.Service interface with an in-memory,
// ordered task sequence.
package memory

import (
	"iter"
	"slices"

	"todo/internal/service"
)

// Store implements service.Service. The zero value is an empty store.
// A Store is not safe for concurrent use.
type Store struct {
	tasks []service.Task
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add appends a task and returns its position.
func (s *Store) Add(description string) int {
	s.tasks = append(s.tasks, service.Task{Description: description})
	return len(s.tasks)
}

// List yields the tasks in insertion order.
func (s *Store) List() iter.Seq[service.Entry] {
	return func(yield func(service.Entry) bool) {
		for i, t := range s.tasks {
			if !yield(service.Entry{Position: i + 1, Task: t}) {
				return
			}
		}
	}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// MarkCompleted sets the completed flag of the task at pos.
func (s *Store) MarkCompleted(pos int) error {
	i, err := s.offset(pos)
	if err != nil {
		return err
	}
	s.tasks[i].Completed = true
	return nil
}

// Edit replaces the description of the task at pos.
func (s *Store) Edit(pos int, description string) error {
	i, err := s.offset(pos)
	if err != nil {
		return err
	}
	s.tasks[i].Description = description
	return nil
}

// Delete removes the task at pos.
func (s *Store) Delete(pos int) error {
	i, err := s.offset(pos)
	if err != nil {
		return err
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// offset converts a 1-based position into a slice offset.
func (s *Store) offset(pos int) (int, error) {
	if pos < 1 || pos > len(s.tasks) {
		return 0, service.InvalidIndexError(pos, len(s.tasks))
	}
	return pos - 1, nil
}

var _ service.Service = (*Store)(nil)

package memory_test

import (
	"errors"
	"slices"
	"testing"

	"todo/internal/backend/memory"
	"todo/internal/service"
)

func entries(s *memory.Store) []service.Entry {
	return slices.Collect(s.List())
}

func newStore(descriptions ...string) *memory.Store {
	s := memory.New()
	for _, d := range descriptions {
		s.Add(d)
	}
	return s
}

func TestAdd_PreservesOrder(t *testing.T) {
	s := newStore("a", "b", "a", "")

	got := entries(s)
	want := []service.Entry{
		{Position: 1, Task: service.Task{Description: "a"}},
		{Position: 2, Task: service.Task{Description: "b"}},
		{Position: 3, Task: service.Task{Description: "a"}},
		{Position: 4, Task: service.Task{Description: ""}},
	}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestAdd_ReturnsPosition(t *testing.T) {
	s := memory.New()
	if pos := s.Add("first"); pos != 1 {
		t.Errorf("expected position 1, got %d", pos)
	}
	if pos := s.Add("second"); pos != 2 {
		t.Errorf("expected position 2, got %d", pos)
	}
	if s.Len() != 2 {
		t.Errorf("expected length 2, got %d", s.Len())
	}
}

func TestList_Empty(t *testing.T) {
	var s memory.Store
	for e := range s.List() {
		t.Fatalf("expected no entries, got %v", e)
	}
}

func TestList_Restartable(t *testing.T) {
	s := newStore("a", "b")
	seq := s.List()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Errorf("expected identical iterations, got %v and %v", first, second)
	}
}

func TestList_StopsEarly(t *testing.T) {
	s := newStore("a", "b", "c")
	n := 0
	for range s.List() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected 2 iterations, got %d", n)
	}
}

func TestList_ReflectsLaterMutation(t *testing.T) {
	s := newStore("a", "b")
	seq := s.List()
	if err := s.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := slices.Collect(seq)
	want := []service.Entry{{Position: 1, Task: service.Task{Description: "b"}}}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMarkCompleted(t *testing.T) {
	s := newStore("a", "b", "c")

	if err := s.MarkCompleted(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := entries(s)
	if got[0].Completed || !got[1].Completed || got[2].Completed {
		t.Errorf("expected only task 2 completed, got %v", got)
	}
	if got[1].Description != "b" {
		t.Errorf("expected description unchanged, got %q", got[1].Description)
	}
}

func TestMarkCompleted_Idempotent(t *testing.T) {
	s := newStore("a")
	for i := 0; i < 2; i++ {
		if err := s.MarkCompleted(1); err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
	}
	if !entries(s)[0].Completed {
		t.Error("expected task to stay completed")
	}
}

func TestEdit(t *testing.T) {
	s := newStore("a", "b", "c")
	if err := s.MarkCompleted(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Edit(2, "bee"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []service.Entry{
		{Position: 1, Task: service.Task{Description: "a"}},
		{Position: 2, Task: service.Task{Description: "bee", Completed: true}},
		{Position: 3, Task: service.Task{Description: "c"}},
	}
	if got := entries(s); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestEdit_EmptyDescriptionAllowed(t *testing.T) {
	s := newStore("a")
	if err := s.Edit(1, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := entries(s)[0].Description; got != "" {
		t.Errorf("expected empty description, got %q", got)
	}
}

func TestDelete_ShiftsLaterTasks(t *testing.T) {
	s := newStore("a", "b", "c", "d")
	if err := s.MarkCompleted(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Delete(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []service.Entry{
		{Position: 1, Task: service.Task{Description: "a"}},
		{Position: 2, Task: service.Task{Description: "c"}},
		{Position: 3, Task: service.Task{Description: "d", Completed: true}},
	}
	if got := entries(s); !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if s.Len() != 3 {
		t.Errorf("expected length 3, got %d", s.Len())
	}
}

func TestDelete_LastAndOnly(t *testing.T) {
	s := newStore("a", "b")
	if err := s.Delete(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got length %d", s.Len())
	}
	// The store is usable again after being emptied.
	if pos := s.Add("c"); pos != 1 {
		t.Errorf("expected position 1, got %d", pos)
	}
}

func TestInvalidIndex_NoMutation(t *testing.T) {
	ops := map[string]func(s *memory.Store, pos int) error{
		"complete": func(s *memory.Store, pos int) error { return s.MarkCompleted(pos) },
		"edit":     func(s *memory.Store, pos int) error { return s.Edit(pos, "changed") },
		"delete":   func(s *memory.Store, pos int) error { return s.Delete(pos) },
	}
	positions := []int{-1, 0, 3, 100}

	for name, op := range ops {
		for _, pos := range positions {
			s := newStore("a", "b")
			before := entries(s)

			err := op(s, pos)
			if !errors.Is(err, service.ErrInvalidIndex) {
				t.Errorf("%s(%d): expected ErrInvalidIndex, got %v", name, pos, err)
			}
			if after := entries(s); !slices.Equal(before, after) {
				t.Errorf("%s(%d): store mutated: %v -> %v", name, pos, before, after)
			}
		}
	}
}

func TestInvalidIndex_EmptyStore(t *testing.T) {
	s := memory.New()
	if err := s.MarkCompleted(1); !errors.Is(err, service.ErrInvalidIndex) {
		t.Errorf("complete: expected ErrInvalidIndex, got %v", err)
	}
	if err := s.Edit(1, "x"); !errors.Is(err, service.ErrInvalidIndex) {
		t.Errorf("edit: expected ErrInvalidIndex, got %v", err)
	}
	if err := s.Delete(0); !errors.Is(err, service.ErrInvalidIndex) {
		t.Errorf("delete: expected ErrInvalidIndex, got %v", err)
	}
}

func TestInvalidIndex_Message(t *testing.T) {
	s := newStore("a")
	err := s.Delete(5)
	expected := "invalid index: 5 (have 1 tasks)"
	if err == nil || err.Error() != expected {
		t.Errorf("expected %q, got %v", expected, err)
	}
}

func TestScenario(t *testing.T) {
	s := memory.New()
	s.Add("buy milk")
	s.Add("walk dog")

	want := []service.Entry{
		{Position: 1, Task: service.Task{Description: "buy milk"}},
		{Position: 2, Task: service.Task{Description: "walk dog"}},
	}
	if got := entries(s); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if err := s.MarkCompleted(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !entries(s)[0].Completed {
		t.Fatal("expected task 1 completed")
	}

	if err := s.Delete(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = []service.Entry{{Position: 1, Task: service.Task{Description: "walk dog"}}}
	if got := entries(s); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}

	if err := s.MarkCompleted(5); !errors.Is(err, service.ErrInvalidIndex) {
		t.Errorf("expected ErrInvalidIndex, got %v", err)
	}
}

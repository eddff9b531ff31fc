package service

import (
	"iter"

	"github.com/charmbracelet/log"
)

type loggedService struct {
	next   Service
	logger *log.Logger
}

// WithLogger returns a Service that logs every call on svc at debug level.
// A nil logger returns svc unchanged.
func WithLogger(svc Service, logger *log.Logger) Service {
	if logger == nil {
		return svc
	}
	return &loggedService{next: svc, logger: logger}
}

func (s *loggedService) Add(description string) int {
	pos := s.next.Add(description)
	s.logger.Debug("task added", "op", "add", "position", pos, "length", s.next.Len())
	return pos
}

func (s *loggedService) List() iter.Seq[Entry] {
	s.logger.Debug("listing tasks", "op", "list", "length", s.next.Len())
	return s.next.List()
}

func (s *loggedService) Len() int {
	return s.next.Len()
}

func (s *loggedService) MarkCompleted(pos int) error {
	err := s.next.MarkCompleted(pos)
	s.logResult("complete", pos, err)
	return err
}

func (s *loggedService) Edit(pos int, description string) error {
	err := s.next.Edit(pos, description)
	s.logResult("edit", pos, err)
	return err
}

func (s *loggedService) Delete(pos int) error {
	err := s.next.Delete(pos)
	s.logResult("delete", pos, err)
	return err
}

func (s *loggedService) logResult(op string, pos int, err error) {
	if err != nil {
		s.logger.Debug("task operation failed", "op", op, "position", pos, "length", s.next.Len(), "err", err)
		return
	}
	s.logger.Debug("task updated", "op", op, "position", pos, "length", s.next.Len())
}

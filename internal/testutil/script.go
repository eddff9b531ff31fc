package testutil

import (
	"fmt"
	"io"
)

// Script answers prompts from a fixed list of lines.
// Each prompt label is echoed to Out when Out is set.
type Script struct {
	Lines []string
	Out   io.Writer

	// Labels records every prompt label in order.
	Labels []string
}

// NewScript creates a Script that answers with lines.
func NewScript(lines ...string) *Script {
	return &Script{Lines: lines}
}

// Prompt returns the next line, or io.EOF when none are left.
func (s *Script) Prompt(label string) (string, error) {
	s.Labels = append(s.Labels, label)
	if s.Out != nil {
		fmt.Fprint(s.Out, label)
	}
	if len(s.Lines) == 0 {
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

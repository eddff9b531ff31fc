package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/output"
	"todo/internal/service"
)

// ErrPositionRequired indicates no position was entered.
var ErrPositionRequired = errors.New("position required")

// ErrInvalidPosition indicates the input is not an integer.
var ErrInvalidPosition = errors.New("invalid position")

// IndexPrompt is printed before a task position is read.
const IndexPrompt = "Enter index: "

// ParsePosition parses a 1-based task position.
// Any decimal integer parses, including zero and negative values;
// range checking is left to the store.
func ParsePosition(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrPositionRequired
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPosition, s)
	}
	return n, nil
}

// readPosition prompts for and parses a position.
func readPosition(in Prompter) (int, error) {
	line, err := in.Prompt(IndexPrompt)
	if err != nil {
		return 0, err
	}
	return ParsePosition(line)
}

// reportError prints the user-facing message for position errors and
// swallows them. Any other error is returned unchanged.
func reportError(out io.Writer, err error) error {
	if errors.Is(err, service.ErrInvalidIndex) ||
		errors.Is(err, ErrPositionRequired) ||
		errors.Is(err, ErrInvalidPosition) {
		fmt.Fprintln(out, output.MsgInvalidIndex)
		return nil
	}
	return err
}

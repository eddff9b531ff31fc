// Package shell runs the interactive numbered menu over a task service.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/output"
	"todo/internal/service"
)

// Shell reads menu choices line by line and dispatches them to commands.
type Shell struct {
	registry *commands.Registry
	cfg      *config.Config
	svc      service.Service
	logger   *log.Logger
	reader   *bufio.Reader
	out      io.Writer
}

// New creates a shell reading from in and writing to out.
// A nil logger disables logging.
func New(registry *commands.Registry, cfg *config.Config, svc service.Service, logger *log.Logger, in io.Reader, out io.Writer) *Shell {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Shell{
		registry: registry,
		cfg:      cfg,
		svc:      svc,
		logger:   logger,
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// Run prints the menu and processes choices until exit, end of input,
// or cancellation of ctx. Exit and end of input return nil.
func (s *Shell) Run(ctx context.Context) error {
	commands.PrintMenu(s.out, s.registry)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.Prompt(s.cfg.Prompt)
		if err != nil {
			return s.finish(err)
		}

		choice := strings.TrimSpace(line)
		if choice == "" {
			continue
		}

		cmd, ok := s.registry.Find(choice)
		if !ok {
			s.logger.Debug("unknown choice", "choice", choice)
			fmt.Fprintln(s.out, output.MsgInvalidChoice)
			continue
		}

		s.logger.Debug("running command", "command", cmd.Name(), "tasks", s.svc.Len())
		if err := cmd.Run(ctx, s.cfg, s.svc, s, s.out); err != nil {
			return s.finish(err)
		}
	}
}

// finish maps loop-ending errors to the result of Run.
func (s *Shell) finish(err error) error {
	switch {
	case errors.Is(err, commands.ErrExit):
		s.logger.Debug("exit requested")
		return nil
	case errors.Is(err, io.EOF):
		s.logger.Debug("end of input")
		return nil
	default:
		return err
	}
}

// Prompt implements commands.Prompter.
// Lines longer than the configured input size are truncated;
// the rest of the line is read and discarded.
func (s *Shell) Prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)

	limit := s.cfg.MaxInput - 1
	// Extra room lets truncate find a rune boundary.
	keep := limit + utf8.UTFMax

	var line []byte
	for {
		chunk, isPrefix, err := s.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", io.EOF
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		if room := keep - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			break
		}
	}
	return truncate(string(line), limit), nil
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

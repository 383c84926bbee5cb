package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nickyhof/gadwall/command"
)

// Intro returns the banner printed at the start of an interactive session.
func (s *Session) Intro() string {
	return fmt.Sprintf("Welcome to the gadwall, a %s shell. Type help or ? to list commands.", s.db.Dialect().Name)
}

// Prompt returns the input prompt.
func (s *Session) Prompt() string {
	return s.db.Dialect().Name + "> "
}

type input struct {
	line string
	err  error
}

// Run reads lines from in and dispatches them until a command ends the
// session, the input ends or ctx is cancelled. Every way out goes through
// the EOF command so the database and HTML sink are closed.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	if s.interactive {
		fmt.Fprintln(s.out, s.Intro())
	}

	lines := make(chan input)
	done := make(chan struct{})
	defer close(done)
	go readLines(in, lines, done)

	for {
		if s.interactive {
			s.prompt.Fprint(s.out, s.Prompt())
		}

		select {
		case <-ctx.Done():
			s.Dispatch(command.EOFTrigger)
			return nil

		case next := <-lines:
			if next.err != nil {
				s.Dispatch(command.EOFTrigger)
				if errors.Is(next.err, io.EOF) {
					return nil
				}
				return fmt.Errorf("failed to read input: %w", next.err)
			}
			if s.Dispatch(next.line) {
				return nil
			}
		}
	}
}

// readLines feeds in line by line until the input ends or done is closed.
// The final element carries the read error (io.EOF at end of input).
func readLines(in io.Reader, lines chan<- input, done <-chan struct{}) {
	reader := bufio.NewReader(in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" {
			text = strings.TrimSuffix(text, "\n")
			text = strings.TrimSuffix(text, "\r")
			select {
			case lines <- input{line: text}:
			case <-done:
				return
			}
		}
		if err != nil {
			select {
			case lines <- input{err: err}:
			case <-done:
			}
			return
		}
	}
}

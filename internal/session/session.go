// Package session drives one interactive run: it reads lines, parses them,
// executes the resulting commands and reports the responses.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/duke/internal/command"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/parser"
)

// Session banner lines. Introduction precedes the load report; Question follows it.
const (
	Introduction = "Hello! I'm Duke"
	Question     = "What can I do for you?"
	Prompt       = "> " // Printed before each line in plain mode
)

// Reply is the outcome of handling one input line.
type Reply struct {
	Text  string
	IsErr bool
	Exit  bool
}

// Session owns the task list for the lifetime of a run.
type Session struct {
	parser *parser.Parser
	env    *command.Env
}

// New creates a Session over an already loaded task list.
func New(tasks *domain.TaskList, p *parser.Parser, store domain.TaskStore, logger domain.Logger, autosave bool) *Session {
	return &Session{
		parser: p,
		env: &command.Env{
			Tasks:    tasks,
			Store:    store,
			Logger:   logger,
			Autosave: autosave,
		},
	}
}

// Tasks returns the list the session operates on.
func (s *Session) Tasks() *domain.TaskList {
	return s.env.Tasks
}

// Save writes the list to the store. A session without a store saves nothing.
func (s *Session) Save() error {
	if err := s.env.Save(); err != nil && !errors.Is(err, domain.ErrStoreNotConfigured) {
		return err
	}
	return nil
}

// Handle parses and executes one line.
func (s *Session) Handle(ctx context.Context, line string) Reply {
	cmd, err := s.parser.Parse(line, s.env.Tasks)
	if err != nil {
		s.log().Debug("session", fmt.Sprintf("rejected %q: %v", line, err))
		return Reply{Text: errorText(err), IsErr: true}
	}
	text := cmd.Execute(ctx, s.env)
	s.log().Debug("session", fmt.Sprintf("executed %T", cmd))
	return Reply{Text: text, Exit: cmd.IsExit()}
}

// Run reads lines from r until bye, EOF or cancellation.
// On EOF the list is saved as if bye had been sent.
func (s *Session) Run(ctx context.Context, r io.Reader, display domain.Display, prompt func()) error {
	scanner := bufio.NewScanner(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if prompt != nil {
			prompt()
		}
		if !scanner.Scan() {
			break
		}
		reply := s.Handle(ctx, scanner.Text())
		if reply.IsErr {
			display.ShowError(reply.Text)
		} else {
			display.Show(reply.Text)
		}
		if reply.Exit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if err := s.Save(); err != nil {
		display.ShowError("Could not save your tasks: " + err.Error())
		return err
	}
	return nil
}

func (s *Session) log() domain.Logger {
	if s.env.Logger == nil {
		return discard{}
	}
	return s.env.Logger
}

func errorText(err error) string {
	var ue *domain.UserError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}

type discard struct{}

func (discard) Info(_, _ string)  {}
func (discard) Debug(_, _ string) {}
func (discard) Warn(_, _ string)  {}
func (discard) Error(_, _ string) {}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/duke/internal/command"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/parser"
)

// ExecLineInput contains the parameters for running one command line.
type ExecLineInput struct {
	Line string // Command line as typed in a session (required)
}

// ExecLineOutput contains the result of running one command line.
type ExecLineOutput struct {
	Text  string // Response text
	Saved bool   // Whether the list was written back
}

// ExecLine runs a single command against the stored list without a session.
// The list is saved when the command mutated it.
type ExecLine struct {
	store  domain.TaskStore
	parser *parser.Parser
	logger domain.Logger
}

// NewExecLine creates a new ExecLine use case.
func NewExecLine(store domain.TaskStore, p *parser.Parser, logger domain.Logger) *ExecLine {
	return &ExecLine{store: store, parser: p, logger: logger}
}

// Execute parses and runs in.Line. Parse failures are returned as *domain.UserError.
func (uc *ExecLine) Execute(ctx context.Context, in ExecLineInput) (*ExecLineOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	list := domain.NewTaskList(tasks)

	cmd, err := uc.parser.Parse(in.Line, list)
	if err != nil {
		return nil, err
	}

	env := &command.Env{Tasks: list, Store: uc.store, Logger: uc.logger}
	text := cmd.Execute(ctx, env)

	// Exit saves on its own.
	if !cmd.Mutates() {
		return &ExecLineOutput{Text: text, Saved: cmd.IsExit()}, nil
	}
	if err := env.Save(); err != nil && !errors.Is(err, domain.ErrStoreNotConfigured) {
		return nil, err
	}
	return &ExecLineOutput{Text: text, Saved: true}, nil
}

// Package command defines the executable user intents produced by the parser.
package command

import (
	"context"
	"fmt"

	"github.com/runoshun/duke/internal/domain"
)

// Command is a parsed, executable user intent.
// The set of implementations is closed; see the types in this package.
type Command interface {
	// Execute runs the command against env and returns the response text.
	Execute(ctx context.Context, env *Env) string
	// IsExit reports whether the session should end after this command.
	IsExit() bool
	// Mutates reports whether the command changes the task list.
	Mutates() bool

	sealed()
}

// Env is the state a command executes against.
// The session owns the task list and hands it to each command.
type Env struct {
	Tasks    *domain.TaskList
	Store    domain.TaskStore
	Logger   domain.Logger
	Autosave bool // Persist after every mutating command
}

// Save writes the whole list to the store.
func (e *Env) Save() error {
	if e.Store == nil {
		return domain.ErrStoreNotConfigured
	}
	if err := e.Store.Save(e.Tasks.Tasks()); err != nil {
		e.logger().Error("storage", fmt.Sprintf("save failed: %v", err))
		return fmt.Errorf("save tasks: %w", err)
	}
	e.logger().Debug("storage", fmt.Sprintf("saved %d tasks", e.Tasks.Len()))
	return nil
}

// afterMutation saves when autosave is on and returns text to append to the response.
func (e *Env) afterMutation() string {
	if !e.Autosave {
		return ""
	}
	if err := e.Save(); err != nil {
		return "\nWarning: " + err.Error()
	}
	return ""
}

func (e *Env) logger() domain.Logger {
	if e.Logger == nil {
		return nopLogger{}
	}
	return e.Logger
}

// base provides the defaults shared by all commands.
type base struct{}

func (base) IsExit() bool  { return false }
func (base) Mutates() bool { return false }
func (base) sealed()       {}

// mutating marks commands that change the list.
type mutating struct{ base }

func (mutating) Mutates() bool { return true }

func countLine(n int) string {
	if n == 1 {
		return "Now you have 1 task in the list."
	}
	return fmt.Sprintf("Now you have %d tasks in the list.", n)
}

type nopLogger struct{}

func (nopLogger) Info(_, _ string)  {}
func (nopLogger) Debug(_, _ string) {}
func (nopLogger) Warn(_, _ string)  {}
func (nopLogger) Error(_, _ string) {}

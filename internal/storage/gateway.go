// Package storage hydrates the session's task list from a backend and writes it back.
package storage

import (
	"errors"
	"fmt"

	"github.com/runoshun/duke/internal/domain"
)

// Ensure Gateway implements domain.TaskStore.
var _ domain.TaskStore = (*Gateway)(nil)

// Startup diagnostics.
const (
	NoTasksMessage       = "You have no existing tasks!"
	ExistingTasksMessage = "You have existing tasks!"
)

// Gateway wraps a backend store. Load failures never abort startup:
// they are reported to the display and an empty list is used instead.
type Gateway struct {
	store   domain.TaskStore
	display domain.Display
	logger  domain.Logger
}

// NewGateway creates a Gateway. logger may be nil.
func NewGateway(store domain.TaskStore, display domain.Display, logger domain.Logger) *Gateway {
	return &Gateway{store: store, display: display, logger: logger}
}

// Open loads the task list, degrading to an empty list on any error.
func (g *Gateway) Open() *domain.TaskList {
	tasks, err := g.store.Load()
	if err != nil {
		g.display.ShowError(loadErrorMessage(err))
		g.log(func(l domain.Logger) { l.Error("storage", fmt.Sprintf("load failed: %v", err)) })
		return domain.NewTaskList(nil)
	}

	list := domain.NewTaskList(tasks)
	g.log(func(l domain.Logger) { l.Info("storage", fmt.Sprintf("loaded %d tasks", list.Len())) })
	if list.IsEmpty() {
		g.display.Show(NoTasksMessage)
	} else {
		g.display.Show(ExistingTasksMessage + "\n" + list.Render())
	}
	return list
}

// Load returns the stored tasks, or an empty slice plus the error.
func (g *Gateway) Load() ([]domain.Task, error) {
	tasks, err := g.store.Load()
	if err != nil {
		return []domain.Task{}, err
	}
	return tasks, nil
}

// Save writes tasks to the backend.
func (g *Gateway) Save(tasks []domain.Task) error {
	return g.store.Save(tasks)
}

func (g *Gateway) log(fn func(domain.Logger)) {
	if g.logger != nil {
		fn(g.logger)
	}
}

func loadErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidTaskType):
		return "Erroneous task type in file. Please check your file again!\n" + err.Error()
	case errors.Is(err, domain.ErrInvalidDateTime):
		return "Erroneous date in file. Please check your file again!\n" + err.Error()
	default:
		return "Cannot access file at specified location.\n" + err.Error()
	}
}

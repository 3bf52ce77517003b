package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/duke/internal/codec"
	"github.com/runoshun/duke/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Format  string // text (default) or yaml
	Content []byte // Document to import
	Replace bool   // Replace the stored list instead of appending
	DryRun  bool   // Parse and validate without saving
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Imported []domain.Task // Tasks read from the document
	Total    int           // List length after the import
}

// ImportTasks appends (or replaces) stored tasks from an interchange document.
// A document with any bad entry imports nothing.
type ImportTasks struct {
	store  domain.TaskStore
	codec  *codec.Codec
	logger domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(store domain.TaskStore, c *codec.Codec, logger domain.Logger) *ImportTasks {
	return &ImportTasks{store: store, codec: c, logger: logger}
}

// Execute decodes in.Content and saves the combined list.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	format, err := checkFormat(in.Format)
	if err != nil {
		return nil, err
	}

	var imported []domain.Task
	switch format {
	case FormatYAML:
		imported, err = uc.codec.DecodeYAML(in.Content)
	default:
		imported, err = uc.codec.DecodeAll(string(in.Content))
	}
	if err != nil {
		return nil, fmt.Errorf("decode import: %w", err)
	}
	for i, t := range imported {
		if err := codec.CheckDescription(t.Description); err != nil {
			return nil, fmt.Errorf("decode import: task %d: %w", i+1, err)
		}
	}

	var list *domain.TaskList
	if in.Replace {
		list = domain.NewTaskList(nil)
	} else {
		existing, err := uc.store.Load()
		if err != nil {
			return nil, fmt.Errorf("load tasks: %w", err)
		}
		list = domain.NewTaskList(existing)
	}
	for _, t := range imported {
		list.Add(t)
	}

	out := &ImportTasksOutput{Imported: imported, Total: list.Len()}
	if in.DryRun {
		return out, nil
	}

	if err := uc.store.Save(list.Tasks()); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}
	if uc.logger != nil {
		uc.logger.Info("storage", fmt.Sprintf("imported %d tasks (%s)", len(imported), format))
	}
	return out, nil
}

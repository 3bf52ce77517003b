package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/runoshun/duke/internal/codec"
	"github.com/runoshun/duke/internal/domain"
)

// ExportTasksInput contains the parameters for exporting tasks.
type ExportTasksInput struct {
	Writer io.Writer // Destination (required)
	Format string    // text (default) or yaml
}

// ExportTasksOutput contains the result of exporting tasks.
type ExportTasksOutput struct {
	Count int // Number of tasks written
}

// ExportTasks writes the stored list in an interchange format.
type ExportTasks struct {
	store domain.TaskStore
	codec *codec.Codec
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(store domain.TaskStore, c *codec.Codec) *ExportTasks {
	return &ExportTasks{store: store, codec: c}
}

// Execute writes every stored task to in.Writer.
func (uc *ExportTasks) Execute(_ context.Context, in ExportTasksInput) (*ExportTasksOutput, error) {
	format, err := checkFormat(in.Format)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	var data []byte
	switch format {
	case FormatYAML:
		data, err = uc.codec.EncodeYAML(tasks)
		if err != nil {
			return nil, err
		}
	default:
		data = []byte(uc.codec.EncodeAll(tasks))
	}

	if _, err := in.Writer.Write(data); err != nil {
		return nil, fmt.Errorf("write export: %w", err)
	}
	return &ExportTasksOutput{Count: len(tasks)}, nil
}

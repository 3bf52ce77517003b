package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/duke/internal/domain"
)

// yamlDocument is the export layout:
//
//	tasks:
//	  - type: D
//	    done: false
//	    description: submit report
//	    date: 2/12/2019 1800
type yamlDocument struct {
	Tasks []yamlTask `yaml:"tasks"`
}

type yamlTask struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	Date        string `yaml:"date,omitempty"`
	Done        bool   `yaml:"done"`
}

// EncodeYAML returns tasks as a YAML document.
func (c *Codec) EncodeYAML(tasks []domain.Task) ([]byte, error) {
	doc := yamlDocument{Tasks: make([]yamlTask, 0, len(tasks))}
	for _, t := range tasks {
		rec := yamlTask{Type: string(t.Kind), Description: t.Description, Done: t.Done}
		if t.Kind.IsTimed() {
			rec.Date = c.formats.Store(t.At)
		}
		doc.Tasks = append(doc.Tasks, rec)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return out, nil
}

// DecodeYAML parses a document produced by EncodeYAML.
// Dates may use any accepted input layout.
func (c *Codec) DecodeYAML(data []byte) ([]domain.Task, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	tasks := make([]domain.Task, 0, len(doc.Tasks))
	for i, rec := range doc.Tasks {
		t, err := c.fromYAML(rec)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func (c *Codec) fromYAML(rec yamlTask) (domain.Task, error) {
	kind, ok := domain.ParseKind(rec.Type)
	if !ok {
		return domain.Task{}, domain.NewUserError(domain.ErrInvalidTaskType,
			fmt.Sprintf("Erroneous task type %q. Please check your file again!", rec.Type))
	}
	if err := CheckDescription(rec.Description); err != nil {
		return domain.Task{}, err
	}

	var task domain.Task
	switch kind {
	case domain.KindTodo:
		task = domain.NewTodo(rec.Description)
	case domain.KindDeadline, domain.KindEvent:
		at, err := c.formats.Parse(rec.Date)
		if err != nil {
			return domain.Task{}, err
		}
		if kind == domain.KindDeadline {
			task = domain.NewDeadline(rec.Description, at)
		} else {
			task = domain.NewEvent(rec.Description, at)
		}
	}
	if rec.Done {
		task.MarkDone()
	}
	return task, nil
}

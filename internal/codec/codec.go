// Package codec converts tasks to and from the line-oriented storage format.
//
// One task per line, fields separated by " | ":
//
//	T | 0 | read book
//	D | 1 | submit report | 2/12/2019 1800
//	E | 0 | project meeting | 6/8/2019 1400
//
// Descriptions may not contain the " | " separator or line breaks;
// CheckDescription rejects them before a task reaches storage.
package codec

import (
	"fmt"
	"strings"

	"github.com/runoshun/duke/internal/domain"
)

// Separator delimits fields within a line.
const Separator = " | "

const (
	flagDone    = "1"
	flagNotDone = "0"
)

// CheckDescription reports whether desc can be stored on one line.
func CheckDescription(desc string) error {
	if strings.TrimSpace(desc) == "" {
		return domain.NewUserError(domain.ErrEmptyArgument, "Please input a valid task description!")
	}
	if strings.ContainsAny(desc, "\r\n") || strings.Contains(desc, Separator) {
		return domain.NewUserError(domain.ErrInvalidTaskType,
			fmt.Sprintf("Task description %q cannot contain line breaks or %q!", desc, Separator))
	}
	return nil
}

// Codec encodes and decodes tasks using a fixed set of date layouts.
type Codec struct {
	formats domain.DateFormats
}

// New creates a Codec that reads dates with formats' input layouts.
func New(formats domain.DateFormats) *Codec {
	return &Codec{formats: formats}
}

// Encode returns the storage line for t.
func (c *Codec) Encode(t domain.Task) string {
	done := flagNotDone
	if t.Done {
		done = flagDone
	}
	fields := []string{string(t.Kind), done, t.Description}
	switch t.Kind {
	case domain.KindDeadline, domain.KindEvent:
		fields = append(fields, c.formats.Store(t.At))
	case domain.KindTodo:
	}
	return strings.Join(fields, Separator)
}

// Decode parses one storage line.
func (c *Codec) Decode(line string) (domain.Task, error) {
	fields := strings.Split(line, Separator)
	if len(fields) < 3 {
		return domain.Task{}, invalidTaskType(line)
	}

	kind, ok := domain.ParseKind(fields[0])
	if !ok || strings.TrimSpace(fields[2]) == "" {
		return domain.Task{}, invalidTaskType(line)
	}
	if fields[1] != flagDone && fields[1] != flagNotDone {
		return domain.Task{}, invalidTaskType(line)
	}

	var task domain.Task
	switch kind {
	case domain.KindTodo:
		task = domain.NewTodo(fields[2])
	case domain.KindDeadline, domain.KindEvent:
		if len(fields) < 4 {
			return domain.Task{}, invalidTaskType(line)
		}
		at, err := c.formats.Parse(fields[3])
		if err != nil {
			return domain.Task{}, err
		}
		if kind == domain.KindDeadline {
			task = domain.NewDeadline(fields[2], at)
		} else {
			task = domain.NewEvent(fields[2], at)
		}
	}

	if fields[1] == flagDone {
		task.MarkDone()
	}
	return task, nil
}

// EncodeAll returns the whole document for tasks, one line each,
// terminated by a newline. An empty list encodes to an empty string.
func (c *Codec) EncodeAll(tasks []domain.Task) string {
	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(c.Encode(t))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DecodeAll parses a whole document. Blank lines are skipped.
// The first bad line aborts decoding; no partial result is returned.
func (c *Codec) DecodeAll(content string) ([]domain.Task, error) {
	var tasks []domain.Task
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := c.Decode(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func invalidTaskType(line string) error {
	return domain.NewUserError(domain.ErrInvalidTaskType,
		fmt.Sprintf("Erroneous task type in file: %q. Please check your file again!", line))
}

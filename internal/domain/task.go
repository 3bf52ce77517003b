// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Kind identifies the variant of a task.
// The set is closed: every switch over Kind must handle all three values.
type Kind string

const (
	KindTodo     Kind = "T" // Plain to-do
	KindDeadline Kind = "D" // Must be done by a point in time
	KindEvent    Kind = "E" // Happens at a point in time
)

// ParseKind converts a persisted tag into a Kind.
func ParseKind(tag string) (Kind, bool) {
	switch Kind(tag) {
	case KindTodo, KindDeadline, KindEvent:
		return Kind(tag), true
	}
	return "", false
}

// IsTimed returns true if tasks of this kind carry a timestamp.
func (k Kind) IsTimed() bool {
	return k == KindDeadline || k == KindEvent
}

// Relation returns the word shown before the timestamp ("by" or "at").
func (k Kind) Relation() string {
	switch k {
	case KindDeadline:
		return "by"
	case KindEvent:
		return "at"
	case KindTodo:
		return ""
	}
	return ""
}

// Task represents a unit of work tracked by duke.
// Fields are ordered to minimize memory padding.
type Task struct {
	At          time.Time // Deadline or event time (zero for todos)
	Description string    // Description (required)
	Kind        Kind      // Variant tag
	Done        bool      // Only ever transitions false to true
}

// NewTodo creates a plain to-do.
func NewTodo(description string) Task {
	return Task{Kind: KindTodo, Description: description}
}

// NewDeadline creates a task due at the given time.
// The time is truncated to minute precision, the precision used for storage.
func NewDeadline(description string, by time.Time) Task {
	return Task{Kind: KindDeadline, Description: description, At: by.Truncate(time.Minute)}
}

// NewEvent creates a task happening at the given time.
func NewEvent(description string, at time.Time) Task {
	return Task{Kind: KindEvent, Description: description, At: at.Truncate(time.Minute)}
}

// MarkDone marks the task as done. Calling it on a done task has no effect.
func (t *Task) MarkDone() {
	t.Done = true
}

// StatusIcon returns "X" for done tasks and a space otherwise.
func (t Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// DisplayDate returns the timestamp in display form, e.g. "02 Dec 2019, 6:00 pm".
// Returns an empty string for todos. It uses the one DateFormats instance
// that DefaultDateFormats hands to the parser and the codec.
func (t Task) DisplayDate() string {
	if !t.Kind.IsTimed() {
		return ""
	}
	return defaultDateFormats.Display(t.At)
}

// String returns the long display form of the task.
//
//	[T][ ] read book
//	[D][X] submit report (by: 02 Dec 2019, 6:00 pm)
func (t Task) String() string {
	switch t.Kind {
	case KindTodo:
		return fmt.Sprintf("[%s][%s] %s", t.Kind, t.StatusIcon(), t.Description)
	case KindDeadline, KindEvent:
		return fmt.Sprintf("[%s][%s] %s (%s: %s)", t.Kind, t.StatusIcon(), t.Description, t.Kind.Relation(), t.DisplayDate())
	}
	return fmt.Sprintf("[?][%s] %s", t.StatusIcon(), t.Description)
}

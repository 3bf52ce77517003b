package domain

import (
	"regexp"
	"strconv"
	"strings"
)

// EmptyListMessage is rendered in place of an empty list.
const EmptyListMessage = "You have completed all tasks!"

// TaskList is the ordered collection of tasks for a session.
// Positions are zero-based; callers must validate 0 <= pos < Len() before
// calling positional methods.
type TaskList struct {
	tasks []Task
}

// NewTaskList creates a list holding a copy of tasks.
func NewTaskList(tasks []Task) *TaskList {
	l := &TaskList{tasks: make([]Task, 0, len(tasks))}
	l.tasks = append(l.tasks, tasks...)
	return l
}

// Add appends a task.
func (l *TaskList) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// Delete removes the task at pos and returns it. Later tasks shift down by one.
func (l *TaskList) Delete(pos int) Task {
	removed := l.tasks[pos]
	l.tasks = append(l.tasks[:pos], l.tasks[pos+1:]...)
	return removed
}

// MarkDone marks the task at pos as done and returns the updated task.
func (l *TaskList) MarkDone(pos int) Task {
	l.tasks[pos].MarkDone()
	return l.tasks[pos]
}

// Get returns the task at pos.
func (l *TaskList) Get(pos int) Task {
	return l.tasks[pos]
}

// Len returns the number of tasks.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// IsEmpty returns true if the list has no tasks.
func (l *TaskList) IsEmpty() bool {
	return len(l.tasks) == 0
}

// Tasks returns a snapshot of the tasks in order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

// Render returns the 1-indexed enumeration of all tasks,
// or EmptyListMessage when there are none.
func (l *TaskList) Render() string {
	if l.IsEmpty() {
		return EmptyListMessage
	}
	return enumerate(l.tasks)
}

// Find returns tasks whose description matches pattern, in list order.
func (l *TaskList) Find(pattern *regexp.Regexp) []Task {
	var matches []Task
	for _, t := range l.tasks {
		if pattern.MatchString(t.Description) {
			matches = append(matches, t)
		}
	}
	return matches
}

// RenderMatches enumerates search hits 1..n in the order given.
func RenderMatches(matches []Task) string {
	return enumerate(matches)
}

func enumerate(tasks []Task) string {
	var sb strings.Builder
	for i, t := range tasks {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(". ")
		sb.WriteString(t.String())
	}
	return sb.String()
}

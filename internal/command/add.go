package command

import (
	"context"
	"time"

	"github.com/runoshun/duke/internal/domain"
)

// AddTodo appends a plain to-do.
type AddTodo struct {
	mutating
	Description string
}

// Execute appends the to-do.
func (c AddTodo) Execute(ctx context.Context, env *Env) string {
	return add(ctx, env, domain.NewTodo(c.Description))
}

// AddDeadline appends a task with a due time.
type AddDeadline struct {
	By time.Time
	mutating
	Description string
}

// Execute appends the deadline.
func (c AddDeadline) Execute(ctx context.Context, env *Env) string {
	return add(ctx, env, domain.NewDeadline(c.Description, c.By))
}

// AddEvent appends a task happening at a point in time.
type AddEvent struct {
	At time.Time
	mutating
	Description string
}

// Execute appends the event.
func (c AddEvent) Execute(ctx context.Context, env *Env) string {
	return add(ctx, env, domain.NewEvent(c.Description, c.At))
}

func add(_ context.Context, env *Env, task domain.Task) string {
	env.Tasks.Add(task)
	env.logger().Info("session", "added "+string(task.Kind)+": "+task.Description)
	return "Got it. I've added this task:\n  " + task.String() + "\n" + countLine(env.Tasks.Len()) + env.afterMutation()
}

package command

import (
	"context"
	"fmt"
)

// MarkDone marks the task at Position as done.
type MarkDone struct {
	mutating
	Position int // Zero-based, validated by the parser
}

// Execute marks the task.
func (c MarkDone) Execute(_ context.Context, env *Env) string {
	task := env.Tasks.MarkDone(c.Position)
	env.logger().Info("session", fmt.Sprintf("marked task %d done", c.Position+1))
	return "Nice! I've marked this task as done:\n  " + task.String() + env.afterMutation()
}

// Delete removes the task at Position.
type Delete struct {
	mutating
	Position int // Zero-based, validated by the parser
}

// Execute removes the task.
func (c Delete) Execute(_ context.Context, env *Env) string {
	task := env.Tasks.Delete(c.Position)
	env.logger().Info("session", fmt.Sprintf("deleted task %d", c.Position+1))
	return "Noted. I've removed this task:\n  " + task.String() + "\n" + countLine(env.Tasks.Len()) + env.afterMutation()
}

package command

import (
	"context"
	"regexp"

	"github.com/runoshun/duke/internal/domain"
)

// Response sentinels.
const (
	NoMatchesMessage = "There are no tasks matching your input :("
	FarewellMessage  = "Bye. Hope to see you again soon!"
)

// List renders the whole list.
type List struct{ base }

// Execute renders the list.
func (List) Execute(_ context.Context, env *Env) string {
	if env.Tasks.IsEmpty() {
		return domain.EmptyListMessage
	}
	return "Here are the tasks in your list:\n" + env.Tasks.Render()
}

// Find lists tasks whose description matches Keyword, ignoring case.
// Keyword is a regular expression; an invalid expression is matched literally.
type Find struct {
	base
	Keyword string
}

// Execute searches the list without modifying it.
func (c Find) Execute(_ context.Context, env *Env) string {
	matches := env.Tasks.Find(c.pattern())
	if len(matches) == 0 {
		return NoMatchesMessage
	}
	return "These are the search results:\n" + domain.RenderMatches(matches)
}

func (c Find) pattern() *regexp.Regexp {
	if re, err := regexp.Compile("(?i)" + c.Keyword); err == nil {
		return re
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(c.Keyword))
}

// Help returns the usage text.
type Help struct{ base }

// Execute returns the usage text.
func (Help) Execute(_ context.Context, _ *Env) string {
	return domain.Usage()
}

// Exit saves the list and ends the session.
type Exit struct{ base }

// IsExit always returns true.
func (Exit) IsExit() bool { return true }

// Execute persists the list. A failed save is reported in the response.
func (Exit) Execute(_ context.Context, env *Env) string {
	if err := env.Save(); err != nil {
		return "Could not save your tasks: " + err.Error()
	}
	env.logger().Info("session", "session ended")
	return FarewellMessage
}

package tui

import "github.com/runoshun/duke/internal/domain"

// Ensure Transcript implements domain.Display.
var _ domain.Display = (*Transcript)(nil)

type entryKind int

const (
	entryInput entryKind = iota
	entryReply
	entryError
)

type entry struct {
	text string
	kind entryKind
}

// Transcript collects messages shown before and during the session.
// It is the display sink handed to the storage gateway at startup.
type Transcript struct {
	entries []entry
}

// Show appends a normal message.
func (t *Transcript) Show(msg string) {
	t.entries = append(t.entries, entry{text: msg, kind: entryReply})
}

// ShowError appends an error message.
func (t *Transcript) ShowError(msg string) {
	t.entries = append(t.entries, entry{text: msg, kind: entryError})
}

func (t *Transcript) echo(line string) {
	t.entries = append(t.entries, entry{text: line, kind: entryInput})
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.entries)
}

func (t *Transcript) clear() {
	t.entries = nil
}

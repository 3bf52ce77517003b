package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/runoshun/duke/internal/testutil"
)

func TestView_LoadingBeforeSize(t *testing.T) {
	m := New(context.Background(), nil, nil, "")

	assert.Equal(t, "Loading...", m.View())
}

func TestView_ShowsStartupTranscript(t *testing.T) {
	transcript := &Transcript{}
	transcript.Show("You have no existing tasks!")
	transcript.ShowError("Cannot access file at specified location.")
	m := New(context.Background(), nil, transcript, "data/duke.txt")

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()

	assert.Contains(t, view, "Duke")
	assert.Contains(t, view, "data/duke.txt")
	assert.Contains(t, view, "You have no existing tasks!")
	assert.Contains(t, view, "Cannot access file")
}

func TestView_WrapsLongReplies(t *testing.T) {
	m := newTestModel(t, testutil.NewMockTaskStore())
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	submit(t, m, "todo "+strings.Repeat("word ", 20))

	for _, line := range strings.Split(m.renderTranscript(), "\n") {
		assert.LessOrEqual(t, len([]rune(stripANSI(line))), 30)
	}
}

func TestKeyMap_Help(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Len(t, keys.ShortHelp(), 4)
	assert.Len(t, keys.FullHelp(), 3)
}

// stripANSI removes SGR escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}

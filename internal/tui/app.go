package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/duke/internal/session"
)

// maxHistory bounds the recalled input lines.
const maxHistory = 100

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	session    *session.Session
	transcript *Transcript
	ctx        context.Context
	err        error

	// State
	history []string
	title   string

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	viewport viewport.Model
	input    textinput.Model

	// Numeric state (smaller types last)
	width   int
	height  int
	histPos int
	busy    bool // a line or the final save is running; Submit and Quit wait
	exited  bool // bye was sent; the session already saved
	ready   bool
}

// New creates a new TUI Model over s. transcript holds the startup messages.
func New(ctx context.Context, s *session.Session, transcript *Transcript, title string) *Model {
	if transcript == nil {
		transcript = &Transcript{}
	}

	ti := textinput.New()
	ti.Placeholder = "Type a command, or 'help'"
	ti.Prompt = session.Prompt
	ti.CharLimit = 500
	ti.Focus()

	styles := DefaultStyles()
	ti.PromptStyle = styles.Prompt

	return &Model{
		session:    s,
		transcript: transcript,
		ctx:        ctx,
		title:      title,
		keys:       DefaultKeyMap(),
		styles:     styles,
		help:       help.New(),
		viewport:   viewport.New(0, 0),
		input:      ti,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Busy reports whether a line or the final save is still running.
func (m *Model) Busy() bool {
	return m.busy
}

// Exited reports whether the session ended with bye.
func (m *Model) Exited() bool {
	return m.exited
}

// handle returns a command that runs one line through the session.
// The model stays busy until the MsgReply arrives.
func (m *Model) handle(line string) tea.Cmd {
	m.busy = true
	return func() tea.Msg {
		return MsgReply{Input: line, Reply: m.session.Handle(m.ctx, line)}
	}
}

// save returns a command that saves the list before quitting.
func (m *Model) save() tea.Cmd {
	m.busy = true
	return func() tea.Msg {
		return MsgSaved{Err: m.session.Save()}
	}
}

// Run starts the full-screen interface and blocks until it exits.
// Quitting without bye still saves the list.
func Run(ctx context.Context, s *session.Session, transcript *Transcript, title string) error {
	m := New(ctx, s, transcript, title)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	if fm, ok := final.(*Model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}

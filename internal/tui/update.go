package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case MsgReply:
		m.busy = false
		m.transcript.echo(msg.Input)
		if msg.Reply.IsErr {
			m.transcript.ShowError(msg.Reply.Text)
		} else {
			m.transcript.Show(msg.Reply.Text)
		}
		m.refresh()
		if msg.Reply.Exit {
			m.exited = true
			return m, tea.Quit
		}
		return m, nil

	case MsgSaved:
		m.busy = false
		m.err = msg.Err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.busy {
			return m, nil
		}
		return m, m.save()

	case key.Matches(msg, m.keys.Submit):
		if m.busy {
			return m, nil
		}
		line := m.input.Value()
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		m.remember(line)
		m.input.Reset()
		return m, m.handle(line)

	case key.Matches(msg, m.keys.HistoryPrev):
		m.recall(-1)
		return m, nil

	case key.Matches(msg, m.keys.HistoryNext):
		m.recall(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.viewport.HalfPageDown()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.transcript.clear()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// remember appends line to the history and resets the cursor past the end.
func (m *Model) remember(line string) {
	if n := len(m.history); n == 0 || m.history[n-1] != line {
		m.history = append(m.history, line)
		if len(m.history) > maxHistory {
			m.history = m.history[len(m.history)-maxHistory:]
		}
	}
	m.histPos = len(m.history)
}

// recall moves through the history by delta. Moving past the newest entry clears the input.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	pos := m.histPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos >= len(m.history) {
		m.histPos = len(m.history)
		m.input.Reset()
		return
	}
	m.histPos = pos
	m.input.SetValue(m.history[pos])
	m.input.CursorEnd()
}

// resize fits the viewport between the header and the input area.
func (m *Model) resize() {
	if m.width == 0 {
		return
	}
	chrome := lipgloss.Height(m.viewHeader()) + lipgloss.Height(m.viewFooter()) + 1
	m.viewport.Width = m.width - m.styles.App.GetHorizontalFrameSize()
	m.viewport.Height = max(m.height-chrome, 1)
	m.input.Width = max(m.viewport.Width-len(m.input.Prompt)-1, 1)
	m.ready = true
	m.refresh()
}

// refresh re-renders the transcript and scrolls to the newest entry.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

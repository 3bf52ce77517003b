package tui

import (
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// View renders the TUI.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	width := m.width - m.styles.App.GetHorizontalFrameSize()
	header := m.styles.Header.Render("Duke")
	if m.title != "" {
		info := truncate.StringWithTail(m.title, uint(max(width-8, 0)), "…")
		header += "  " + m.styles.HeaderInfo.Render(info)
	}
	return header
}

func (m *Model) viewFooter() string {
	return m.input.View() + "\n" + m.styles.Help.Render(m.help.View(m.keys))
}

// renderTranscript renders every entry wrapped to the viewport width.
func (m *Model) renderTranscript() string {
	width := m.viewport.Width - m.styles.Reply.GetHorizontalFrameSize()
	blocks := make([]string, 0, len(m.transcript.entries))
	for _, e := range m.transcript.entries {
		text := e.text
		if width > 0 {
			text = wordwrap.String(text, width)
		}
		switch e.kind {
		case entryInput:
			blocks = append(blocks, m.styles.Input.Render(m.input.Prompt+text))
		case entryError:
			blocks = append(blocks, m.styles.Error.Render(text))
		case entryReply:
			blocks = append(blocks, m.styles.Reply.Render(text))
		}
	}
	return strings.Join(blocks, "\n")
}

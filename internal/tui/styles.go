package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Text      lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Text:      lipgloss.Color("#DFE6E9"), // Light gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderInfo lipgloss.Style

	// Transcript
	Input   lipgloss.Style // Echoed user line
	Reply   lipgloss.Style
	Error   lipgloss.Style
	Divider lipgloss.Style

	// Prompt
	Prompt lipgloss.Style

	// Help
	Help lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Input: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Reply: lipgloss.NewStyle().
			Foreground(Colors.Text).
			PaddingLeft(2),

		Error: lipgloss.NewStyle().
			Foreground(Colors.Error).
			PaddingLeft(2),

		Divider: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Prompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Success),

		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}

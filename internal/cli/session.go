package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/session"
	"github.com/runoshun/duke/internal/tui"
)

// launchTUIFunc launches the full-screen interface, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

func launchTUI(cmd *cobra.Command, c *app.Container) error {
	transcript := &tui.Transcript{}
	transcript.Show(session.Introduction)
	s := c.NewSession(transcript)
	transcript.Show(session.Question)
	return tui.Run(cmd.Context(), s, transcript, storeLabel(c))
}

// runPlain runs a line REPL on the command's input and output.
func runPlain(cmd *cobra.Command, c *app.Container) error {
	out := cmd.OutOrStdout()
	display := newPlainDisplay(out, cmd.ErrOrStderr())

	display.Show(session.Introduction)
	s := c.NewSession(display)
	display.Show(session.Question)

	prompt := func() { _, _ = fmt.Fprint(out, session.Prompt) }
	return s.Run(cmd.Context(), cmd.InOrStdin(), display, prompt)
}

// storeLabel describes where tasks are kept, for the TUI header.
func storeLabel(c *app.Container) string {
	if c.Config.StorePath != "" {
		return c.AppConfig.Storage.Backend + ": " + c.Config.StorePath
	}
	return c.AppConfig.Storage.Backend + ": refs/" + c.AppConfig.Storage.Namespace + "/tasks"
}

// plainDisplay writes responses to out and errors to errOut.
type plainDisplay struct {
	out      io.Writer
	errOut   io.Writer
	errStyle lipgloss.Style
}

var _ domain.Display = (*plainDisplay)(nil)

func newPlainDisplay(out, errOut io.Writer) *plainDisplay {
	r := lipgloss.NewRenderer(errOut)
	return &plainDisplay{
		out:      out,
		errOut:   errOut,
		errStyle: r.NewStyle().Foreground(lipgloss.Color("#D63031")),
	}
}

func (d *plainDisplay) Show(msg string) {
	_, _ = fmt.Fprintln(d.out, msg)
}

func (d *plainDisplay) ShowError(msg string) {
	_, _ = fmt.Fprintln(d.errOut, d.errStyle.Render(msg))
}

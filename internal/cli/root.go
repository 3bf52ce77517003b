// Package cli provides the command-line interface for duke.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/duke/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// ContainerFactory builds the container once command-line overrides are parsed.
type ContainerFactory func(app.Overrides) (*app.Container, error)

// NewRootCommand creates the root command for duke.
// The container is built from newContainer before any subcommand runs.
func NewRootCommand(newContainer ContainerFactory, version string) *cobra.Command {
	var overrides app.Overrides
	var plain bool
	var c *app.Container

	root := &cobra.Command{
		Use:   "duke",
		Short: "Personal task tracker",
		Long: `duke keeps a list of to-dos, deadlines and events.

Run without arguments for an interactive session, or use a subcommand
for one-shot scripting. Send 'help' inside a session for the command list.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			container, err := newContainer(overrides)
			if err != nil {
				return err
			}
			c = container
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			return c.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if plain || c.AppConfig.UI.Plain {
				return runPlain(cmd, c)
			}
			return launchTUIFunc(cmd, c)
		},
	}

	root.PersistentFlags().StringVar(&overrides.File, "file", "", "Tasks file or database path")
	root.PersistentFlags().StringVar(&overrides.Backend, "backend", "", "Storage backend: file, git or sqlite")
	root.Flags().BoolVar(&plain, "plain", false, "Line-based prompt instead of the full-screen interface")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	container := func() *app.Container { return c }

	execCmd := newExecCommand(container)
	execCmd.GroupID = groupTask

	exportCmd := newExportCommand(container)
	exportCmd.GroupID = groupTask

	importCmd := newImportCommand(container)
	importCmd.GroupID = groupTask

	configCmd := newConfigCommand(container)
	configCmd.GroupID = groupSetup

	root.AddCommand(execCmd, exportCmd, importCmd, configCmd)

	return root
}

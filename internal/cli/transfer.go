package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(container func() *app.Container) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the task list as text or YAML",
		Long: `Write every stored task to stdout or a file.

Formats:
  text  One task per line, as in the tasks file (default)
  yaml  A tasks: sequence with type, description, date and done`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output) //nolint:gosec // path comes from the user
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			out, err := container().ExportTasksUseCase().Execute(cmd.Context(), usecase.ExportTasksInput{
				Writer: w,
				Format: format,
			})
			if err != nil {
				return err
			}
			if output != "" {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d tasks to %s\n", out.Count, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", usecase.FormatText, "Output format: text or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")

	return cmd
}

// newImportCommand creates the import command.
func newImportCommand(container func() *app.Container) *cobra.Command {
	var format string
	var replace, dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add tasks from a text or YAML file",
		Long: `Append tasks from a file to the stored list.

The format is taken from --format, or from the file extension (.yaml, .yml)
when the flag is not given. A file with any invalid entry imports nothing.
Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var content []byte
			var err error
			if path == "-" {
				content, err = io.ReadAll(cmd.InOrStdin())
			} else {
				content, err = os.ReadFile(path) //nolint:gosec // path comes from the user
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			if !cmd.Flags().Changed("format") {
				format = formatFromPath(path)
			}

			out, err := container().ImportTasksUseCase().Execute(cmd.Context(), usecase.ImportTasksInput{
				Format:  format,
				Content: content,
				Replace: replace,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			verb := "Imported"
			if dryRun {
				verb = "Would import"
			}
			_, _ = fmt.Fprintf(w, "%s %d tasks:\n", verb, len(out.Imported))
			for _, t := range out.Imported {
				_, _ = fmt.Fprintf(w, "  %s\n", t)
			}
			_, _ = fmt.Fprintf(w, "Now you have %d tasks in the list.\n", out.Total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", usecase.FormatText, "Input format: text or yaml")
	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the stored list instead of appending")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate without saving")

	return cmd
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return usecase.FormatYAML
	default:
		return usecase.FormatText
	}
}

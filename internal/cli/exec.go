package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/duke/internal/app"
	"github.com/runoshun/duke/internal/domain"
	"github.com/runoshun/duke/internal/usecase"
)

// newExecCommand creates the exec command.
func newExecCommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <command line...>",
		Short: "Run one command against the stored list",
		Long: `Run a single session command and exit.

The arguments are joined with spaces and parsed exactly as a line typed in a
session. The list is saved when the command changes it.

Examples:
  duke exec todo read book
  duke exec deadline return book /by 2/12/2019 1800
  duke exec done 1
  duke exec list`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			out, err := c.ExecLineUseCase().Execute(cmd.Context(), usecase.ExecLineInput{
				Line: strings.Join(args, " "),
			})
			if err != nil {
				var ue *domain.UserError
				if errors.As(err, &ue) {
					return errors.New(ue.Message)
				}
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Text)
			return nil
		},
	}
}

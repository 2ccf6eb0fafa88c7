package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/number-converter/internal/render"
)

func (a *app) newFromDecimalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "from-decimal <value>",
		Short: "Convert a decimal between 1 and 15 to binary, octal and hexadecimal",
		Long: `The from-decimal command converts a decimal value between 1 and 15
inclusive to binary, octal and a single hexadecimal digit.

Example:
  numconv from-decimal 5
  numconv from-decimal 15 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return a.userError(err)
			}

			ex, err := a.service.NewDecimalExercise(value)
			if err != nil {
				return a.userError(err)
			}

			if a.opts.jsonOut {
				return render.WriteJSON(cmd.OutOrStdout(), ex)
			}
			return a.reporter.WriteExercise(cmd.OutOrStdout(), ex)
		},
	}
	return cmd
}

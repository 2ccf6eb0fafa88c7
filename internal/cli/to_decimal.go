package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/number-converter/internal/convert"
	"github.com/ytget/number-converter/internal/model"
	"github.com/ytget/number-converter/internal/render"
)

// toDecimalResult is the JSON shape of the to-decimal command
type toDecimalResult struct {
	Base    int     `json:"base"`
	Name    string  `json:"name"`
	Rows    [][]int `json:"rows"`
	Results []int   `json:"results"`
}

func (a *app) newToDecimalCmd() *cobra.Command {
	var base int

	cmd := &cobra.Command{
		Use:   "to-decimal <row> [row...]",
		Short: "Convert digit rows in a positional base to decimal",
		Long: `The to-decimal command converts each row of digits to its decimal value.
Rows are digit strings ("1011", "7F") or comma separated digit values
("1,15,3") for bases above 16.

Example:
  numconv to-decimal --base 2 101 1111
  numconv to-decimal --base 16 FF 1a
  numconv to-decimal --base 60 1,30,0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := convert.ValidateBase(base); err != nil {
				return err
			}

			rows := make([][]int, 0, len(args))
			for i, arg := range args {
				row, err := convert.ParseDigits(arg, base)
				if err != nil {
					var digitErr *convert.DigitError
					if errors.As(err, &digitErr) {
						digitErr.Row = i
						return err
					}
					return fmt.Errorf("row %d: %w", i, err)
				}
				rows = append(rows, row)
			}

			results, err := convert.PositionalToDecimal(rows, base)
			if err != nil {
				return a.userError(err)
			}
			a.logger.Debug("rows converted", "base", base, "rows", len(rows))

			if a.opts.jsonOut {
				return render.WriteJSON(cmd.OutOrStdout(), toDecimalResult{
					Base:    base,
					Name:    model.BaseName(base),
					Rows:    rows,
					Results: results,
				})
			}
			return a.reporter.WriteMatrix(cmd.OutOrStdout(), rows, results, model.Base(base))
		},
	}

	cmd.Flags().IntVarP(&base, "base", "b", int(model.Binary), "Base of the digit rows (at least 2)")
	return cmd
}

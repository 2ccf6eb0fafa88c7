package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/number-converter/internal/exercise"
	"github.com/ytget/number-converter/internal/model"
	"github.com/ytget/number-converter/internal/render"
)

func (a *app) newMatrixCmd() *cobra.Command {
	var (
		baseName string
		rows     int
		cols     int
		seed     uint64
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Generate a random digit matrix and convert each row to decimal",
		Long: `The matrix command fills a matrix with random digits of the chosen base
and prints the decimal value of every row.

Example:
  numconv matrix --base binary
  numconv matrix --base hex --rows 2 --cols 3
  numconv matrix --base octal --seed 42 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ok := model.ParseBase(baseName)
			if !ok || !base.IsPositional() {
				return fmt.Errorf("%w: %q (use binary, octal or hex)", exercise.ErrUnsupportedBase, baseName)
			}

			service := a.service
			if cmd.Flags().Changed("seed") {
				service = exercise.NewService(exercise.WithSeed(seed), exercise.WithLogger(a.logger))
				service.SetMatrixSize(a.cfg.Matrix.Rows, a.cfg.Matrix.Cols)
			}
			if cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols") {
				currentRows, currentCols := service.MatrixSize()
				if !cmd.Flags().Changed("rows") {
					rows = currentRows
				}
				if !cmd.Flags().Changed("cols") {
					cols = currentCols
				}
				service.SetMatrixSize(rows, cols)
			}

			ex, err := service.NewMatrixExercise(base)
			if err != nil {
				return a.userError(err)
			}

			if a.opts.jsonOut {
				return render.WriteJSON(cmd.OutOrStdout(), ex)
			}
			return a.reporter.WriteExercise(cmd.OutOrStdout(), ex)
		},
	}

	cmd.Flags().StringVarP(&baseName, "base", "b", "binary", "Matrix base: binary, octal or hex")
	cmd.Flags().IntVar(&rows, "rows", 0, "Number of rows (default from config)")
	cmd.Flags().IntVar(&cols, "cols", 0, "Number of columns (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed for reproducible matrices")
	return cmd
}

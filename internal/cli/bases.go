package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/number-converter/internal/model"
	"github.com/ytget/number-converter/internal/render"
)

// baseEntry is the JSON shape of one row of the bases table
type baseEntry struct {
	Radix     int    `json:"radix"`
	Name      string `json:"name"`
	Localized string `json:"localized"`
}

func (a *app) newBasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List the supported bases and their names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.opts.jsonOut {
				return a.reporter.WriteBaseTable(cmd.OutOrStdout())
			}

			loc := a.reporter.Localization()
			entries := make([]baseEntry, 0, 4)
			for _, base := range append(model.PositionalBases(), model.Decimal) {
				entries = append(entries, baseEntry{
					Radix:     base.Radix(),
					Name:      base.Name(),
					Localized: loc.BaseName(base),
				})
			}
			return render.WriteJSON(cmd.OutOrStdout(), entries)
		},
	}
}

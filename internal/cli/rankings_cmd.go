package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulseboard/internal/cli/formatter"
)

func newRankingsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rankings",
		Short: "Rank KPIs, projects, and owners by performance",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := analyzeSnapshot(app)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRankings(result.Rankings))
			return nil
		},
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulseboard/internal/cli/formatter"
)

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Show thresholded findings about the portfolio",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := analyzeSnapshot(app)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatInsights(result.Insights))
			return nil
		},
	}
}

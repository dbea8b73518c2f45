package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulseboard/internal/cli/formatter"
)

func newRecommendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recommend",
		Short: "Show suggested actions and risk remediation plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := analyzeSnapshot(app)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRecommendations(result.Recommendations, result.RiskRecommendations))
			return nil
		},
	}
}

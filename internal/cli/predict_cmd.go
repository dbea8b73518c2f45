package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulseboard/internal/cli/formatter"
)

func newPredictCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "predict",
		Short: "Forecast per-project completion dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := analyzeSnapshot(app)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPredictions(result.Predictions))
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulseboard/internal/cli/formatter"
	"github.com/alexanderramin/pulseboard/internal/service"
)

func newStatusCmd(app *App) *cobra.Command {
	var showRecords bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the portfolio overview from the last loaded table",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := analyzeSnapshot(app)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatMetrics(result.Metrics))
			if showRecords {
				fmt.Println()
				fmt.Print(formatter.FormatRecords(result.Records))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRecords, "records", false, "Also list every scored KPI")
	return cmd
}

// analyzeSnapshot loads the stored table and re-scores it against the
// current clock.
func analyzeSnapshot(app *App) (*service.Result, error) {
	ctx := context.Background()

	records, err := app.Snapshots.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no KPI table loaded yet, run 'pulseboard load <file>' first")
	}

	return app.Analytics.AnalyzeRecords(ctx, records)
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulseboard/internal/cli/formatter"
	"github.com/alexanderramin/pulseboard/internal/ingest"
)

func newLoadCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Load a KPI table from a CSV or JSON file and analyze it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			table, err := ingest.ReadFile(args[0])
			if err != nil {
				return err
			}

			result, err := app.Analytics.Analyze(ctx, table)
			if err != nil {
				return err
			}

			if err := app.Snapshots.Save(ctx, result.Records); err != nil {
				return fmt.Errorf("saving snapshot: %w", err)
			}

			fmt.Print(formatter.FormatReport(result.Report))
			if app.interactive() {
				fmt.Println()
				fmt.Print(formatter.FormatMetrics(result.Metrics))
			}
			return nil
		},
	}
	return cmd
}

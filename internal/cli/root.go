package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/pulseboard/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Analytics service.AnalyticsService
	Snapshots service.SnapshotService

	// IsInteractive reports whether stdout is a terminal. Non-interactive
	// runs keep output to the essentials so pipes stay parseable.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive == nil || a.IsInteractive()
}

// NewRootCmd creates the top-level "pulseboard" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pulseboard",
		Short: "KPI analytics, scoring, and insight engine",
	}

	root.AddCommand(
		newLoadCmd(app),
		newStatusCmd(app),
		newRankingsCmd(app),
		newPredictCmd(app),
		newInsightsCmd(app),
		newRecommendCmd(app),
		newSummaryCmd(app),
	)

	return root
}

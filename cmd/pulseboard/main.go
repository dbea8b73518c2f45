package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/pulseboard/internal/cli"
	"github.com/alexanderramin/pulseboard/internal/config"
	"github.com/alexanderramin/pulseboard/internal/insight"
	"github.com/alexanderramin/pulseboard/internal/intelligence"
	"github.com/alexanderramin/pulseboard/internal/llm"
	"github.com/alexanderramin/pulseboard/internal/scoring"
	"github.com/alexanderramin/pulseboard/internal/service"
	"github.com/alexanderramin/pulseboard/internal/store"
	"github.com/alexanderramin/pulseboard/internal/validate"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pulseboard/pulseboard.db
	dbPath := os.Getenv("PULSEBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pulseboard", "pulseboard.db")
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	database, err := store.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	healthWeights, riskWeights := cfg.ScoringWeights()
	scorer := &scoring.Scorer{Health: healthWeights, Risk: riskWeights}
	generator := insight.NewGenerator(cfg.InsightThresholds())

	opts := []service.AnalyticsOption{}
	if os.Getenv("PULSEBOARD_LOG") != "" {
		opts = append(opts, service.WithObserver(service.NewLogAnalysisObserver(os.Stderr)))
	}

	// Wire the LLM augmenters only when the LLM is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client := llm.NewOllamaClient(llmCfg, observer)
		opts = append(opts,
			service.WithAugmenter(intelligence.NewNarrativeAugmenter(client)),
			service.WithAugmenter(intelligence.NewRiskBriefAugmenter(client, generator)),
		)
	}

	app := &cli.App{
		Analytics: service.NewAnalyticsService(validate.New(), scorer, generator, opts...),
		Snapshots: store.NewSQLiteSnapshotRepo(database),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

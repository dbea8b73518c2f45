package service

import (
	"context"

	"github.com/alexanderramin/pulseboard/internal/analytics"
	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/insight"
	"github.com/alexanderramin/pulseboard/internal/tabular"
	"github.com/alexanderramin/pulseboard/internal/validate"
)

// Result is the full analysis of one KPI table: the cleaned records with
// derived scores, the validation report, and every aggregate view built from
// them.
type Result struct {
	Records             []domain.Record
	Report              *validate.Report
	Metrics             analytics.KeyMetrics
	Rankings            analytics.Rankings
	Predictions         []analytics.ProjectPrediction
	Summary             analytics.Summary
	Insights            []insight.Insight
	Recommendations     []string
	RiskRecommendations []insight.RiskRecommendation
}

type AnalyticsService interface {
	// Analyze validates a raw table, scores the surviving records, and
	// computes all aggregates and insights.
	Analyze(ctx context.Context, t *tabular.Table) (*Result, error)

	// AnalyzeRecords re-scores already-validated records, for tables
	// restored from a snapshot.
	AnalyzeRecords(ctx context.Context, records []domain.Record) (*Result, error)
}

// Augmenter contributes extra insights from an external source, typically a
// language model. Augmenter failures never fail an analysis.
type Augmenter interface {
	Augment(ctx context.Context, records []domain.Record) ([]insight.Insight, error)
}

type SnapshotService interface {
	Save(ctx context.Context, records []domain.Record) error
	Load(ctx context.Context) ([]domain.Record, error)
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pulseboard/internal/analytics"
	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/insight"
	"github.com/alexanderramin/pulseboard/internal/scoring"
	"github.com/alexanderramin/pulseboard/internal/tabular"
	"github.com/alexanderramin/pulseboard/internal/validate"
)

type analyticsService struct {
	validator  *validate.Validator
	scorer     *scoring.Scorer
	insights   *insight.Generator
	augmenters []Augmenter
	observer   AnalysisObserver
	now        func() time.Time
}

// AnalyticsOption customizes an analytics service.
type AnalyticsOption func(*analyticsService)

// WithAugmenter attaches an insight augmenter. May be given more than once;
// a nil augmenter is ignored.
func WithAugmenter(a Augmenter) AnalyticsOption {
	return func(s *analyticsService) {
		if a != nil {
			s.augmenters = append(s.augmenters, a)
		}
	}
}

// WithObserver attaches an execution observer.
func WithObserver(o AnalysisObserver) AnalyticsOption {
	return func(s *analyticsService) { s.observer = observerOrNoop([]AnalysisObserver{o}) }
}

// WithClock pins the service clock. Used by tests.
func WithClock(now func() time.Time) AnalyticsOption {
	return func(s *analyticsService) { s.now = now }
}

func NewAnalyticsService(
	validator *validate.Validator,
	scorer *scoring.Scorer,
	insights *insight.Generator,
	opts ...AnalyticsOption,
) AnalyticsService {
	s := &analyticsService{
		validator: validator,
		scorer:    scorer,
		insights:  insights,
		observer:  NoopAnalysisObserver{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *analyticsService) Analyze(ctx context.Context, t *tabular.Table) (*Result, error) {
	started := s.now().UTC()

	records, report, err := s.validator.ValidateTable(t)
	if err != nil {
		s.observe(ctx, "analyze", started, err, nil)
		return nil, fmt.Errorf("validating table: %w", err)
	}

	result := s.buildResult(ctx, records, started)
	result.Report = report
	s.observe(ctx, "analyze", started, nil, result)
	return result, nil
}

func (s *analyticsService) AnalyzeRecords(ctx context.Context, records []domain.Record) (*Result, error) {
	started := s.now().UTC()
	result := s.buildResult(ctx, records, started)
	s.observe(ctx, "analyze_records", started, nil, result)
	return result, nil
}

// buildResult runs the scoring and aggregation pipeline over validated
// records. Augmenters run last; a failing augmenter drops its insights and
// nothing else, leaving an observer event behind.
func (s *analyticsService) buildResult(ctx context.Context, records []domain.Record, now time.Time) *Result {
	enriched := s.scorer.Enrich(records, now)

	insights := s.insights.Insights(enriched)
	for _, a := range s.augmenters {
		extra, err := a.Augment(ctx, enriched)
		if err != nil {
			s.observe(ctx, "augment", now, err, nil)
			continue
		}
		insights = append(insights, extra...)
	}

	return &Result{
		Records:             enriched,
		Metrics:             analytics.ComputeKeyMetrics(enriched),
		Rankings:            analytics.ComputeRankings(enriched),
		Predictions:         analytics.ComputePredictions(enriched, now),
		Summary:             analytics.ComputeSummary(enriched),
		Insights:            insight.RankInsights(insights),
		Recommendations:     insight.RankRecommendations(s.insights.Recommendations(enriched)),
		RiskRecommendations: s.insights.RiskRecommendations(enriched),
	}
}

func (s *analyticsService) observe(ctx context.Context, name string, started time.Time, err error, result *Result) {
	fields := map[string]any{}
	if result != nil {
		fields["records"] = len(result.Records)
		fields["insights"] = len(result.Insights)
	}
	s.observer.ObserveAnalysis(ctx, AnalysisEvent{
		Name:      name,
		Duration:  s.now().UTC().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}

package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

var testNow = time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

func record(status domain.Status, progress int, target, actual float64, daysAgo int) domain.Record {
	return domain.Record{
		Name:        "K",
		Project:     "P",
		Owner:       "O",
		Status:      status,
		Progress:    progress,
		TargetValue: target,
		ActualValue: actual,
		LastUpdated: testNow.Add(-time.Duration(daysAgo) * 24 * time.Hour),
	}
}

func TestScore_WorstCase(t *testing.T) {
	r := NewScorer().Score(record(domain.StatusRed, 1, 100, 20, 40), testNow)

	assert.InDelta(t, 8.0, r.HealthScore, 0.001)
	assert.InDelta(t, 100.0, r.RiskScore, 0.001)
	assert.Equal(t, domain.RiskHigh, r.RiskLevel)
	assert.Equal(t, domain.TrendDeclining, r.Trend)
	assert.Equal(t, domain.UpdateCritical, r.UpdateStatus)
	assert.Equal(t, domain.RiskTrendIncreasing, r.RiskTrend)
	assert.ElementsMatch(t, []domain.RiskFactor{
		domain.FactorStatusRed,
		domain.FactorLowProgress,
		domain.FactorLowHealth,
		domain.FactorStaleUpdate,
		domain.FactorLowCompletion,
	}, r.RiskFactors)
}

func TestScore_BestCase(t *testing.T) {
	r := NewScorer().Score(record(domain.StatusGreen, 5, 100, 95, 2), testNow)

	assert.InDelta(t, 98.0, r.HealthScore, 0.001)
	assert.InDelta(t, 0.0, r.RiskScore, 0.001)
	assert.Equal(t, domain.RiskLow, r.RiskLevel)
	assert.Equal(t, domain.TrendImproving, r.Trend)
	assert.Equal(t, domain.UpdateCurrent, r.UpdateStatus)
	assert.Empty(t, r.RiskFactors)
	require.NotNil(t, r.PredictedCompletion)
	assert.True(t, r.PredictedCompletion.After(testNow))
}

func TestScore_Idempotent(t *testing.T) {
	s := NewScorer()
	once := s.Score(record(domain.StatusYellow, 3, 200, 90, 10), testNow)
	twice := s.Score(once, testNow)
	assert.Equal(t, once, twice)
}

func TestCompletionPct(t *testing.T) {
	assert.Equal(t, 0.0, CompletionPct(0, 50))
	assert.Equal(t, 0.0, CompletionPct(-10, 50))
	assert.Equal(t, 50.0, CompletionPct(200, 100))
	assert.Equal(t, 100.0, CompletionPct(100, 150))
}

func TestDaysSince_NeverNegative(t *testing.T) {
	assert.Equal(t, 0, DaysSince(testNow.Add(48*time.Hour), testNow))
	assert.Equal(t, 3, DaysSince(testNow.Add(-80*time.Hour), testNow))
}

func TestRiskScore_MidTiers(t *testing.T) {
	s := NewScorer()

	// Yellow, progress 2, 10 days old, healthy enough to skip the health factor
	r := record(domain.StatusYellow, 2, 100, 100, 10)
	r.CompletionPct = 100
	r.DaysSinceUpdate = 10
	r.HealthScore = 75

	// 15 (yellow) + 15 (progress 2) + 0 (health >= 70) + 5 (8-14 days)
	assert.InDelta(t, 35.0, s.RiskScore(r), 0.001)
}

func TestRiskLevelFor(t *testing.T) {
	assert.Equal(t, domain.RiskLow, RiskLevelFor(39.9))
	assert.Equal(t, domain.RiskMedium, RiskLevelFor(40))
	assert.Equal(t, domain.RiskMedium, RiskLevelFor(69.9))
	assert.Equal(t, domain.RiskHigh, RiskLevelFor(70))
}

func TestTrendFor(t *testing.T) {
	// improving needs both high progress and high health
	assert.Equal(t, domain.TrendImproving, TrendFor(4, 70))
	assert.Equal(t, domain.TrendStable, TrendFor(4, 69))
	assert.Equal(t, domain.TrendStable, TrendFor(3, 90))

	// declining needs only one bad signal
	assert.Equal(t, domain.TrendDeclining, TrendFor(2, 90))
	assert.Equal(t, domain.TrendDeclining, TrendFor(5, 49))
}

func TestPriorityScore(t *testing.T) {
	assert.InDelta(t, 97.6, PriorityScore(100, 8, 1), 0.001)
	assert.InDelta(t, 6.6, PriorityScore(0, 98, 5), 0.001)
	assert.Equal(t, 100.0, PriorityScore(100, 0, 1))
}

func TestPredictCompletion(t *testing.T) {
	done := PredictCompletion(100, 5, testNow)
	require.NotNil(t, done)
	assert.Equal(t, testNow, *done)

	assert.Nil(t, PredictCompletion(0, 5, testNow))
	assert.Nil(t, PredictCompletion(50, 0, testNow))

	// 50% in 10 days: 10 more days to finish
	p := PredictCompletion(50, 10, testNow)
	require.NotNil(t, p)
	assert.Equal(t, testNow.Add(10*24*time.Hour), *p)
}

func TestUpdateStatusFor(t *testing.T) {
	assert.Equal(t, domain.UpdateCurrent, UpdateStatusFor(7))
	assert.Equal(t, domain.UpdateRecent, UpdateStatusFor(14))
	assert.Equal(t, domain.UpdateStale, UpdateStatusFor(30))
	assert.Equal(t, domain.UpdateCritical, UpdateStatusFor(31))
}

func TestEnrich_RowWise(t *testing.T) {
	records := []domain.Record{
		record(domain.StatusGreen, 5, 100, 95, 2),
		record(domain.StatusRed, 1, 100, 20, 40),
	}
	out := NewScorer().Enrich(records, testNow)
	require.Len(t, out, 2)
	assert.Greater(t, out[0].HealthScore, out[1].HealthScore)
	// inputs are untouched
	assert.Zero(t, records[0].HealthScore)
}

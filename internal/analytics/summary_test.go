package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

func TestComputeSummary_Empty(t *testing.T) {
	s := ComputeSummary(nil)
	assert.Empty(t, s.Metrics)
	assert.Empty(t, s.StatusDist)
}

func TestComputeSummary_MetricOrderAndStats(t *testing.T) {
	records := []domain.Record{
		{HealthScore: 10, Status: domain.StatusGreen, RiskLevel: domain.RiskLow},
		{HealthScore: 20, Status: domain.StatusGreen, RiskLevel: domain.RiskLow},
		{HealthScore: 30, Status: domain.StatusRed, RiskLevel: domain.RiskHigh},
		{HealthScore: 40, Status: domain.StatusGreen, RiskLevel: domain.RiskLow},
	}

	s := ComputeSummary(records)
	require.Len(t, s.Metrics, 7)
	assert.Equal(t, "Health Score", s.Metrics[0].Metric)
	assert.Equal(t, "Days Since Update", s.Metrics[6].Metric)

	health := s.Metrics[0]
	assert.InDelta(t, 25.0, health.Mean, 0.001)
	assert.InDelta(t, 25.0, health.Median, 0.001)
	assert.InDelta(t, 10.0, health.Min, 0.001)
	assert.InDelta(t, 40.0, health.Max, 0.001)
	assert.InDelta(t, 17.5, health.Q1, 0.001)
	assert.InDelta(t, 32.5, health.Q3, 0.001)
	assert.InDelta(t, 15.0, health.IQR, 0.001)
	// sample standard deviation
	assert.InDelta(t, 12.9099, health.StdDev, 0.001)
}

func TestComputeSummary_Distributions(t *testing.T) {
	records := []domain.Record{
		{Status: domain.StatusGreen, RiskLevel: domain.RiskLow},
		{Status: domain.StatusGreen, RiskLevel: domain.RiskLow},
		{Status: domain.StatusRed, RiskLevel: domain.RiskHigh},
	}

	s := ComputeSummary(records)

	require.Len(t, s.StatusDist, 2)
	assert.Equal(t, "G", s.StatusDist[0].Label)
	assert.Equal(t, 2, s.StatusDist[0].Count)
	assert.InDelta(t, 66.666, s.StatusDist[0].Percentage, 0.01)
	assert.Equal(t, "R", s.StatusDist[1].Label)

	require.Len(t, s.RiskLevelDist, 2)
	assert.Equal(t, "Low", s.RiskLevelDist[0].Label)
}

func TestQuantile_SingleValue(t *testing.T) {
	assert.Equal(t, 5.0, quantile([]float64{5}, 0.25))
}

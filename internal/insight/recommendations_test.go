package insight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

func TestRecommendations_EmptyInput(t *testing.T) {
	assert.Empty(t, defaultGen().Recommendations(nil))
}

func TestRecommendations_NeverEmptyForNonEmptyTable(t *testing.T) {
	recs := defaultGen().Recommendations(healthy(2))
	require.NotEmpty(t, recs)
}

func TestRecommendations_AllClearDefault(t *testing.T) {
	// healthy but not dominant enough to trigger the success rules
	records := healthy(3)
	for i := range records {
		records[i].HealthScore = 75
		records[i].Progress = 3
		records[i].Trend = domain.TrendStable
		records[i].CompletionPct = 60
	}

	recs := defaultGen().Recommendations(records)
	require.Len(t, recs, 1)
	assert.Equal(t, DefaultRecommendation, recs[0])
}

func TestRecommendations_HighRiskNamesFirstThree(t *testing.T) {
	records := troubled(5)
	names := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	for i := range records {
		records[i].Name = names[i]
	}

	recs := defaultGen().Recommendations(records)
	require.NotEmpty(t, recs)
	first := recs[0]
	assert.Contains(t, first, "5 high-risk KPIs")
	assert.Contains(t, first, "Alpha, Beta, Gamma")
	assert.NotContains(t, first, "Delta")
}

func TestRecommendations_StaleOwners(t *testing.T) {
	records := healthy(2)
	records[0].DaysSinceUpdate = 20
	records[0].Owner = "Carol"

	recs := defaultGen().Recommendations(records)
	var found bool
	for _, rec := range recs {
		if strings.Contains(rec, "14+ days") {
			found = true
			assert.Contains(t, rec, "Carol")
		}
	}
	assert.True(t, found)
}

func TestRecommendations_OwnerOverload(t *testing.T) {
	var records []domain.Record
	for i := 0; i < 11; i++ {
		r := healthy(1)[0]
		r.Owner = "Busy"
		records = append(records, r)
	}

	recs := defaultGen().Recommendations(records)
	assert.True(t, containsSubstring(recs, "Resource balancing"))
}

func TestRecommendations_BestPracticesNamesTopProjects(t *testing.T) {
	records := healthy(3)
	records[0].Project = "Apollo"
	records[1].Project = "Borealis"
	records[2].Project = "Citadel"

	recs := defaultGen().Recommendations(records)
	var found bool
	for _, rec := range recs {
		if strings.Contains(rec, "Best practices") {
			found = true
			assert.Contains(t, rec, "Apollo, Borealis")
			assert.NotContains(t, rec, "Citadel")
		}
	}
	assert.True(t, found)
}

func TestRiskRecommendations_PerLevel(t *testing.T) {
	records := append(troubled(2), healthy(1)...)
	records[0].Name = "Alpha"
	records[1].Name = "Beta"
	records[0].RiskLevel = domain.RiskHigh
	records[1].RiskLevel = domain.RiskMedium

	recs := defaultGen().RiskRecommendations(records)
	require.NotEmpty(t, recs)

	assert.Equal(t, "Stabilize High-Risk KPIs", recs[0].Title)
	assert.Equal(t, PriorityHigh, recs[0].Priority)
	assert.Equal(t, []string{"Alpha"}, recs[0].AffectedKPIs)
	assert.NotEmpty(t, recs[0].Actions)

	assert.Equal(t, "Monitor Medium-Risk KPIs", recs[1].Title)
	assert.Equal(t, "Maintain Low-Risk KPIs", recs[2].Title)
}

func TestRiskRecommendations_CommonFactors(t *testing.T) {
	records := troubled(3)
	for i := range records {
		records[i].RiskFactors = []domain.RiskFactor{domain.FactorStaleUpdate}
	}

	recs := defaultGen().RiskRecommendations(records)
	var found bool
	for _, rec := range recs {
		if rec.Title == "Close the Update Gap" {
			found = true
			assert.Contains(t, rec.Description, "3 of 3")
		}
	}
	assert.True(t, found)
}

func TestRiskRecommendations_Empty(t *testing.T) {
	assert.Empty(t, defaultGen().RiskRecommendations(nil))
}

func containsSubstring(items []string, sub string) bool {
	for _, item := range items {
		if strings.Contains(item, sub) {
			return true
		}
	}
	return false
}

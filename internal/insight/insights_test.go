package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

func defaultGen() *Generator {
	return NewGenerator(DefaultThresholds())
}

func healthy(n int) []domain.Record {
	var records []domain.Record
	for i := 0; i < n; i++ {
		records = append(records, domain.Record{
			Name:            "K",
			Project:         "P",
			Owner:           "O",
			Status:          domain.StatusGreen,
			Progress:        5,
			HealthScore:     95,
			CompletionPct:   90,
			DaysSinceUpdate: 2,
			Trend:           domain.TrendImproving,
			RiskLevel:       domain.RiskLow,
		})
	}
	return records
}

func troubled(n int) []domain.Record {
	var records []domain.Record
	for i := 0; i < n; i++ {
		records = append(records, domain.Record{
			Name:            "K",
			Project:         "P",
			Owner:           "O",
			Status:          domain.StatusRed,
			Progress:        1,
			HealthScore:     20,
			CompletionPct:   10,
			DaysSinceUpdate: 40,
			Trend:           domain.TrendDeclining,
			RiskLevel:       domain.RiskHigh,
		})
	}
	return records
}

func titles(insights []Insight) []string {
	out := make([]string, len(insights))
	for i, in := range insights {
		out[i] = in.Title
	}
	return out
}

func TestInsights_Empty(t *testing.T) {
	assert.Empty(t, defaultGen().Insights(nil))
}

func TestInsights_HealthyPortfolio(t *testing.T) {
	insights := defaultGen().Insights(healthy(4))
	got := titles(insights)

	assert.Contains(t, got, "Excellent Portfolio Health")
	assert.Contains(t, got, "Strong Progress")
	assert.Contains(t, got, "High Completion Rate")
	assert.Contains(t, got, "Positive Momentum")
	assert.NotContains(t, got, "High Risk Alert")
}

func TestInsights_TroubledPortfolio(t *testing.T) {
	insights := defaultGen().Insights(troubled(5))
	got := titles(insights)

	assert.Contains(t, got, "Critical Portfolio Health")
	assert.Contains(t, got, "High Risk Alert")
	assert.Contains(t, got, "Progress Concerns")
	assert.Contains(t, got, "Critical Update Gap")
	assert.Contains(t, got, "Projects Needing Support")
	assert.Contains(t, got, "Low Completion Rate")
	assert.Contains(t, got, "Negative Trend")
}

func TestInsights_HalfRedFiresRiskAlert(t *testing.T) {
	records := append(healthy(5), troubled(5)...)
	insights := defaultGen().Insights(records)
	got := titles(insights)

	// 50% red exceeds the 30% at-risk ratio
	assert.Contains(t, got, "High Risk Alert")
}

func TestInsights_TierPrecedence(t *testing.T) {
	// avg health between 50 and 70 fires the warning tier, not the error
	records := healthy(1)
	records[0].HealthScore = 60
	got := titles(defaultGen().Insights(records))
	assert.Contains(t, got, "Portfolio Health Warning")
	assert.NotContains(t, got, "Critical Portfolio Health")
}

func TestInsights_StalenessTiers(t *testing.T) {
	records := healthy(1)
	records[0].DaysSinceUpdate = 20
	got := titles(defaultGen().Insights(records))
	assert.Contains(t, got, "Update Required")
	assert.NotContains(t, got, "Critical Update Gap")

	records[0].DaysSinceUpdate = 35
	got = titles(defaultGen().Insights(records))
	assert.Contains(t, got, "Critical Update Gap")
	assert.NotContains(t, got, "Update Required")
}

func TestInsights_ProjectScopedRuleCarriesNames(t *testing.T) {
	records := troubled(2)
	records[0].Project = "Apollo"
	records[1].Project = "Zephyr"

	insights := defaultGen().Insights(records)
	var found bool
	for _, in := range insights {
		if in.Title == "Projects Needing Support" {
			found = true
			assert.Equal(t, []string{"Apollo", "Zephyr"}, in.Projects)
		}
	}
	require.True(t, found)
}

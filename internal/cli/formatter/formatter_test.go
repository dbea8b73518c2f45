package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulseboard/internal/analytics"
	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/insight"
	"github.com/alexanderramin/pulseboard/internal/validate"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "SCORE"},
		[][]string{{"short", "1"}, {"a much longer name", "100"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[3], "a much longer name")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
}

func TestFormatMetrics_Empty(t *testing.T) {
	out := FormatMetrics(analytics.KeyMetrics{})
	assert.Contains(t, out, "No KPI records loaded")
}

func TestFormatMetrics(t *testing.T) {
	m := analytics.ComputeKeyMetrics([]domain.Record{
		{Name: "A", Project: "P", Owner: "Alice", Status: domain.StatusGreen, HealthScore: 90, Progress: 4, CompletionPct: 80, Trend: domain.TrendImproving},
	})

	out := FormatMetrics(m)
	assert.Contains(t, out, "PORTFOLIO OVERVIEW")
	assert.Contains(t, out, "1 On Track")
	assert.Contains(t, out, "Alice")
}

func TestFormatInsights(t *testing.T) {
	out := FormatInsights([]insight.Insight{{
		Type:          insight.TypeError,
		Title:         "High Risk Alert",
		Message:       "33% of KPIs are at risk",
		Priority:      insight.PriorityHigh,
		AffectedCount: 2,
	}})

	assert.Contains(t, out, "High Risk Alert")
	assert.Contains(t, out, "[high]")
	assert.Contains(t, out, "affected: 2")
}

func TestFormatRecommendations(t *testing.T) {
	out := FormatRecommendations(
		[]string{"Do the thing"},
		[]insight.RiskRecommendation{{
			Title:       "Stabilize High-Risk KPIs",
			Description: "2 KPIs carry a high risk score",
			Priority:    insight.PriorityHigh,
			Impact:      "Prevents failures",
			Actions:     []string{"Review weekly"},
		}},
	)

	assert.Contains(t, out, "1. Do the thing")
	assert.Contains(t, out, "Stabilize High-Risk KPIs")
	assert.Contains(t, out, "Review weekly")
}

func TestFormatReport(t *testing.T) {
	out := FormatReport(&validate.Report{
		InputRows:    5,
		TotalRecords: 4,
		Dropped:      1,
		Warnings:     []string{"2 KPIs haven't been updated in 30+ days"},
	})

	assert.Contains(t, out, "5 rows in")
	assert.Contains(t, out, "4 records kept")
	assert.Contains(t, out, "1 duplicates dropped")
	assert.Contains(t, out, "30+ days")
}

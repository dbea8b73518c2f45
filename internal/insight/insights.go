package insight

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// InsightType classifies a finding's tone.
type InsightType string

const (
	TypeSuccess InsightType = "success"
	TypeWarning InsightType = "warning"
	TypeError   InsightType = "error"
)

// Priority orders findings for presentation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Insight is a structured, thresholded observation about the portfolio.
type Insight struct {
	Type          InsightType
	Title         string
	Message       string
	Priority      Priority
	AffectedCount int
	Projects      []string // set only by project-scoped rules
}

// Generator evaluates the rule set against an enriched table.
type Generator struct {
	Thresholds Thresholds
}

// NewGenerator creates a Generator with the given thresholds.
func NewGenerator(t Thresholds) *Generator {
	return &Generator{Thresholds: t}
}

// Insights runs every rule category against the records. Categories fire
// independently; tiers within a category are checked in descending severity
// and the first match wins. An empty table yields no insights.
func (g *Generator) Insights(records []domain.Record) []Insight {
	if len(records) == 0 {
		return nil
	}

	rules := []func([]domain.Record) []Insight{
		g.portfolioHealth,
		g.riskRatio,
		g.progress,
		g.staleness,
		g.projectHealth,
		g.completion,
		g.trend,
	}

	var insights []Insight
	for _, rule := range rules {
		insights = append(insights, rule(records)...)
	}
	return insights
}

func (g *Generator) portfolioHealth(records []domain.Record) []Insight {
	avg := meanHealth(records)
	switch {
	case avg < g.Thresholds.CriticalHealth:
		return []Insight{{
			Type:          TypeError,
			Title:         "Critical Portfolio Health",
			Message:       fmt.Sprintf("Average health score is %.0f%% - immediate intervention required", avg),
			Priority:      PriorityHigh,
			AffectedCount: countIf(records, func(r domain.Record) bool { return r.HealthScore < g.Thresholds.CriticalHealth }),
		}}
	case avg < g.Thresholds.WarningHealth:
		return []Insight{{
			Type:          TypeWarning,
			Title:         "Portfolio Health Warning",
			Message:       fmt.Sprintf("Average health score is %.0f%% - attention needed", avg),
			Priority:      PriorityMedium,
			AffectedCount: countIf(records, func(r domain.Record) bool { return r.HealthScore < g.Thresholds.WarningHealth }),
		}}
	case avg > g.Thresholds.GoodHealth:
		return []Insight{{
			Type:          TypeSuccess,
			Title:         "Excellent Portfolio Health",
			Message:       fmt.Sprintf("Portfolio maintaining %.0f%% health score", avg),
			Priority:      PriorityLow,
			AffectedCount: countIf(records, func(r domain.Record) bool { return r.HealthScore > g.Thresholds.GoodHealth }),
		}}
	}
	return nil
}

func (g *Generator) riskRatio(records []domain.Record) []Insight {
	atRisk := countIf(records, func(r domain.Record) bool { return r.Status == domain.StatusRed })
	ratio := float64(atRisk) / float64(len(records))
	if ratio > g.Thresholds.AtRiskRatio {
		return []Insight{{
			Type:          TypeError,
			Title:         "High Risk Alert",
			Message:       fmt.Sprintf("%.0f%% of KPIs are at risk", ratio*100),
			Priority:      PriorityHigh,
			AffectedCount: atRisk,
		}}
	}
	return nil
}

// progress can fire both its warning and its success: limited progress on
// some KPIs does not preclude strong progress on most.
func (g *Generator) progress(records []domain.Record) []Insight {
	var insights []Insight

	low := countIf(records, func(r domain.Record) bool { return r.Progress <= g.Thresholds.LowProgress })
	if low > 0 {
		insights = append(insights, Insight{
			Type:          TypeWarning,
			Title:         "Progress Concerns",
			Message:       fmt.Sprintf("%d KPIs showing limited progress", low),
			Priority:      PriorityMedium,
			AffectedCount: low,
		})
	}

	high := countIf(records, func(r domain.Record) bool { return r.Progress >= g.Thresholds.HighProgress })
	if high*2 > len(records) {
		insights = append(insights, Insight{
			Type:          TypeSuccess,
			Title:         "Strong Progress",
			Message:       fmt.Sprintf("%d KPIs showing excellent progress", high),
			Priority:      PriorityLow,
			AffectedCount: high,
		})
	}

	return insights
}

// staleness: a critical gap takes precedence over the plain stale warning.
func (g *Generator) staleness(records []domain.Record) []Insight {
	criticalStale := countIf(records, func(r domain.Record) bool { return r.DaysSinceUpdate > g.Thresholds.CriticalStaleDays })
	stale := countIf(records, func(r domain.Record) bool { return r.DaysSinceUpdate > g.Thresholds.StaleDays })

	switch {
	case criticalStale > 0:
		return []Insight{{
			Type:          TypeError,
			Title:         "Critical Update Gap",
			Message:       fmt.Sprintf("%d KPIs not updated in %d+ days", criticalStale, g.Thresholds.CriticalStaleDays),
			Priority:      PriorityHigh,
			AffectedCount: criticalStale,
		}}
	case stale > 0:
		return []Insight{{
			Type:          TypeWarning,
			Title:         "Update Required",
			Message:       fmt.Sprintf("%d KPIs need updates (%d+ days old)", stale, g.Thresholds.StaleDays),
			Priority:      PriorityMedium,
			AffectedCount: stale,
		}}
	}
	return nil
}

func (g *Generator) projectHealth(records []domain.Record) []Insight {
	struggling := projectsBelowHealth(records, g.Thresholds.CriticalHealth)
	if len(struggling) == 0 {
		return nil
	}
	return []Insight{{
		Type:          TypeWarning,
		Title:         "Projects Needing Support",
		Message:       fmt.Sprintf("%d projects below critical health threshold", len(struggling)),
		Priority:      PriorityHigh,
		AffectedCount: len(struggling),
		Projects:      struggling,
	}}
}

func (g *Generator) completion(records []domain.Record) []Insight {
	var sum float64
	for _, r := range records {
		sum += r.CompletionPct
	}
	avg := sum / float64(len(records))

	switch {
	case avg < 40:
		return []Insight{{
			Type:     TypeError,
			Title:    "Low Completion Rate",
			Message:  fmt.Sprintf("Average completion is only %.0f%%", avg),
			Priority: PriorityHigh,
		}}
	case avg > 80:
		return []Insight{{
			Type:     TypeSuccess,
			Title:    "High Completion Rate",
			Message:  fmt.Sprintf("Average completion at %.0f%%", avg),
			Priority: PriorityLow,
		}}
	}
	return nil
}

func (g *Generator) trend(records []domain.Record) []Insight {
	improving := countIf(records, func(r domain.Record) bool { return r.Trend == domain.TrendImproving })
	declining := countIf(records, func(r domain.Record) bool { return r.Trend == domain.TrendDeclining })

	switch {
	case declining > improving:
		return []Insight{{
			Type:          TypeWarning,
			Title:         "Negative Trend",
			Message:       fmt.Sprintf("%d KPIs showing declining trend", declining),
			Priority:      PriorityMedium,
			AffectedCount: declining,
		}}
	case improving > declining*2:
		return []Insight{{
			Type:          TypeSuccess,
			Title:         "Positive Momentum",
			Message:       fmt.Sprintf("%d KPIs showing improvement", improving),
			Priority:      PriorityLow,
			AffectedCount: improving,
		}}
	}
	return nil
}

func meanHealth(records []domain.Record) float64 {
	var sum float64
	for _, r := range records {
		sum += r.HealthScore
	}
	return sum / float64(len(records))
}

func countIf(records []domain.Record, pred func(domain.Record) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// projectsBelowHealth returns the sorted names of projects whose mean health
// is under the limit.
func projectsBelowHealth(records []domain.Record, limit float64) []string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Project] += r.HealthScore
		counts[r.Project]++
	}

	var struggling []string
	for project, sum := range sums {
		if sum/float64(counts[project]) < limit {
			struggling = append(struggling, project)
		}
	}
	sort.Strings(struggling)
	return struggling
}

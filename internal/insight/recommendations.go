package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// DefaultRecommendation is emitted when no rule fires on a non-empty table;
// the recommendation list is never empty for non-empty input.
const DefaultRecommendation = "All KPIs within acceptable parameters. Continue current monitoring."

const ownerOverloadLimit = 10

// Recommendations generates imperative action suggestions from the same
// thresholds the insight rules use.
func (g *Generator) Recommendations(records []domain.Record) []string {
	if len(records) == 0 {
		return nil
	}

	var recs []string

	if names := namesWhere(records, func(r domain.Record) bool { return r.RiskLevel == domain.RiskHigh }); len(names) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Immediate action: %d high-risk KPIs require intervention. Focus on: %s",
			len(names), strings.Join(head(names, 3), ", ")))
	}

	stale := filter(records, func(r domain.Record) bool { return r.DaysSinceUpdate > g.Thresholds.StaleDays })
	if len(stale) > 0 {
		owners := uniqueOwners(stale)
		recs = append(recs, fmt.Sprintf(
			"Update required: %d KPIs have not been updated in %d+ days. Priority updates for: %s",
			len(stale), g.Thresholds.StaleDays, strings.Join(head(owners, 3), ", ")))
	}

	if low := countIf(records, func(r domain.Record) bool { return r.Progress <= g.Thresholds.LowProgress }); low > 0 {
		recs = append(recs, fmt.Sprintf(
			"Progress support: %d KPIs showing limited progress. Consider additional resources or revised targets.", low))
	}

	recs = append(recs, g.ownerRecommendations(records)...)
	recs = append(recs, g.projectRecommendations(records)...)
	recs = append(recs, g.trendRecommendations(records)...)

	nearComplete := countIf(records, func(r domain.Record) bool {
		return r.CompletionPct >= 80 && r.CompletionPct < 100
	})
	if nearComplete > 0 {
		recs = append(recs, fmt.Sprintf(
			"Final push: %d KPIs are 80%%+ complete. Focus resources to achieve full completion.", nearComplete))
	}

	if len(recs) == 0 {
		recs = append(recs, DefaultRecommendation)
	}
	return recs
}

func (g *Generator) ownerRecommendations(records []domain.Record) []string {
	counts := make(map[string]int)
	health := make(map[string]float64)
	for _, r := range records {
		counts[r.Owner]++
		health[r.Owner] += r.HealthScore
	}

	overloaded := 0
	struggling := 0
	for owner, count := range counts {
		if count > ownerOverloadLimit {
			overloaded++
		}
		if health[owner]/float64(count) < 60 {
			struggling++
		}
	}

	var recs []string
	if overloaded > 0 {
		recs = append(recs, fmt.Sprintf(
			"Resource balancing: %d owners managing %d+ KPIs. Consider redistributing workload.",
			overloaded, ownerOverloadLimit))
	}
	if struggling > 0 {
		recs = append(recs, fmt.Sprintf(
			"Support needed: %d owners with average health score below 60%%. Provide additional support or training.",
			struggling))
	}
	return recs
}

func (g *Generator) projectRecommendations(records []domain.Record) []string {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		sums[r.Project] += r.HealthScore
		counts[r.Project]++
	}

	lowPerforming := 0
	var highPerforming []string
	for project, sum := range sums {
		avg := sum / float64(counts[project])
		if avg < 60 {
			lowPerforming++
		}
		if avg > 85 {
			highPerforming = append(highPerforming, project)
		}
	}
	sort.Strings(highPerforming)

	var recs []string
	if lowPerforming > 0 {
		recs = append(recs, fmt.Sprintf(
			"Project review: %d projects below 60%% health. Consider project-level interventions.", lowPerforming))
	}
	if len(highPerforming) > 0 {
		recs = append(recs, fmt.Sprintf(
			"Best practices: study %s for successful strategies to replicate.",
			strings.Join(head(highPerforming, 2), ", ")))
	}
	return recs
}

func (g *Generator) trendRecommendations(records []domain.Record) []string {
	declining := countIf(records, func(r domain.Record) bool { return r.Trend == domain.TrendDeclining })
	improving := countIf(records, func(r domain.Record) bool { return r.Trend == domain.TrendImproving })

	var recs []string
	if float64(declining) > float64(len(records))*0.3 {
		recs = append(recs, fmt.Sprintf(
			"Trend alert: %d KPIs showing declining trend. Review targets and strategies.", declining))
	}
	if float64(improving) > float64(len(records))*0.5 {
		recs = append(recs, fmt.Sprintf(
			"Positive momentum: %d KPIs improving. Maintain current strategies and document successes.", improving))
	}
	return recs
}

func filter(records []domain.Record, pred func(domain.Record) bool) []domain.Record {
	var out []domain.Record
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

func namesWhere(records []domain.Record, pred func(domain.Record) bool) []string {
	var names []string
	for _, r := range records {
		if pred(r) {
			names = append(names, r.Name)
		}
	}
	return names
}

func uniqueOwners(records []domain.Record) []string {
	seen := make(map[string]bool)
	var owners []string
	for _, r := range records {
		if !seen[r.Owner] {
			seen[r.Owner] = true
			owners = append(owners, r.Owner)
		}
	}
	return owners
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

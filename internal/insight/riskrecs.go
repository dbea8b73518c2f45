package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// RiskRecommendation is a structured remediation plan for one slice of the
// portfolio's risk profile.
type RiskRecommendation struct {
	Title        string
	Description  string
	Priority     Priority
	Impact       string
	Actions      []string
	AffectedKPIs []string
}

// RiskRecommendations builds remediation plans per risk level plus plans for
// the most common contributing factors. Levels with no records produce no
// entry.
func (g *Generator) RiskRecommendations(records []domain.Record) []RiskRecommendation {
	if len(records) == 0 {
		return nil
	}

	var recs []RiskRecommendation

	if high := filter(records, func(r domain.Record) bool { return r.RiskLevel == domain.RiskHigh }); len(high) > 0 {
		recs = append(recs, RiskRecommendation{
			Title:       "Stabilize High-Risk KPIs",
			Description: fmt.Sprintf("%d KPIs carry a high risk score and need immediate attention", len(high)),
			Priority:    PriorityHigh,
			Impact:      "Prevents portfolio-level failures and missed commitments",
			Actions: []string{
				"Schedule an owner review for each high-risk KPI this week",
				"Reassess targets that are no longer achievable",
				"Escalate blockers to project leadership",
			},
			AffectedKPIs: head(namesOf(high), 5),
		})
	}

	if medium := filter(records, func(r domain.Record) bool { return r.RiskLevel == domain.RiskMedium }); len(medium) > 0 {
		recs = append(recs, RiskRecommendation{
			Title:       "Monitor Medium-Risk KPIs",
			Description: fmt.Sprintf("%d KPIs show early risk signals", len(medium)),
			Priority:    PriorityMedium,
			Impact:      "Keeps emerging problems from escalating to high risk",
			Actions: []string{
				"Add medium-risk KPIs to the weekly review agenda",
				"Confirm owners have a current action plan",
			},
			AffectedKPIs: head(namesOf(medium), 3),
		})
	}

	if low := countIf(records, func(r domain.Record) bool { return r.RiskLevel == domain.RiskLow }); low > 0 {
		recs = append(recs, RiskRecommendation{
			Title:       "Maintain Low-Risk KPIs",
			Description: fmt.Sprintf("%d KPIs are tracking well", low),
			Priority:    PriorityLow,
			Impact:      "Sustains current performance",
			Actions: []string{
				"Keep the existing update cadence",
				"Document practices worth replicating elsewhere",
			},
		})
	}

	recs = append(recs, g.factorRecommendations(records)...)
	return recs
}

// factorRecommendations targets risk factors shared by a third or more of the
// table.
func (g *Generator) factorRecommendations(records []domain.Record) []RiskRecommendation {
	counts := make(map[domain.RiskFactor]int)
	for _, r := range records {
		for _, f := range r.RiskFactors {
			counts[f]++
		}
	}

	threshold := (len(records) + 2) / 3

	plans := []struct {
		factor domain.RiskFactor
		rec    RiskRecommendation
	}{
		{domain.FactorStaleUpdate, RiskRecommendation{
			Title:       "Close the Update Gap",
			Description: "Stale updates are a widespread risk driver",
			Priority:    PriorityMedium,
			Impact:      "Restores visibility into actual KPI state",
			Actions: []string{
				"Set a recurring update reminder for all owners",
				"Treat any KPI untouched for two weeks as blocked until updated",
			},
		}},
		{domain.FactorLowProgress, RiskRecommendation{
			Title:       "Unblock Stalled Work",
			Description: "Low progress ratings are a widespread risk driver",
			Priority:    PriorityMedium,
			Impact:      "Recovers delivery velocity across the portfolio",
			Actions: []string{
				"Run a blocker triage with affected owners",
				"Split oversized KPIs into smaller measurable steps",
			},
		}},
		{domain.FactorStatusRed, RiskRecommendation{
			Title:       "Reduce Red-Status Concentration",
			Description: "Red status is a widespread risk driver",
			Priority:    PriorityHigh,
			Impact:      "Lowers the share of KPIs flagged as off track",
			Actions: []string{
				"Verify each red status is current rather than stale",
				"Define an explicit recovery plan per red KPI",
			},
		}},
	}

	var recs []RiskRecommendation
	for _, p := range plans {
		if n := counts[p.factor]; n >= threshold && n > 0 {
			rec := p.rec
			rec.Description = fmt.Sprintf("%s (%d of %d KPIs affected)", rec.Description, n, len(records))
			recs = append(recs, rec)
		}
	}
	return recs
}

func namesOf(records []domain.Record) []string {
	names := namesWhere(records, func(domain.Record) bool { return true })
	sort.Strings(names)
	return names
}

// String renders the plan as a single paragraph for plain-text output.
func (r RiskRecommendation) String() string {
	return fmt.Sprintf("[%s] %s: %s. %s", strings.ToUpper(string(r.Priority)), r.Title, r.Description, strings.Join(r.Actions, "; "))
}

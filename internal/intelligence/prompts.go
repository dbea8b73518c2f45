package intelligence

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/analytics"
	"github.com/alexanderramin/pulseboard/internal/insight"
)

const narrativeSystemPrompt = `You are a portfolio analyst. You receive aggregate KPI statistics
and write a short executive narrative. Rules:
- Three to five sentences, plain prose, no markdown.
- Mention only numbers present in the input; never invent figures.
- Lead with overall health, then risk, then one concrete next step.`

// buildNarrativePrompt renders the aggregate metrics into the user prompt.
// Only aggregates cross the LLM boundary; row-level KPI data never does.
func buildNarrativePrompt(m analytics.KeyMetrics, avgRisk float64, highRisk int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total KPIs: %d\n", m.TotalKPIs)
	fmt.Fprintf(&b, "Average health score: %.1f\n", m.AvgHealth)
	fmt.Fprintf(&b, "Average risk score: %.1f\n", avgRisk)
	fmt.Fprintf(&b, "On track: %d (%.0f%%)\n", m.OnTrack, m.OnTrackPct)
	fmt.Fprintf(&b, "At risk: %d (%.0f%%)\n", m.AtRisk, m.AtRiskPct)
	fmt.Fprintf(&b, "High risk: %d\n", highRisk)
	fmt.Fprintf(&b, "Improving: %d, declining: %d\n", m.Improving, m.Declining)
	fmt.Fprintf(&b, "Average completion: %.1f%%\n", m.AvgCompletion)
	b.WriteString("\nWrite the narrative now.")
	return b.String()
}

const riskBriefSystemPrompt = `You are a risk analyst. You receive aggregate risk statistics
and the titles of active mitigation plans, and write a short risk brief. Rules:
- Two to four sentences, plain prose, no markdown.
- Mention only numbers present in the input; never invent figures.
- Close with which plan to start first and why.`

// buildRiskBriefPrompt renders risk aggregates and plan titles into the user
// prompt. Plan titles are portfolio-level; affected KPI names stay out.
func buildRiskBriefPrompt(total, highRisk int, avgRisk float64, plans []insight.RiskRecommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total KPIs: %d\n", total)
	fmt.Fprintf(&b, "High risk: %d\n", highRisk)
	fmt.Fprintf(&b, "Average risk score: %.1f\n", avgRisk)
	b.WriteString("Active mitigation plans:\n")
	for _, p := range plans {
		fmt.Fprintf(&b, "- %s (priority %s)\n", p.Title, p.Priority)
	}
	b.WriteString("\nWrite the risk brief now.")
	return b.String()
}

package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/insight"
	"github.com/alexanderramin/pulseboard/internal/llm"
)

// RiskBriefTitle is the title of the risk brief insight.
const RiskBriefTitle = "Risk Brief"

// RiskBriefAugmenter summarizes the portfolio's risk posture and its active
// mitigation plans in one prose insight. It only speaks up when at least one
// KPI is rated high risk; otherwise the deterministic rule output stands on
// its own.
type RiskBriefAugmenter struct {
	client llm.Client
	gen    *insight.Generator
}

// NewRiskBriefAugmenter creates an augmenter backed by the given client.
// A nil client always uses the deterministic fallback.
func NewRiskBriefAugmenter(client llm.Client, gen *insight.Generator) *RiskBriefAugmenter {
	return &RiskBriefAugmenter{client: client, gen: gen}
}

// Augment produces the risk brief. Like the narrative, an LLM failure never
// surfaces as an error; the brief falls back to the same aggregates.
func (a *RiskBriefAugmenter) Augment(ctx context.Context, records []domain.Record) ([]insight.Insight, error) {
	if len(records) == 0 {
		return nil, nil
	}

	avgRisk, highRisk := riskAggregates(records)
	if highRisk == 0 {
		return nil, nil
	}
	plans := a.gen.RiskRecommendations(records)

	text := a.generate(ctx, len(records), highRisk, avgRisk, plans)
	if text == "" {
		text = DeterministicRiskBrief(len(records), highRisk, avgRisk, plans)
	}

	return []insight.Insight{{
		Type:          insight.TypeError,
		Title:         RiskBriefTitle,
		Message:       text,
		Priority:      insight.PriorityHigh,
		AffectedCount: highRisk,
	}}, nil
}

func (a *RiskBriefAugmenter) generate(ctx context.Context, total, highRisk int, avgRisk float64, plans []insight.RiskRecommendation) string {
	if a.client == nil || !a.client.Available(ctx) {
		return ""
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskRiskBrief,
		SystemPrompt: riskBriefSystemPrompt,
		UserPrompt:   buildRiskBriefPrompt(total, highRisk, avgRisk, plans),
	})
	if err != nil {
		return ""
	}

	text := strings.TrimSpace(resp.Text)
	if len(text) < 20 {
		return ""
	}
	return text
}

// DeterministicRiskBrief builds the brief directly from aggregates without
// using the LLM.
func DeterministicRiskBrief(total, highRisk int, avgRisk float64, plans []insight.RiskRecommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d KPIs are rated high risk, with an average risk score of %.0f across the portfolio. ",
		highRisk, total, avgRisk)
	if len(plans) > 0 {
		titles := make([]string, len(plans))
		for i, p := range plans {
			titles[i] = p.Title
		}
		fmt.Fprintf(&b, "Active mitigation plans: %s. ", strings.Join(titles, "; "))
		fmt.Fprintf(&b, "Start with \"%s\" this week.", plans[0].Title)
	} else {
		b.WriteString("Review the high-risk group and assign owners for remediation this week.")
	}
	return b.String()
}

package intelligence

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/analytics"
	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/insight"
	"github.com/alexanderramin/pulseboard/internal/llm"
)

// NarrativeTitle is the title of the augmenter's single insight.
const NarrativeTitle = "Portfolio Narrative"

// NarrativeAugmenter turns aggregate portfolio statistics into one prose
// insight. When the LLM is unavailable or returns unusable text, it falls
// back to a deterministic narrative built from the same numbers.
type NarrativeAugmenter struct {
	client llm.Client
}

// NewNarrativeAugmenter creates an augmenter backed by the given client.
// A nil client always uses the deterministic fallback.
func NewNarrativeAugmenter(client llm.Client) *NarrativeAugmenter {
	return &NarrativeAugmenter{client: client}
}

// Augment produces the narrative insight. It never returns an error for an
// LLM failure; only an empty input yields no insight at all.
func (a *NarrativeAugmenter) Augment(ctx context.Context, records []domain.Record) ([]insight.Insight, error) {
	if len(records) == 0 {
		return nil, nil
	}

	metrics := analytics.ComputeKeyMetrics(records)
	avgRisk, highRisk := riskAggregates(records)

	text := a.generate(ctx, metrics, avgRisk, highRisk)
	if text == "" {
		text = DeterministicNarrative(metrics, avgRisk, highRisk)
	}

	return []insight.Insight{{
		Type:     narrativeType(metrics.AvgHealth),
		Title:    NarrativeTitle,
		Message:  text,
		Priority: insight.PriorityLow,
	}}, nil
}

func (a *NarrativeAugmenter) generate(ctx context.Context, m analytics.KeyMetrics, avgRisk float64, highRisk int) string {
	if a.client == nil || !a.client.Available(ctx) {
		return ""
	}

	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskNarrative,
		SystemPrompt: narrativeSystemPrompt,
		UserPrompt:   buildNarrativePrompt(m, avgRisk, highRisk),
	})
	if err != nil {
		return ""
	}

	text := strings.TrimSpace(resp.Text)
	if len(text) < 20 {
		// Too short to be a real narrative; treat as invalid output.
		return ""
	}
	return text
}

// DeterministicNarrative builds the narrative directly from aggregates
// without using the LLM. Used as a fallback when Ollama is unavailable or
// when the LLM output fails validation.
func DeterministicNarrative(m analytics.KeyMetrics, avgRisk float64, highRisk int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The portfolio tracks %d KPIs with an average health score of %.0f%%. ",
		m.TotalKPIs, m.AvgHealth)
	fmt.Fprintf(&b, "%d KPIs (%.0f%%) are on track and %d (%.0f%%) are at risk, with %d rated high risk (average risk score %.0f). ",
		m.OnTrack, m.OnTrackPct, m.AtRisk, m.AtRiskPct, highRisk, avgRisk)

	switch {
	case m.Declining > m.Improving:
		fmt.Fprintf(&b, "Momentum is negative: %d KPIs are declining against %d improving. Prioritize the high-risk group for review this week.",
			m.Declining, m.Improving)
	case m.Improving > m.Declining:
		fmt.Fprintf(&b, "Momentum is positive: %d KPIs are improving against %d declining. Maintain the current cadence and close out near-complete work.",
			m.Improving, m.Declining)
	default:
		b.WriteString("Momentum is flat. Focus on refreshing stale updates to restore visibility.")
	}
	return b.String()
}

func riskAggregates(records []domain.Record) (avgRisk float64, highRisk int) {
	var sum float64
	for _, r := range records {
		sum += r.RiskScore
		if r.RiskLevel == domain.RiskHigh {
			highRisk++
		}
	}
	return sum / float64(len(records)), highRisk
}

func narrativeType(avgHealth float64) insight.InsightType {
	switch {
	case avgHealth >= 70:
		return insight.TypeSuccess
	case avgHealth >= 50:
		return insight.TypeWarning
	default:
		return insight.TypeError
	}
}

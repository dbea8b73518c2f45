package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/insight"
)

// FormatInsights renders the ranked insight list.
func FormatInsights(insights []insight.Insight) string {
	var b strings.Builder
	b.WriteString(Header("Insights"))
	b.WriteString("\n\n")

	if len(insights) == 0 {
		b.WriteString(Dim("No insights for the current table.\n"))
		return b.String()
	}

	for _, in := range insights {
		b.WriteString(renderInsight(in))
		b.WriteString("\n")
	}
	return b.String()
}

func renderInsight(in insight.Insight) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s %s\n", insightBadge(in.Type), Bold(in.Title), priorityTag(in.Priority))
	fmt.Fprintf(&b, "  %s\n", StyleFg.Render(in.Message))
	if in.AffectedCount > 0 {
		fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("affected: %d", in.AffectedCount)))
	}
	if len(in.Projects) > 0 {
		fmt.Fprintf(&b, "  %s\n", Dim("projects: "+strings.Join(in.Projects, ", ")))
	}
	return b.String()
}

func insightBadge(t insight.InsightType) string {
	switch t {
	case insight.TypeSuccess:
		return StyleGreen.Render("✔")
	case insight.TypeWarning:
		return StyleYellow.Render("▲")
	case insight.TypeError:
		return StyleRed.Render("✖")
	default:
		return StyleDim.Render("•")
	}
}

func priorityTag(p insight.Priority) string {
	switch p {
	case insight.PriorityHigh:
		return StyleRed.Render("[high]")
	case insight.PriorityMedium:
		return StyleYellow.Render("[medium]")
	case insight.PriorityLow:
		return StyleDim.Render("[low]")
	default:
		return ""
	}
}

// FormatRecommendations renders the action list plus structured risk plans.
func FormatRecommendations(recs []string, riskRecs []insight.RiskRecommendation) string {
	var b strings.Builder
	b.WriteString(Header("Recommendations"))
	b.WriteString("\n\n")

	if len(recs) == 0 {
		b.WriteString(Dim("No recommendations for the current table.\n"))
	}
	for i, rec := range recs {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%d.", i+1)), StyleFg.Render(rec))
	}

	if len(riskRecs) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Risk Plans"))
		b.WriteString("\n\n")
		for _, rr := range riskRecs {
			fmt.Fprintf(&b, "%s %s\n", priorityTag(rr.Priority), Bold(rr.Title))
			fmt.Fprintf(&b, "  %s\n", StyleFg.Render(rr.Description))
			fmt.Fprintf(&b, "  %s\n", Dim("impact: "+rr.Impact))
			for _, action := range rr.Actions {
				fmt.Fprintf(&b, "  %s %s\n", Dim("-"), StyleFg.Render(action))
			}
			if len(rr.AffectedKPIs) > 0 {
				fmt.Fprintf(&b, "  %s\n", Dim("kpis: "+strings.Join(rr.AffectedKPIs, ", ")))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

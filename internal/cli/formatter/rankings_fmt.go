package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/pulseboard/internal/analytics"
)

// FormatRankings renders the performance buckets and group leaderboards.
func FormatRankings(rk analytics.Rankings) string {
	var b strings.Builder

	b.WriteString(renderBucket("Top Performers", rk.TopPerformers, StyleGreen))
	b.WriteString(renderBucket("Need Improvement", rk.NeedImprovement, StyleYellow))
	b.WriteString(renderBucket("Critical", rk.Critical, StyleRed))

	b.WriteString(renderGroups("Projects", rk.Projects))
	b.WriteString(renderGroups("Owners", rk.Owners))

	return b.String()
}

func renderBucket(title string, entries []analytics.RankedKPI, style lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(Dim("none\n\n"))
		return b.String()
	}

	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d.", i+1)),
			Bold(e.Name),
			Dim(e.Project),
			style.Render(fmt.Sprintf("%.0f%%", e.Score)),
		})
	}
	b.WriteString(RenderTable([]string{"#", "KPI", "PROJECT", "HEALTH"}, rows))
	b.WriteString("\n")
	return b.String()
}

func renderGroups(title string, groups []analytics.GroupScore) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if len(groups) == 0 {
		b.WriteString(Dim("none\n\n"))
		return b.String()
	}

	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			Bold(g.Name),
			fmt.Sprintf("%d", g.Count),
			HealthStyle(g.AvgHealth).Render(fmt.Sprintf("%.0f%%", g.AvgHealth)),
			fmt.Sprintf("%.0f%%", g.SuccessRate),
			Bold(fmt.Sprintf("%.0f", g.OverallScore)),
		})
	}
	b.WriteString(RenderTable([]string{"NAME", "KPIS", "AVG HEALTH", "SUCCESS", "SCORE"}, rows))
	b.WriteString("\n")
	return b.String()
}

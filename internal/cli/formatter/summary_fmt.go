package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/analytics"
)

// FormatSummary renders descriptive statistics and distributions.
func FormatSummary(s analytics.Summary) string {
	var b strings.Builder
	b.WriteString(Header("Statistical Summary"))
	b.WriteString("\n\n")

	if len(s.Metrics) == 0 {
		b.WriteString(Dim("No records to summarize.\n"))
		return b.String()
	}

	rows := make([][]string, 0, len(s.Metrics))
	for _, m := range s.Metrics {
		rows = append(rows, []string{
			Bold(m.Metric),
			fmt.Sprintf("%.1f", m.Mean),
			fmt.Sprintf("%.1f", m.Median),
			fmt.Sprintf("%.1f", m.StdDev),
			Dim(fmt.Sprintf("%.1f", m.Min)),
			Dim(fmt.Sprintf("%.1f", m.Max)),
			fmt.Sprintf("%.1f", m.IQR),
		})
	}
	b.WriteString(RenderTable(
		[]string{"METRIC", "MEAN", "MEDIAN", "STD", "MIN", "MAX", "IQR"}, rows))

	b.WriteString("\n")
	b.WriteString(renderDistribution("Status Distribution", s.StatusDist))
	b.WriteString(renderDistribution("Risk Level Distribution", s.RiskLevelDist))
	return b.String()
}

func renderDistribution(title string, entries []analytics.DistributionEntry) string {
	var b strings.Builder
	b.WriteString(Header(title))
	b.WriteString("\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s %s\n",
			Bold(fmt.Sprintf("%-8s", e.Label)),
			RenderProgress(e.Percentage, 20),
			Dim(fmt.Sprintf("(%d)", e.Count)))
	}
	b.WriteString("\n")
	return b.String()
}

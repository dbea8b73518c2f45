package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/validate"
)

// FormatReport renders the validation outcome of a load.
func FormatReport(rep *validate.Report) string {
	var b strings.Builder
	b.WriteString(Header("Validation"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s rows in, %s records kept",
		Bold(fmt.Sprintf("%d", rep.InputRows)),
		Bold(fmt.Sprintf("%d", rep.TotalRecords)))
	if rep.Dropped > 0 {
		fmt.Fprintf(&b, ", %s", StyleYellow.Render(fmt.Sprintf("%d duplicates dropped", rep.Dropped)))
	}
	b.WriteString("\n")

	for _, w := range rep.Warnings {
		fmt.Fprintf(&b, "%s %s\n", StyleYellow.Render("▲"), StyleFg.Render(w))
	}
	return b.String()
}

// FormatRecords renders the scored KPI table.
func FormatRecords(records []domain.Record) string {
	var b strings.Builder
	b.WriteString(Header("KPIs"))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(Dim("No KPI records loaded.\n"))
		return b.String()
	}

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			Bold(r.Name),
			Dim(r.Project),
			Dim(r.Owner),
			StatusPill(r.Status),
			RenderProgress(r.CompletionPct, 10),
			HealthStyle(r.HealthScore).Render(fmt.Sprintf("%.0f", r.HealthScore)),
			RiskIndicator(r.RiskLevel),
			TrendArrow(r.Trend),
			Dim(fmt.Sprintf("%dd", r.DaysSinceUpdate)),
		})
	}
	b.WriteString(RenderTable(
		[]string{"NAME", "PROJECT", "OWNER", "STATUS", "COMPLETION", "HEALTH", "RISK", "TREND", "AGE"}, rows))
	return b.String()
}

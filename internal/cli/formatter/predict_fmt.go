package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/analytics"
)

// FormatPredictions renders the per-project completion forecasts.
func FormatPredictions(preds []analytics.ProjectPrediction) string {
	var b strings.Builder
	b.WriteString(Header("Completion Forecast"))
	b.WriteString("\n\n")

	if len(preds) == 0 {
		b.WriteString(Dim("No projects with measurable completion velocity.\n"))
		return b.String()
	}

	rows := make([][]string, 0, len(preds))
	for _, p := range preds {
		rows = append(rows, []string{
			Bold(p.Project),
			RenderProgress(p.CurrentCompletion, 10),
			fmt.Sprintf("%.0f days", p.EstimatedDays),
			StyleBlue.Render(p.EstimatedDate.Format("2006-01-02")),
			confidenceCell(p.Confidence),
			Dim(fmt.Sprintf("%d", p.KPICount)),
		})
	}
	b.WriteString(RenderTable(
		[]string{"PROJECT", "COMPLETION", "REMAINING", "ETA", "CONFIDENCE", "KPIS"}, rows))
	return b.String()
}

func confidenceCell(c float64) string {
	label := fmt.Sprintf("%.0f%%", c)
	switch {
	case c >= 80:
		return StyleGreen.Render(label)
	case c >= 60:
		return StyleYellow.Render(label)
	default:
		return StyleRed.Render(label)
	}
}

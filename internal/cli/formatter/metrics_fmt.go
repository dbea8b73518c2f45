package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/pulseboard/internal/analytics"
)

// FormatMetrics renders the portfolio key metrics dashboard.
func FormatMetrics(m analytics.KeyMetrics) string {
	var b strings.Builder

	b.WriteString(Header("Portfolio Overview"))
	b.WriteString("\n\n")

	if m.TotalKPIs == 0 {
		b.WriteString(Dim("No KPI records loaded.\n"))
		return b.String()
	}

	onTrack := StyleGreen.Render(fmt.Sprintf("%d On Track (%.0f%%)", m.OnTrack, m.OnTrackPct))
	attention := StyleYellow.Render(fmt.Sprintf("%d Needs Attention", m.NeedsAttention))
	atRisk := StyleRed.Render(fmt.Sprintf("%d At Risk (%.0f%%)", m.AtRisk, m.AtRiskPct))
	fmt.Fprintf(&b, "%s KPIs  •  %s  •  %s  •  %s\n\n", Bold(fmt.Sprintf("%d", m.TotalKPIs)), onTrack, attention, atRisk)

	fmt.Fprintf(&b, "Avg health      %s\n", RenderProgress(m.AvgHealth, 20))
	fmt.Fprintf(&b, "Avg completion  %s\n", RenderProgress(m.AvgCompletion, 20))
	fmt.Fprintf(&b, "Avg progress    %s\n\n", Bold(fmt.Sprintf("%.1f / 5", m.AvgProgress)))

	fmt.Fprintf(&b, "Trends: %s %d improving   %s %d stable   %s %d declining\n\n",
		StyleGreen.Render("↑"), m.Improving,
		StyleDim.Render("→"), m.Stable,
		StyleRed.Render("↓"), m.Declining)

	b.WriteString(Header("Owners"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d owners across %d projects, max load %d KPIs (avg %.1f)\n\n",
		m.UniqueOwners, m.UniqueProjects, m.MaxOwnerLoad, m.AvgOwnerLoad)

	b.WriteString(renderOwnerTable(m.OwnerLoads))
	return b.String()
}

func renderOwnerTable(loads map[string]analytics.OwnerLoad) string {
	owners := make([]string, 0, len(loads))
	for owner := range loads {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(a, b int) bool {
		if loads[owners[a]].Count != loads[owners[b]].Count {
			return loads[owners[a]].Count > loads[owners[b]].Count
		}
		return owners[a] < owners[b]
	})

	rows := make([][]string, 0, len(owners))
	for _, owner := range owners {
		load := loads[owner]
		rows = append(rows, []string{
			Bold(owner),
			fmt.Sprintf("%d", load.Count),
			HealthStyle(load.AvgHealth).Render(fmt.Sprintf("%.0f%%", load.AvgHealth)),
		})
	}
	return RenderTable([]string{"OWNER", "KPIS", "AVG HEALTH"}, rows)
}

package analytics

import "github.com/alexanderramin/pulseboard/internal/domain"

// OwnerLoad describes one owner's share of the portfolio.
type OwnerLoad struct {
	Count     int
	AvgHealth float64
}

// KeyMetrics holds the portfolio-level figures consumed by presentation and
// export collaborators. An empty input table yields the zero value with
// initialized maps, never an error.
type KeyMetrics struct {
	TotalKPIs int

	OnTrack        int
	NeedsAttention int
	AtRisk         int
	OnTrackPct     float64
	AtRiskPct      float64

	AvgHealth     float64
	AvgProgress   float64
	AvgCompletion float64

	Improving int
	Stable    int
	Declining int

	UniqueOwners   int
	UniqueProjects int
	MaxOwnerLoad   int
	AvgOwnerLoad   float64
	OwnerLoads     map[string]OwnerLoad
	ProjectCounts  map[string]int
}

// ComputeKeyMetrics aggregates the enriched table into portfolio figures.
func ComputeKeyMetrics(records []domain.Record) KeyMetrics {
	m := KeyMetrics{
		TotalKPIs:     len(records),
		OwnerLoads:    make(map[string]OwnerLoad),
		ProjectCounts: make(map[string]int),
	}
	if len(records) == 0 {
		return m
	}

	ownerHealth := make(map[string]float64)
	var healthSum, progressSum, completionSum float64

	for _, r := range records {
		switch r.Status {
		case domain.StatusGreen:
			m.OnTrack++
		case domain.StatusYellow:
			m.NeedsAttention++
		case domain.StatusRed:
			m.AtRisk++
		}

		switch r.Trend {
		case domain.TrendImproving:
			m.Improving++
		case domain.TrendDeclining:
			m.Declining++
		default:
			m.Stable++
		}

		healthSum += r.HealthScore
		progressSum += float64(r.Progress)
		completionSum += r.CompletionPct

		load := m.OwnerLoads[r.Owner]
		load.Count++
		m.OwnerLoads[r.Owner] = load
		ownerHealth[r.Owner] += r.HealthScore

		m.ProjectCounts[r.Project]++
	}

	total := float64(len(records))
	m.OnTrackPct = float64(m.OnTrack) / total * 100
	m.AtRiskPct = float64(m.AtRisk) / total * 100
	m.AvgHealth = healthSum / total
	m.AvgProgress = progressSum / total
	m.AvgCompletion = completionSum / total

	m.UniqueOwners = len(m.OwnerLoads)
	m.UniqueProjects = len(m.ProjectCounts)
	for owner, load := range m.OwnerLoads {
		load.AvgHealth = ownerHealth[owner] / float64(load.Count)
		m.OwnerLoads[owner] = load
		if load.Count > m.MaxOwnerLoad {
			m.MaxOwnerLoad = load.Count
		}
	}
	m.AvgOwnerLoad = total / float64(m.UniqueOwners)

	return m
}

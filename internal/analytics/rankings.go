package analytics

import (
	"sort"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

const (
	maxRankEntries = 10
	maxNameLen     = 50
)

// RankedKPI is one entry in a performance bucket.
type RankedKPI struct {
	Name    string
	Score   float64
	Project string
}

// GroupScore ranks a project or owner by its combined health and success rate.
type GroupScore struct {
	Name         string
	AvgHealth    float64
	SuccessRate  float64 // % of records with Green status
	OverallScore float64 // (AvgHealth + SuccessRate) / 2
	Count        int
}

// Rankings buckets records by health score and ranks projects and owners.
type Rankings struct {
	TopPerformers   []RankedKPI // health > 80
	NeedImprovement []RankedKPI // 50 <= health <= 80
	Critical        []RankedKPI // health < 50
	Projects        []GroupScore
	Owners          []GroupScore
}

// ComputeRankings sorts records by health descending and produces the three
// performance buckets (10 entries each) plus project and owner rankings.
func ComputeRankings(records []domain.Record) Rankings {
	var rk Rankings
	if len(records) == 0 {
		return rk
	}

	sorted := make([]domain.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].HealthScore > sorted[b].HealthScore
	})

	for _, r := range sorted {
		entry := RankedKPI{
			Name:    truncateName(r.Name),
			Score:   r.HealthScore,
			Project: r.Project,
		}
		switch {
		case r.HealthScore > 80:
			if len(rk.TopPerformers) < maxRankEntries {
				rk.TopPerformers = append(rk.TopPerformers, entry)
			}
		case r.HealthScore >= 50:
			if len(rk.NeedImprovement) < maxRankEntries {
				rk.NeedImprovement = append(rk.NeedImprovement, entry)
			}
		default:
			if len(rk.Critical) < maxRankEntries {
				rk.Critical = append(rk.Critical, entry)
			}
		}
	}

	rk.Projects = rankGroups(records, func(r domain.Record) string { return r.Project })
	rk.Owners = rankGroups(records, func(r domain.Record) string { return r.Owner })

	return rk
}

// rankGroups scores each group by (avg health + green-rate percentage) / 2,
// sorted by overall score descending with name as the tie-break.
func rankGroups(records []domain.Record, keyOf func(domain.Record) string) []GroupScore {
	type acc struct {
		health float64
		green  int
		count  int
	}
	groups := make(map[string]*acc)
	for _, r := range records {
		key := keyOf(r)
		a := groups[key]
		if a == nil {
			a = &acc{}
			groups[key] = a
		}
		a.health += r.HealthScore
		a.count++
		if r.Status == domain.StatusGreen {
			a.green++
		}
	}

	scores := make([]GroupScore, 0, len(groups))
	for name, a := range groups {
		avgHealth := a.health / float64(a.count)
		successRate := float64(a.green) / float64(a.count) * 100
		scores = append(scores, GroupScore{
			Name:         name,
			AvgHealth:    avgHealth,
			SuccessRate:  successRate,
			OverallScore: (avgHealth + successRate) / 2,
			Count:        a.count,
		})
	}

	sort.Slice(scores, func(a, b int) bool {
		if scores[a].OverallScore != scores[b].OverallScore {
			return scores[a].OverallScore > scores[b].OverallScore
		}
		return scores[a].Name < scores[b].Name
	})

	return scores
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) > maxNameLen {
		return string(runes[:maxNameLen]) + "..."
	}
	return name
}

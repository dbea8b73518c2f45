package insight

import (
	"sort"
	"strings"
)

const maxRanked = 10

var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// RankInsights deduplicates by title (case-insensitive, first occurrence
// wins), orders high before medium before low with unranked priorities last,
// and caps the list at ten. The sort is stable so rule order breaks ties.
func RankInsights(insights []Insight) []Insight {
	seen := make(map[string]bool)
	deduped := make([]Insight, 0, len(insights))
	for _, in := range insights {
		key := strings.ToLower(in.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		deduped = append(deduped, in)
	}

	sort.SliceStable(deduped, func(a, b int) bool {
		return rankOf(deduped[a].Priority) < rankOf(deduped[b].Priority)
	})

	if len(deduped) > maxRanked {
		deduped = deduped[:maxRanked]
	}
	return deduped
}

// RankRecommendations deduplicates exact strings keeping first occurrence and
// caps the list at ten. Rule order already reflects urgency.
func RankRecommendations(recs []string) []string {
	seen := make(map[string]bool)
	deduped := make([]string, 0, len(recs))
	for _, rec := range recs {
		if seen[rec] {
			continue
		}
		seen[rec] = true
		deduped = append(deduped, rec)
	}
	if len(deduped) > maxRanked {
		deduped = deduped[:maxRanked]
	}
	return deduped
}

func rankOf(p Priority) int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return len(priorityRank)
}

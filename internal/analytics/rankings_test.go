package analytics

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

func TestComputeRankings_Buckets(t *testing.T) {
	records := []domain.Record{
		rec("Top", "P", "O", domain.StatusGreen, 95, 5, domain.TrendImproving),
		rec("Mid", "P", "O", domain.StatusYellow, 80, 3, domain.TrendStable),
		rec("Edge", "P", "O", domain.StatusYellow, 50, 3, domain.TrendStable),
		rec("Low", "P", "O", domain.StatusRed, 20, 1, domain.TrendDeclining),
	}

	rk := ComputeRankings(records)

	require.Len(t, rk.TopPerformers, 1)
	assert.Equal(t, "Top", rk.TopPerformers[0].Name)

	// 80 and 50 are both inclusive bounds of the middle bucket
	require.Len(t, rk.NeedImprovement, 2)
	assert.Equal(t, "Mid", rk.NeedImprovement[0].Name)
	assert.Equal(t, "Edge", rk.NeedImprovement[1].Name)

	require.Len(t, rk.Critical, 1)
	assert.Equal(t, "Low", rk.Critical[0].Name)
}

func TestComputeRankings_CapsAtTen(t *testing.T) {
	var records []domain.Record
	for i := 0; i < 15; i++ {
		records = append(records,
			rec(fmt.Sprintf("K%d", i), "P", "O", domain.StatusGreen, 90, 5, domain.TrendImproving))
	}
	rk := ComputeRankings(records)
	assert.Len(t, rk.TopPerformers, 10)
}

func TestComputeRankings_TruncatesLongNames(t *testing.T) {
	long := strings.Repeat("n", 60)
	rk := ComputeRankings([]domain.Record{
		rec(long, "P", "O", domain.StatusGreen, 90, 5, domain.TrendImproving),
	})
	require.Len(t, rk.TopPerformers, 1)
	assert.Len(t, rk.TopPerformers[0].Name, 53)
	assert.True(t, strings.HasSuffix(rk.TopPerformers[0].Name, "..."))

	// rune-based truncation keeps multi-byte names valid
	wide := strings.Repeat("ü", 60)
	rk = ComputeRankings([]domain.Record{
		rec(wide, "P", "O", domain.StatusGreen, 90, 5, domain.TrendImproving),
	})
	require.Len(t, rk.TopPerformers, 1)
	assert.Equal(t, 53, utf8.RuneCountInString(rk.TopPerformers[0].Name))
	assert.True(t, utf8.ValidString(rk.TopPerformers[0].Name))
}

func TestComputeRankings_Groups(t *testing.T) {
	records := []domain.Record{
		rec("A", "Good", "Alice", domain.StatusGreen, 90, 5, domain.TrendImproving),
		rec("B", "Good", "Alice", domain.StatusGreen, 80, 4, domain.TrendStable),
		rec("C", "Bad", "Bob", domain.StatusRed, 30, 1, domain.TrendDeclining),
	}

	rk := ComputeRankings(records)

	require.Len(t, rk.Projects, 2)
	good := rk.Projects[0]
	assert.Equal(t, "Good", good.Name)
	assert.InDelta(t, 85.0, good.AvgHealth, 0.001)
	assert.InDelta(t, 100.0, good.SuccessRate, 0.001)
	assert.InDelta(t, 92.5, good.OverallScore, 0.001)
	assert.Equal(t, 2, good.Count)

	bad := rk.Projects[1]
	assert.Equal(t, "Bad", bad.Name)
	assert.InDelta(t, 15.0, bad.OverallScore, 0.001)

	require.Len(t, rk.Owners, 2)
	assert.Equal(t, "Alice", rk.Owners[0].Name)
}

func TestComputeRankings_Empty(t *testing.T) {
	rk := ComputeRankings(nil)
	assert.Empty(t, rk.TopPerformers)
	assert.Empty(t, rk.Projects)
}

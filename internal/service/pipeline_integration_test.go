package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/store"
	"github.com/alexanderramin/pulseboard/internal/testutil"
)

// Exercises the load-analyze-snapshot-reanalyze round trip the CLI performs
// across invocations.
func TestPipeline_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := store.NewSQLiteSnapshotRepo(testutil.NewTestDB(t))
	svc := newTestService()

	records := []domain.Record{
		testutil.KPIRecord(),
		testutil.KPIRecord(func(r *domain.Record) {
			r.Name = "Churn Rate"
			r.Status = domain.StatusRed
			r.Progress = 1
			r.ActualValue = 10
			r.LastUpdated = time.Now().UTC().Add(-45 * 24 * time.Hour)
		}),
	}

	first, err := svc.AnalyzeRecords(ctx, records)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first.Records))

	restored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, restored, 2)

	second, err := svc.AnalyzeRecords(ctx, restored)
	require.NoError(t, err)

	// re-scoring a restored snapshot reproduces the derived fields
	for i := range first.Records {
		assert.InDelta(t, first.Records[i].HealthScore, second.Records[i].HealthScore, 0.001)
		assert.Equal(t, first.Records[i].RiskLevel, second.Records[i].RiskLevel)
	}
	assert.Equal(t, first.Metrics.TotalKPIs, second.Metrics.TotalKPIs)
	assert.NotEmpty(t, second.Recommendations)
}

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// SQLiteSnapshotRepo persists the last analyzed table so later commands can
// re-score it without re-ingesting the source file. Each save replaces the
// previous snapshot wholesale.
type SQLiteSnapshotRepo struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(db *sql.DB) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: db}
}

// Save replaces the stored snapshot with the given records in one
// transaction. Record order is preserved through the position column.
func (r *SQLiteSnapshotRepo) Save(ctx context.Context, records []domain.Record) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM kpi_records`); err != nil {
		return fmt.Errorf("clearing previous snapshot: %w", err)
	}

	query := `INSERT INTO kpi_records (
		id, position, name, project, owner, goal, description, measurement,
		status, progress, target_value, actual_value, last_updated,
		health_score, risk_score, risk_level, completion_pct, days_since_update,
		update_status, trend, priority_score, predicted_completion, risk_factors, risk_trend)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, rec := range records {
		_, err := tx.ExecContext(ctx, query,
			uuid.NewString(),
			i,
			rec.Name,
			rec.Project,
			rec.Owner,
			rec.Goal,
			rec.Description,
			rec.Measurement,
			string(rec.Status),
			rec.Progress,
			rec.TargetValue,
			rec.ActualValue,
			rec.LastUpdated.UTC().Format(time.RFC3339),
			rec.HealthScore,
			rec.RiskScore,
			string(rec.RiskLevel),
			rec.CompletionPct,
			rec.DaysSinceUpdate,
			string(rec.UpdateStatus),
			string(rec.Trend),
			rec.PriorityScore,
			nullableTime(rec.PredictedCompletion),
			joinFactors(rec.RiskFactors),
			string(rec.RiskTrend),
		)
		if err != nil {
			return fmt.Errorf("inserting record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot in its original order. An empty table is
// not an error.
func (r *SQLiteSnapshotRepo) Load(ctx context.Context) ([]domain.Record, error) {
	query := `SELECT name, project, owner, goal, description, measurement,
		status, progress, target_value, actual_value, last_updated,
		health_score, risk_score, risk_level, completion_pct, days_since_update,
		update_status, trend, priority_score, predicted_completion, risk_factors, risk_trend
		FROM kpi_records ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot rows: %w", err)
	}
	return records, nil
}

// Count returns the number of records in the stored snapshot.
func (r *SQLiteSnapshotRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM kpi_records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting snapshot records: %w", err)
	}
	return n, nil
}

func scanRecord(rows *sql.Rows) (domain.Record, error) {
	var (
		rec                 domain.Record
		status              string
		riskLevel           string
		updateStatus        string
		trend               string
		riskTrend           string
		lastUpdated         string
		predictedCompletion sql.NullString
		factors             string
	)

	err := rows.Scan(
		&rec.Name, &rec.Project, &rec.Owner, &rec.Goal, &rec.Description, &rec.Measurement,
		&status, &rec.Progress, &rec.TargetValue, &rec.ActualValue, &lastUpdated,
		&rec.HealthScore, &rec.RiskScore, &riskLevel, &rec.CompletionPct, &rec.DaysSinceUpdate,
		&updateStatus, &trend, &rec.PriorityScore, &predictedCompletion, &factors, &riskTrend,
	)
	if err != nil {
		return domain.Record{}, fmt.Errorf("scanning snapshot record: %w", err)
	}

	rec.Status = domain.Status(status)
	rec.RiskLevel = domain.RiskLevel(riskLevel)
	rec.UpdateStatus = domain.UpdateStatus(updateStatus)
	rec.Trend = domain.Trend(trend)
	rec.RiskTrend = domain.RiskTrend(riskTrend)

	rec.LastUpdated, err = time.Parse(time.RFC3339, lastUpdated)
	if err != nil {
		return domain.Record{}, fmt.Errorf("parsing last_updated: %w", err)
	}

	if predictedCompletion.Valid {
		t, err := time.Parse(time.RFC3339, predictedCompletion.String)
		if err != nil {
			return domain.Record{}, fmt.Errorf("parsing predicted_completion: %w", err)
		}
		rec.PredictedCompletion = &t
	}

	rec.RiskFactors = splitFactors(factors)
	return rec, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func joinFactors(factors []domain.RiskFactor) string {
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}

func splitFactors(s string) []domain.RiskFactor {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	factors := make([]domain.RiskFactor, len(parts))
	for i, p := range parts {
		factors[i] = domain.RiskFactor(p)
	}
	return factors
}

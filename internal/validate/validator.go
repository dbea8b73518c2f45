package validate

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/pulseboard/internal/domain"
	"github.com/alexanderramin/pulseboard/internal/tabular"
)

// ErrNilTable is returned when the caller hands over no table at all.
var ErrNilTable = errors.New("validate: nil input table")

// Validator turns arbitrary tabular input into schema-conformant KPI records.
// Per-value defects are always repaired with documented defaults; the only
// error it raises is a structurally unusable input.
type Validator struct {
	now func() time.Time
}

// New creates a Validator using the wall clock.
func New() *Validator {
	return &Validator{now: time.Now}
}

// NewWithClock creates a Validator with an injected clock. Used by tests to
// pin "now" for recency and future-date handling.
func NewWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// ValidateTable builds one record per input row, repairs every field, drops
// duplicates, and returns the cleaned records with a validation report.
// Rows sharing (name, project, owner) collapse to the most recently updated
// one; the result is ordered by last-updated descending with input order
// preserved among ties.
func (v *Validator) ValidateTable(t *tabular.Table) ([]domain.Record, *Report, error) {
	if t == nil {
		return nil, nil, ErrNilTable
	}

	now := v.now().UTC()
	n := t.NumRows()

	records := make([]domain.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, v.buildRecord(t, i, now))
	}

	records = dropExactDuplicates(records)
	records = dedupeByKey(records)

	return records, buildReport(records, n, now), nil
}

// buildRecord assembles a single validated record from row i. A column absent
// from the table gets its documented column default; a present column gets
// per-value cleaning (which may fall back to a different default, notably
// status: absent column means Red, invalid value means Yellow).
func (v *Validator) buildRecord(t *tabular.Table, i int, now time.Time) domain.Record {
	var r domain.Record

	if cell, ok := t.Cell("name", i); ok {
		r.Name = CleanText(cell)
	} else {
		r.Name = domain.DefaultName
	}
	if cell, ok := t.Cell("project", i); ok {
		r.Project = CleanText(cell)
	} else {
		r.Project = domain.DefaultProject
	}
	if cell, ok := t.Cell("owner", i); ok {
		r.Owner = CleanText(cell)
	} else {
		r.Owner = domain.DefaultOwner
	}

	r.Goal = optionalText(t, "goal", i)
	r.Description = optionalText(t, "description", i)
	r.Measurement = optionalText(t, "measurement", i)

	if cell, ok := t.Cell("status", i); ok {
		r.Status = CleanStatus(cell)
	} else {
		r.Status = domain.StatusRed
	}

	if cell, ok := t.Cell("progress", i); ok {
		r.Progress = CleanProgress(cell)
	} else {
		r.Progress = domain.DefaultProgress
	}

	if cell, ok := t.Cell("target_value", i); ok {
		r.TargetValue = CleanNumeric(cell, domain.DefaultTarget)
	} else {
		r.TargetValue = domain.DefaultTarget
	}
	if cell, ok := t.Cell("actual_value", i); ok {
		r.ActualValue = CleanNumeric(cell, 0)
	} else {
		r.ActualValue = 0
	}

	if cell, ok := t.Cell("last_updated", i); ok {
		r.LastUpdated = CleanDate(cell, now)
	} else {
		r.LastUpdated = now
	}

	return r
}

func optionalText(t *tabular.Table, column string, i int) string {
	if cell, ok := t.Cell(column, i); ok {
		return CleanText(cell)
	}
	return domain.DefaultText
}

// dropExactDuplicates removes rows identical across all source fields,
// keeping the first occurrence.
func dropExactDuplicates(records []domain.Record) []domain.Record {
	seen := make(map[string]bool, len(records))
	out := records[:0]
	for _, r := range records {
		key := fmt.Sprintf("%s|%s|%s|%s|%s|%s|%s|%d|%g|%g|%d",
			r.Name, r.Project, r.Owner, r.Goal, r.Description, r.Measurement,
			r.Status, r.Progress, r.TargetValue, r.ActualValue, r.LastUpdated.Unix())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}
	return out
}

// dedupeByKey keeps only the most recently updated row per (name, project,
// owner). The stable sort breaks timestamp ties by original row order.
func dedupeByKey(records []domain.Record) []domain.Record {
	sort.SliceStable(records, func(a, b int) bool {
		return records[a].LastUpdated.After(records[b].LastUpdated)
	})

	seen := make(map[domain.GroupKey]bool, len(records))
	out := records[:0]
	for _, r := range records {
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}

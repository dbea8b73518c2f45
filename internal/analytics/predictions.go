package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// assumedWorkWindowDays is the fixed window the velocity model assumes each
// project has been worked for. There is no per-record history to measure a
// real window from.
const assumedWorkWindowDays = 30

// ProjectPrediction is a velocity-based completion forecast for one project.
type ProjectPrediction struct {
	Project           string
	CurrentCompletion float64
	EstimatedDays     float64
	EstimatedDate     time.Time
	Confidence        float64 // 0-100
	Velocity          float64 // completion percentage points per day
	KPICount          int
}

// ComputePredictions forecasts completion per project using a linear velocity
// model adjusted by average progress. Projects with no measurable completion
// or velocity are skipped. Results are ordered by project name.
func ComputePredictions(records []domain.Record, now time.Time) []ProjectPrediction {
	if len(records) == 0 {
		return nil
	}

	byProject := make(map[string][]domain.Record)
	for _, r := range records {
		byProject[r.Project] = append(byProject[r.Project], r)
	}

	names := make([]string, 0, len(byProject))
	for name := range byProject {
		names = append(names, name)
	}
	sort.Strings(names)

	var predictions []ProjectPrediction
	for _, name := range names {
		group := byProject[name]
		if p, ok := predictProject(name, group, now); ok {
			predictions = append(predictions, p)
		}
	}
	return predictions
}

func predictProject(name string, group []domain.Record, now time.Time) (ProjectPrediction, bool) {
	completion := groupCompletion(group)
	velocity := completion / assumedWorkWindowDays
	if completion <= 0 || velocity <= 0 {
		return ProjectPrediction{}, false
	}

	var progressSum float64
	for _, r := range group {
		progressSum += float64(r.Progress)
	}
	avgProgress := progressSum / float64(len(group))

	estimatedDays := (100 - completion) / velocity

	// Higher average progress shortens the estimate; 3 is neutral.
	progressFactor := avgProgress / 3.0
	if progressFactor > 0 {
		estimatedDays /= progressFactor
	}
	if estimatedDays < 0 {
		estimatedDays = 0
	}

	return ProjectPrediction{
		Project:           name,
		CurrentCompletion: completion,
		EstimatedDays:     estimatedDays,
		EstimatedDate:     now.Add(time.Duration(estimatedDays * 24 * float64(time.Hour))),
		Confidence:        predictionConfidence(group),
		Velocity:          velocity,
		KPICount:          len(group),
	}, true
}

// groupCompletion is the mean per-row completion percentage; when every row
// reports zero it falls back to the aggregate actual/target ratio, which
// rescues tables that were never enriched.
func groupCompletion(group []domain.Record) float64 {
	var pctSum, actualSum, targetSum float64
	anyPct := false
	for _, r := range group {
		pctSum += r.CompletionPct
		if r.CompletionPct > 0 {
			anyPct = true
		}
		actualSum += r.ActualValue
		targetSum += r.TargetValue
	}
	if anyPct {
		return pctSum / float64(len(group))
	}
	if targetSum > 0 {
		pct := actualSum / targetSum * 100
		if pct > 100 {
			pct = 100
		}
		return pct
	}
	return 0
}

// predictionConfidence estimates forecast quality from data volume, update
// freshness, and progress consistency. Base 50, capped at 100.
func predictionConfidence(group []domain.Record) float64 {
	confidence := 50.0

	switch {
	case len(group) >= 10:
		confidence += 20
	case len(group) >= 5:
		confidence += 10
	}

	var daysSum float64
	for _, r := range group {
		daysSum += float64(r.DaysSinceUpdate)
	}
	avgDays := daysSum / float64(len(group))
	switch {
	case avgDays <= 7:
		confidence += 20
	case avgDays <= 14:
		confidence += 10
	}

	if std, ok := progressStdDev(group); ok && std < 1 {
		confidence += 10
	}

	if confidence > 100 {
		confidence = 100
	}
	return confidence
}

// progressStdDev is the sample standard deviation of progress values. Groups
// of fewer than two records have no spread to measure.
func progressStdDev(group []domain.Record) (float64, bool) {
	if len(group) < 2 {
		return 0, false
	}
	var sum float64
	for _, r := range group {
		sum += float64(r.Progress)
	}
	mean := sum / float64(len(group))

	var sq float64
	for _, r := range group {
		d := float64(r.Progress) - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(group)-1)), true
}

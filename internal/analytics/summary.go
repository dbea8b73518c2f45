package analytics

import (
	"math"
	"sort"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// MetricSummary is the descriptive statistics row for one numeric field.
type MetricSummary struct {
	Metric string
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	Q1     float64
	Q3     float64
	IQR    float64
}

// DistributionEntry is one categorical bucket with its share of the table.
type DistributionEntry struct {
	Label      string
	Count      int
	Percentage float64
}

// Summary is the statistical overview of an enriched table.
type Summary struct {
	Metrics       []MetricSummary
	StatusDist    []DistributionEntry
	RiskLevelDist []DistributionEntry
}

// summaryFields fixes the metric order of the summary output.
var summaryFields = []struct {
	label string
	value func(domain.Record) float64
}{
	{"Health Score", func(r domain.Record) float64 { return r.HealthScore }},
	{"Progress", func(r domain.Record) float64 { return float64(r.Progress) }},
	{"Completion Percentage", func(r domain.Record) float64 { return r.CompletionPct }},
	{"Risk Score", func(r domain.Record) float64 { return r.RiskScore }},
	{"Target Value", func(r domain.Record) float64 { return r.TargetValue }},
	{"Actual Value", func(r domain.Record) float64 { return r.ActualValue }},
	{"Days Since Update", func(r domain.Record) float64 { return float64(r.DaysSinceUpdate) }},
}

// ComputeSummary produces descriptive statistics for the scored numeric
// fields plus status and risk-level distributions.
func ComputeSummary(records []domain.Record) Summary {
	var s Summary
	if len(records) == 0 {
		return s
	}

	for _, f := range summaryFields {
		values := make([]float64, len(records))
		for i, r := range records {
			values[i] = f.value(r)
		}
		s.Metrics = append(s.Metrics, summarize(f.label, values))
	}

	s.StatusDist = distribution(records, func(r domain.Record) string { return string(r.Status) })
	s.RiskLevelDist = distribution(records, func(r domain.Record) string { return string(r.RiskLevel) })

	return s
}

func summarize(label string, values []float64) MetricSummary {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var std float64
	if len(values) > 1 {
		var sq float64
		for _, v := range values {
			d := v - mean
			sq += d * d
		}
		std = math.Sqrt(sq / float64(len(values)-1))
	}

	q1 := quantile(sorted, 0.25)
	q3 := quantile(sorted, 0.75)

	return MetricSummary{
		Metric: label,
		Mean:   mean,
		Median: quantile(sorted, 0.5),
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     q1,
		Q3:     q3,
		IQR:    q3 - q1,
	}
}

// quantile interpolates linearly between the two nearest ranks.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

func distribution(records []domain.Record, keyOf func(domain.Record) string) []DistributionEntry {
	counts := make(map[string]int)
	for _, r := range records {
		counts[keyOf(r)]++
	}

	entries := make([]DistributionEntry, 0, len(counts))
	for label, count := range counts {
		entries = append(entries, DistributionEntry{
			Label:      label,
			Count:      count,
			Percentage: float64(count) / float64(len(records)) * 100,
		})
	}
	sort.Slice(entries, func(a, b int) bool {
		if entries[a].Count != entries[b].Count {
			return entries[a].Count > entries[b].Count
		}
		return entries[a].Label < entries[b].Label
	})
	return entries
}

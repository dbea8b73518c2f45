package scoring

import (
	"time"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// Scorer computes the derived fields for validated records. All methods are
// pure functions of the record's source fields, the clock, and the weights:
// scoring an already-enriched record yields identical results.
type Scorer struct {
	Health HealthWeights
	Risk   RiskWeights
}

// NewScorer returns a Scorer with the default weights.
func NewScorer() *Scorer {
	return &Scorer{Health: DefaultHealthWeights(), Risk: DefaultRiskWeights()}
}

// Enrich scores every record row-wise. Output row i corresponds to input
// row i; no cross-record state is consulted.
func (s *Scorer) Enrich(records []domain.Record, now time.Time) []domain.Record {
	out := make([]domain.Record, len(records))
	for i, r := range records {
		out[i] = s.Score(r, now)
	}
	return out
}

// Score recomputes every derived field of a single record.
func (s *Scorer) Score(r domain.Record, now time.Time) domain.Record {
	r.CompletionPct = CompletionPct(r.TargetValue, r.ActualValue)
	r.DaysSinceUpdate = DaysSince(r.LastUpdated, now)
	r.UpdateStatus = UpdateStatusFor(r.DaysSinceUpdate)
	r.HealthScore = s.HealthScore(r)
	r.RiskScore = s.RiskScore(r)
	r.RiskLevel = RiskLevelFor(r.RiskScore)
	r.Trend = TrendFor(r.Progress, r.HealthScore)
	r.PriorityScore = PriorityScore(r.RiskScore, r.HealthScore, r.Progress)
	r.PredictedCompletion = PredictCompletion(r.CompletionPct, r.DaysSinceUpdate, now)
	r.RiskFactors = RiskFactors(r)
	r.RiskTrend = RiskTrendFor(r.Trend)
	return r
}

// CompletionPct is actual/target capped at 100%. A non-positive target yields
// zero rather than a division error.
func CompletionPct(target, actual float64) float64 {
	if target <= 0 {
		return 0
	}
	return clamp(actual/target*100, 0, 100)
}

// DaysSince returns whole days elapsed since t, never negative.
func DaysSince(t, now time.Time) int {
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// UpdateStatusFor buckets staleness into a coarse freshness label.
func UpdateStatusFor(days int) domain.UpdateStatus {
	switch {
	case days <= 7:
		return domain.UpdateCurrent
	case days <= 14:
		return domain.UpdateRecent
	case days <= 30:
		return domain.UpdateStale
	default:
		return domain.UpdateCritical
	}
}

// HealthScore is the weighted sum of completion, progress, status, and
// recency components, clamped to [0,100]. Higher is better. The recency
// component reads the already-computed DaysSinceUpdate field.
func (s *Scorer) HealthScore(r domain.Record) float64 {
	var score float64

	if r.TargetValue > 0 {
		ratio := r.ActualValue / r.TargetValue
		if ratio > 1 {
			ratio = 1
		}
		score += ratio * s.Health.Completion
	}

	score += float64(r.Progress-1) / 4.0 * s.Health.Progress

	switch r.Status {
	case domain.StatusGreen:
		score += s.Health.Status
	case domain.StatusYellow:
		score += s.Health.Status / 2
	}

	switch days := r.DaysSinceUpdate; {
	case days <= 7:
		score += s.Health.Recency
	case days <= 14:
		score += s.Health.Recency * recencyWithin14Frac
	case days <= 30:
		score += s.Health.Recency * recencyWithin30Frac
	}

	return clamp(score, 0, 100)
}

// RiskScore is additive across four independent factors, clamped to [0,100].
// Higher is worse. It is not the complement of the health score: the two use
// different weight structures and are computed independently. The health
// factor reads the already-computed HealthScore field.
func (s *Scorer) RiskScore(r domain.Record) float64 {
	var risk float64

	switch r.Status {
	case domain.StatusRed:
		risk += s.Risk.Status
	case domain.StatusYellow:
		risk += s.Risk.Status * statusYellowFrac
	}

	switch {
	case r.Progress <= 1:
		risk += s.Risk.Progress
	case r.Progress == 2:
		risk += s.Risk.Progress * progressTwoFrac
	case r.Progress == 3:
		risk += s.Risk.Progress * progressThreeFrac
	}

	switch {
	case r.HealthScore < 30:
		risk += s.Risk.Health
	case r.HealthScore < 50:
		risk += s.Risk.Health * healthUnder50Frac
	case r.HealthScore < 70:
		risk += s.Risk.Health * healthUnder70Frac
	}

	switch {
	case r.DaysSinceUpdate > 30:
		risk += s.Risk.Recency
	case r.DaysSinceUpdate > 14:
		risk += s.Risk.Recency * recencyOver14Frac
	case r.DaysSinceUpdate > 7:
		risk += s.Risk.Recency * recencyOver7Frac
	}

	return clamp(risk, 0, 100)
}

// RiskLevelFor converts a risk score to its categorical level.
func RiskLevelFor(risk float64) domain.RiskLevel {
	switch {
	case risk >= 70:
		return domain.RiskHigh
	case risk >= 40:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// TrendFor classifies momentum from progress and health. Improving requires
// both conditions; declining requires only one. The asymmetry biases the
// classifier toward declining.
func TrendFor(progress int, health float64) domain.Trend {
	if progress >= 4 && health >= 70 {
		return domain.TrendImproving
	}
	if progress <= 2 || health < 50 {
		return domain.TrendDeclining
	}
	return domain.TrendStable
}

// PriorityScore ranks records for resource allocation: high risk, low health,
// and low progress all push priority up. Capped at 100.
func PriorityScore(risk, health float64, progress int) float64 {
	p := 0.4*risk + 0.3*(100-health) + 6*float64(6-progress)
	if p > 100 {
		return 100
	}
	return p
}

// PredictCompletion extrapolates a completion date from a single observation:
// the rate implied by current completion over the days since the last update.
// Already-complete records predict now; records with no signal (zero
// completion or zero elapsed days) predict nothing.
func PredictCompletion(completionPct float64, daysElapsed int, now time.Time) *time.Time {
	if completionPct >= 100 {
		return &now
	}
	if completionPct <= 0 || daysElapsed <= 0 {
		return nil
	}

	dailyRate := completionPct / float64(daysElapsed)
	if dailyRate <= 0 {
		return nil
	}

	daysToComplete := (100 - completionPct) / dailyRate
	predicted := now.Add(time.Duration(daysToComplete * 24 * float64(time.Hour)))
	return &predicted
}

// RiskFactors lists the specific conditions contributing to a record's risk.
func RiskFactors(r domain.Record) []domain.RiskFactor {
	var factors []domain.RiskFactor
	if r.Status == domain.StatusRed {
		factors = append(factors, domain.FactorStatusRed)
	}
	if r.Progress <= 2 {
		factors = append(factors, domain.FactorLowProgress)
	}
	if r.HealthScore < 50 {
		factors = append(factors, domain.FactorLowHealth)
	}
	if r.DaysSinceUpdate > 14 {
		factors = append(factors, domain.FactorStaleUpdate)
	}
	if r.CompletionPct < 30 {
		factors = append(factors, domain.FactorLowCompletion)
	}
	return factors
}

// RiskTrendFor maps the record trend onto a risk direction.
func RiskTrendFor(trend domain.Trend) domain.RiskTrend {
	switch trend {
	case domain.TrendImproving:
		return domain.RiskTrendDecreasing
	case domain.TrendDeclining:
		return domain.RiskTrendIncreasing
	default:
		return domain.RiskTrendStable
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

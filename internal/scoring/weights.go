package scoring

// HealthWeights are the maximum point contributions of the four health score
// components. Defaults sum to 100.
type HealthWeights struct {
	Completion float64
	Progress   float64
	Status     float64
	Recency    float64
}

// DefaultHealthWeights returns the documented component weights:
// completion 40, progress 30, status 20, recency 10.
func DefaultHealthWeights() HealthWeights {
	return HealthWeights{Completion: 40, Progress: 30, Status: 20, Recency: 10}
}

// RiskWeights are the maximum point contributions of the four risk factors.
// Tier fractions within each factor are fixed; the weights scale them.
type RiskWeights struct {
	Status   float64
	Progress float64
	Health   float64
	Recency  float64
}

// DefaultRiskWeights returns the documented factor weights:
// status 35, progress 25, health 25, recency 15.
func DefaultRiskWeights() RiskWeights {
	return RiskWeights{Status: 35, Progress: 25, Health: 25, Recency: 15}
}

// Fixed tier fractions of each risk factor's maximum contribution. At the
// default weights these yield the canonical point values (35/15, 25/15/8,
// 25/15/8, 15/10/5).
const (
	statusYellowFrac = 15.0 / 35.0

	progressTwoFrac   = 15.0 / 25.0
	progressThreeFrac = 8.0 / 25.0

	healthUnder50Frac = 15.0 / 25.0
	healthUnder70Frac = 8.0 / 25.0

	recencyOver14Frac = 10.0 / 15.0
	recencyOver7Frac  = 5.0 / 15.0
)

// Health recency tier fractions: at the default weight of 10 these yield
// 10/7/3 points for updates within 7/14/30 days.
const (
	recencyWithin14Frac = 0.7
	recencyWithin30Frac = 0.3
)

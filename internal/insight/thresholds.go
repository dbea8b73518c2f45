package insight

// Thresholds are the tunable limits the insight and recommendation rules
// evaluate against.
type Thresholds struct {
	CriticalHealth    float64
	WarningHealth     float64
	GoodHealth        float64
	StaleDays         int
	CriticalStaleDays int
	AtRiskRatio       float64 // fraction of Red-status records
	LowProgress       int
	HighProgress      int
}

// DefaultThresholds returns the documented defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		CriticalHealth:    50,
		WarningHealth:     70,
		GoodHealth:        80,
		StaleDays:         14,
		CriticalStaleDays: 30,
		AtRiskRatio:       0.3,
		LowProgress:       2,
		HighProgress:      4,
	}
}

package domain

// Status is the coarse traffic-light state of a KPI.
type Status string

const (
	StatusGreen  Status = "G"
	StatusYellow Status = "Y"
	StatusRed    Status = "R"
)

// ValidStatuses is the canonical set of accepted status codes.
var ValidStatuses = map[Status]bool{
	StatusGreen: true, StatusYellow: true, StatusRed: true,
}

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// UpdateStatus classifies how fresh a record's last update is.
type UpdateStatus string

const (
	UpdateCurrent  UpdateStatus = "Current"
	UpdateRecent   UpdateStatus = "Recent"
	UpdateStale    UpdateStatus = "Stale"
	UpdateCritical UpdateStatus = "Critical"
)

// RiskTrend is the direction a record's risk is moving, derived from its trend.
type RiskTrend string

const (
	RiskTrendIncreasing RiskTrend = "increasing"
	RiskTrendStable     RiskTrend = "stable"
	RiskTrendDecreasing RiskTrend = "decreasing"
)

// RiskFactor names a specific condition contributing to a record's risk.
type RiskFactor string

const (
	FactorStatusRed     RiskFactor = "status_red"
	FactorLowProgress   RiskFactor = "low_progress"
	FactorLowHealth     RiskFactor = "low_health"
	FactorStaleUpdate   RiskFactor = "stale_update"
	FactorLowCompletion RiskFactor = "low_completion"
)

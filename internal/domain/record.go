package domain

import "time"

// Defaults applied by the validator when a source field cannot be recovered.
const (
	DefaultName    = "Unnamed KPI"
	DefaultProject = "Default Project"
	DefaultOwner   = "TBD"
	DefaultText    = "TBD"

	DefaultProgress = 3
	DefaultTarget   = 100.0
)

// Record is one validated row of the KPI table.
type Record struct {
	Name    string
	Project string
	Owner   string

	Goal        string
	Description string
	Measurement string

	Status      Status
	Progress    int // 1-5
	TargetValue float64
	ActualValue float64
	LastUpdated time.Time

	// Derived fields, owned by the scoring engine. Never user-edited;
	// recomputed wholesale from the source fields on every enrichment pass.
	HealthScore         float64
	RiskScore           float64
	RiskLevel           RiskLevel
	CompletionPct       float64
	DaysSinceUpdate     int
	UpdateStatus        UpdateStatus
	Trend               Trend
	PriorityScore       float64
	PredictedCompletion *time.Time
	RiskFactors         []RiskFactor
	RiskTrend           RiskTrend
}

// GroupKey identifies the logical KPI a record describes. Rows sharing a key
// are duplicates of the same KPI and are collapsed by the validator.
type GroupKey struct {
	Name    string
	Project string
	Owner   string
}

func (r *Record) Key() GroupKey {
	return GroupKey{Name: r.Name, Project: r.Project, Owner: r.Owner}
}

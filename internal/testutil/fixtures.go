package testutil

import (
	"time"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// KPIRecord builds a healthy baseline record for tests; override fields via
// the mutators.
func KPIRecord(mutators ...func(*domain.Record)) domain.Record {
	r := domain.Record{
		Name:        "Revenue Growth",
		Project:     "Growth",
		Owner:       "Alice",
		Goal:        "Grow ARR",
		Description: "Quarterly revenue growth target",
		Measurement: "percent",
		Status:      domain.StatusGreen,
		Progress:    4,
		TargetValue: 100,
		ActualValue: 80,
		LastUpdated: time.Now().UTC().Add(-48 * time.Hour),
	}
	for _, m := range mutators {
		m(&r)
	}
	return r
}

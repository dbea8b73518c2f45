package validate

import (
	"fmt"
	"time"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

// Report summarizes what validation did to an input table. It is advisory
// only: validation never rejects rows, it repairs them.
type Report struct {
	InputRows    int
	TotalRecords int
	Dropped      int // duplicates removed
	Warnings     []string
}

func buildReport(records []domain.Record, inputRows int, now time.Time) *Report {
	rep := &Report{
		InputRows:    inputRows,
		TotalRecords: len(records),
		Dropped:      inputRows - len(records),
	}

	if len(records) == 0 {
		return rep
	}

	redCount := 0
	staleCount := 0
	for _, r := range records {
		if r.Status == domain.StatusRed {
			redCount++
		}
		if int(now.Sub(r.LastUpdated).Hours()/24) > 30 {
			staleCount++
		}
	}

	if redCount > len(records)/2 {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("%d KPIs (%.0f%%) are at risk", redCount,
				float64(redCount)/float64(len(records))*100))
	}
	if staleCount > 0 {
		rep.Warnings = append(rep.Warnings,
			fmt.Sprintf("%d KPIs haven't been updated in 30+ days", staleCount))
	}

	return rep
}

package validate

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pulseboard/internal/domain"
)

const maxTextLen = 500

// statusSynonyms maps common spreadsheet spellings onto canonical codes.
var statusSynonyms = map[string]domain.Status{
	"GREEN":           domain.StatusGreen,
	"YELLOW":          domain.StatusYellow,
	"RED":             domain.StatusRed,
	"ON TRACK":        domain.StatusGreen,
	"NEEDS ATTENTION": domain.StatusYellow,
	"AT RISK":         domain.StatusRed,
	"GOOD":            domain.StatusGreen,
	"WARNING":         domain.StatusYellow,
	"CRITICAL":        domain.StatusRed,
}

// dateLayouts are tried in order when parsing string timestamps.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
}

// CleanText normalizes a free-text cell: trims, collapses whitespace, and
// truncates overlong values. Missing or blank cells fall back to "TBD".
func CleanText(v any) string {
	if v == nil {
		return domain.DefaultText
	}
	text := strings.TrimSpace(fmt.Sprint(v))
	text = strings.Join(strings.Fields(text), " ")
	if runes := []rune(text); len(runes) > maxTextLen {
		text = string(runes[:maxTextLen-3]) + "..."
	}
	if text == "" {
		return domain.DefaultText
	}
	return text
}

// CleanStatus normalizes a present status value. A nil or blank cell is a
// missing value and defaults to Red (same as an absent column); a
// present-but-unrecognized value defaults to Yellow. The asymmetry is
// deliberate and matches the column-fill default.
func CleanStatus(v any) domain.Status {
	if v == nil {
		return domain.StatusRed
	}
	s := strings.ToUpper(strings.TrimSpace(fmt.Sprint(v)))
	if s == "" {
		return domain.StatusRed
	}
	if domain.ValidStatuses[domain.Status(s)] {
		return domain.Status(s)
	}
	if mapped, ok := statusSynonyms[s]; ok {
		return mapped
	}
	return domain.StatusYellow
}

// CleanProgress coerces a progress cell to the 1-5 scale. Out-of-range values
// are clamped; non-numeric or missing values default to 3.
func CleanProgress(v any) int {
	f, ok := toFloat(v)
	if !ok {
		return domain.DefaultProgress
	}
	p := int(f)
	if p < 1 {
		return 1
	}
	if p > 5 {
		return 5
	}
	return p
}

// CleanNumeric coerces a numeric cell via best-effort parse. Strings with a
// trailing "%" have the percent sign stripped first. Negative results are
// floored to zero; unparseable values fall back to def.
func CleanNumeric(v any, def float64) float64 {
	f, ok := toFloat(v)
	if !ok {
		return def
	}
	if f < 0 {
		return 0
	}
	return f
}

// CleanDate parses a timestamp cell. Missing, unparseable, and future values
// all collapse to now.
func CleanDate(v any, now time.Time) time.Time {
	if v == nil {
		return now
	}

	var parsed time.Time
	switch d := v.(type) {
	case time.Time:
		parsed = d
	case *time.Time:
		if d == nil {
			return now
		}
		parsed = *d
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if s == "" {
			return now
		}
		ok := false
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				parsed = t
				ok = true
				break
			}
		}
		if !ok {
			return now
		}
	}

	if parsed.After(now) {
		return now
	}
	return parsed
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case bool:
		return 0, false
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
}

package analytics

import (
	"fmt"
	"time"
)

// PeriodKind selects the reporting period length.
type PeriodKind string

const (
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
)

// ParsePeriodKind validates a user-supplied period name.
func ParsePeriodKind(s string) (PeriodKind, error) {
	switch PeriodKind(s) {
	case PeriodWeek, PeriodMonth:
		return PeriodKind(s), nil
	default:
		return "", fmt.Errorf("invalid period %q: expected week or month", s)
	}
}

// DateRange is an inclusive pair of period bounds.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolvePeriod computes the inclusive bounds of the period at the given
// offset: 0 is the period containing now, 1 the one before it, and so on.
// Weeks run Sunday through Saturday. The reference instant is an explicit
// parameter so period boundaries stay deterministic under test.
func ResolvePeriod(kind PeriodKind, offset int, now time.Time) (DateRange, error) {
	if offset < 0 {
		return DateRange{}, fmt.Errorf("invalid period offset %d: must be >= 0", offset)
	}

	loc := now.Location()

	switch kind {
	case PeriodWeek:
		dayOfWeek := int(now.Weekday())
		start := time.Date(now.Year(), now.Month(), now.Day()-dayOfWeek-offset*7, 0, 0, 0, 0, loc)
		end := time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, 999000000, loc)
		return DateRange{Start: start, End: end}, nil

	case PeriodMonth:
		// time.Date normalizes out-of-range months, so the year rolls over
		// correctly when the offset reaches back past January.
		start := time.Date(now.Year(), now.Month()-time.Month(offset), 1, 0, 0, 0, 0, loc)
		end := time.Date(now.Year(), now.Month()-time.Month(offset)+1, 0, 23, 59, 59, 999000000, loc)
		return DateRange{Start: start, End: end}, nil

	default:
		return DateRange{}, fmt.Errorf("invalid period kind %q", kind)
	}
}

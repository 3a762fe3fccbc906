package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/julianstephens/wakelog/internal/constants"
)

// FormatError reports a wake time string that is not a valid HH:MM value.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid wake time %q: expected HH:MM (24-hour)", e.Value)
}

// WakeTimeToMinutes parses an HH:MM wake time into minutes from midnight.
func WakeTimeToMinutes(wakeTime string) (int, error) {
	parts := strings.Split(wakeTime, ":")
	if len(parts) != 2 {
		return 0, &FormatError{Value: wakeTime}
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, &FormatError{Value: wakeTime}
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, &FormatError{Value: wakeTime}
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, &FormatError{Value: wakeTime}
	}

	return hours*60 + minutes, nil
}

// MinutesToWakeTime formats minutes from midnight back into HH:MM. The input
// may be fractional (an averaged value); the minute component is rounded and
// both components are zero-padded to two digits.
func MinutesToWakeTime(totalMinutes float64) string {
	hours := int(math.Floor(totalMinutes / 60))
	minutes := int(math.Round(math.Mod(totalMinutes, 60)))
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// WakeCategory buckets a wake time (minutes from midnight) for heatmap
// coloring: before 5:00 is early, before 7:00 is good, later is late.
func WakeCategory(minutes int) string {
	switch {
	case minutes < constants.EarlyWakeCutoffMin:
		return "early"
	case minutes < constants.GoodWakeCutoffMin:
		return "good"
	default:
		return "late"
	}
}

// WakeCategoryFor buckets an HH:MM wake time string directly.
func WakeCategoryFor(wakeTime string) (string, error) {
	minutes, err := WakeTimeToMinutes(wakeTime)
	if err != nil {
		return "", err
	}
	return WakeCategory(minutes), nil
}

package analytics

import "github.com/julianstephens/wakelog/internal/models"

// Compare derives the period-over-period deltas between two aggregates.
//
// The wake time comparison is present only when both periods produced an
// average. The study hours comparison is present only when the previous
// period logged more than zero hours; going from an empty baseline to any
// amount of study is deliberately reported as no comparison rather than an
// improvement.
func Compare(current, previous models.PeriodStats) models.Comparison {
	var cmp models.Comparison

	if current.AvgWakeTime != nil && previous.AvgWakeTime != nil {
		currentMin, errCur := WakeTimeToMinutes(*current.AvgWakeTime)
		previousMin, errPrev := WakeTimeToMinutes(*previous.AvgWakeTime)
		if errCur == nil && errPrev == nil {
			cmp.WakeTime = &models.WakeTimeComparison{
				// Positive means the current period wakes earlier.
				DiffMinutes: previousMin - currentMin,
				Improved:    currentMin < previousMin,
			}
		}
	}

	if previous.TotalStudyHours > 0 {
		diff := roundTenth(current.TotalStudyHours - previous.TotalStudyHours)
		cmp.StudyHours = &models.StudyHoursComparison{
			DiffHours: diff,
			Improved:  diff > 0,
		}
	}

	return cmp
}

package analytics

import (
	"math"

	"github.com/julianstephens/wakelog/internal/models"
)

// Aggregate folds a period's days into summary stats. The caller supplies
// the days already restricted to the period's bounds. An empty slice yields
// zero-value stats with no average wake time rather than an error.
func Aggregate(days []models.Day) (models.PeriodStats, error) {
	if len(days) == 0 {
		return models.PeriodStats{}, nil
	}

	totalWakeMinutes := 0
	totalStudyMinutes := 0
	for _, day := range days {
		wakeMinutes, err := WakeTimeToMinutes(day.WakeTime)
		if err != nil {
			return models.PeriodStats{}, err
		}
		totalWakeMinutes += wakeMinutes
		totalStudyMinutes += day.TotalStudyMinutes
	}

	// Average in real arithmetic; rounding happens only at the format step.
	avgWakeTime := MinutesToWakeTime(float64(totalWakeMinutes) / float64(len(days)))
	totalStudyHours := roundTenth(float64(totalStudyMinutes) / 60)

	return models.PeriodStats{
		AvgWakeTime:         &avgWakeTime,
		TotalStudyHours:     totalStudyHours,
		TotalDays:           len(days),
		AvgStudyHoursPerDay: roundTenth(float64(totalStudyMinutes) / 60 / float64(len(days))),
	}, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

package analytics

import (
	"time"

	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/models"
)

// DaySource is the slice of the storage provider the reporter needs. Bounds
// are inclusive YYYY-MM-DD date strings.
type DaySource interface {
	GetDaysInRange(startDate, endDate string) ([]models.Day, error)
}

// Reporter assembles period reports and heatmap feeds from stored days.
type Reporter struct {
	source DaySource
}

// NewReporter creates a Reporter over the given day source.
func NewReporter(source DaySource) *Reporter {
	return &Reporter{source: source}
}

// BuildReport produces the report for the period containing now alongside
// the immediately preceding period and the comparison between the two.
func (r *Reporter) BuildReport(kind PeriodKind, now time.Time) (models.Report, error) {
	return r.BuildReportAt(kind, 0, now)
}

// BuildReportAt is BuildReport shifted back by offset periods; the previous
// side and the comparison shift with it.
func (r *Reporter) BuildReportAt(kind PeriodKind, offset int, now time.Time) (models.Report, error) {
	current, err := r.periodReport(kind, offset, now)
	if err != nil {
		return models.Report{}, err
	}
	previous, err := r.periodReport(kind, offset+1, now)
	if err != nil {
		return models.Report{}, err
	}

	return models.Report{
		Period:     string(kind),
		Current:    current,
		Previous:   previous,
		Comparison: Compare(current.PeriodStats, previous.PeriodStats),
	}, nil
}

// PeriodReportAt produces the report for a single period at the given offset
// back from the period containing now.
func (r *Reporter) PeriodReportAt(kind PeriodKind, offset int, now time.Time) (models.PeriodReport, error) {
	return r.periodReport(kind, offset, now)
}

func (r *Reporter) periodReport(kind PeriodKind, offset int, now time.Time) (models.PeriodReport, error) {
	bounds, err := ResolvePeriod(kind, offset, now)
	if err != nil {
		return models.PeriodReport{}, err
	}

	startDate := bounds.Start.Format(constants.DateFormat)
	endDate := bounds.End.Format(constants.DateFormat)

	days, err := r.source.GetDaysInRange(startDate, endDate)
	if err != nil {
		return models.PeriodReport{}, err
	}

	stats, err := Aggregate(days)
	if err != nil {
		return models.PeriodReport{}, err
	}

	return models.PeriodReport{
		PeriodStats: stats,
		StartDate:   startDate,
		EndDate:     endDate,
	}, nil
}

// HeatmapFeed returns the flat per-day summaries for the trailing 365-day
// window ending at today, ascending by date. Days absent from storage are
// simply absent from the feed.
func (r *Reporter) HeatmapFeed(today time.Time) ([]models.HeatmapEntry, error) {
	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	start := end.AddDate(0, 0, -(constants.HeatmapWindowDays - 1))

	days, err := r.source.GetDaysInRange(start.Format(constants.DateFormat), end.Format(constants.DateFormat))
	if err != nil {
		return nil, err
	}

	entries := make([]models.HeatmapEntry, 0, len(days))
	for _, day := range days {
		category, err := WakeCategoryFor(day.WakeTime)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.HeatmapEntry{
			Date:         day.Date,
			WakeTime:     day.WakeTime,
			WakeCategory: category,
			StudyMinutes: day.TotalStudyMinutes,
		})
	}

	return entries, nil
}

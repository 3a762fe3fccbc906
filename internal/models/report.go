package models

// PeriodStats holds the aggregate figures for one reporting period.
// AvgWakeTime is nil when the period contains no days.
type PeriodStats struct {
	AvgWakeTime         *string `json:"avg_wake_time,omitempty"` // HH:MM format
	TotalStudyHours     float64 `json:"total_study_hours"`
	TotalDays           int     `json:"total_days"`
	AvgStudyHoursPerDay float64 `json:"avg_study_hours_per_day"`
}

// WakeTimeComparison is the period-over-period wake time delta.
// DiffMinutes is positive when the current period wakes earlier.
type WakeTimeComparison struct {
	DiffMinutes int  `json:"diff_minutes"`
	Improved    bool `json:"improved"`
}

// StudyHoursComparison is the period-over-period study volume delta.
type StudyHoursComparison struct {
	DiffHours float64 `json:"diff_hours"`
	Improved  bool    `json:"improved"`
}

// Comparison pairs the two deltas. Either side is nil when the underlying
// periods lack the data to compare.
type Comparison struct {
	WakeTime   *WakeTimeComparison   `json:"wake_time,omitempty"`
	StudyHours *StudyHoursComparison `json:"study_hours,omitempty"`
}

// PeriodReport is one side of a report: stats plus the resolved bounds.
type PeriodReport struct {
	PeriodStats
	StartDate string `json:"start_date"` // YYYY-MM-DD format
	EndDate   string `json:"end_date"`   // YYYY-MM-DD format
}

// Report is the full weekly or monthly report response.
type Report struct {
	Period     string       `json:"period"` // "week" or "month"
	Current    PeriodReport `json:"current"`
	Previous   PeriodReport `json:"previous"`
	Comparison Comparison   `json:"comparison"`
}

// HeatmapEntry is the flat per-day summary feed the heatmap is built from.
type HeatmapEntry struct {
	Date         string `json:"date"` // YYYY-MM-DD format
	WakeTime     string `json:"wake_time"`
	WakeCategory string `json:"wake_category"`
	StudyMinutes int    `json:"study_minutes"`
}

package models

import "time"

// StudySession is a single block of study recorded against a day.
type StudySession struct {
	ID          string `json:"id"`
	Topic       string `json:"topic"`
	DurationMin int    `json:"duration_min"`
	Notes       string `json:"notes,omitempty"`
}

// Day is one calendar day's record: wake time plus study sessions.
// Days are keyed uniquely by their date and saved with upsert semantics.
type Day struct {
	Date              string         `json:"date"`      // YYYY-MM-DD format
	WakeTime          string         `json:"wake_time"` // HH:MM format, 24-hour
	Sessions          []StudySession `json:"sessions"`
	TotalStudyMinutes int            `json:"total_study_minutes"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// Normalize recomputes the derived TotalStudyMinutes from the session list.
// Callers must invoke it at every construction or mutation boundary; the
// derived field is never settable independently of the sessions.
func (d *Day) Normalize() {
	total := 0
	for _, s := range d.Sessions {
		total += s.DurationMin
	}
	d.TotalStudyMinutes = total
}

// AddSession appends a session and keeps the derived total in sync.
func (d *Day) AddSession(s StudySession) {
	d.Sessions = append(d.Sessions, s)
	d.Normalize()
}

package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/wakelog/internal/analytics"
	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/models"
)

// ValidateDate checks that a date string is a valid YYYY-MM-DD value.
func ValidateDate(dateStr string) error {
	if _, err := time.Parse(constants.DateFormat, dateStr); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return nil
}

// ValidateWakeTime checks that a wake time string is a valid HH:MM value.
// Malformed values surface the analytics format error unchanged so callers
// can match on it.
func ValidateWakeTime(wakeTime string) error {
	_, err := analytics.WakeTimeToMinutes(wakeTime)
	return err
}

// ValidateSession checks a study session's fields.
func ValidateSession(s models.StudySession) error {
	if strings.TrimSpace(s.Topic) == "" {
		return fmt.Errorf("session topic must not be empty")
	}
	if s.DurationMin < 1 {
		return fmt.Errorf("session duration must be at least 1 minute, got %d", s.DurationMin)
	}
	return nil
}

// ValidateDay checks a full day record before it is saved.
func ValidateDay(day models.Day) error {
	if err := ValidateDate(day.Date); err != nil {
		return err
	}
	if err := ValidateWakeTime(day.WakeTime); err != nil {
		return err
	}
	for i, s := range day.Sessions {
		if err := ValidateSession(s); err != nil {
			return fmt.Errorf("session %d: %w", i+1, err)
		}
	}
	return nil
}

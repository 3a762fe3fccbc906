package analytics

import (
	"testing"

	"github.com/julianstephens/wakelog/internal/models"
)

func statsWith(avgWake string, hours float64, days int) models.PeriodStats {
	s := models.PeriodStats{TotalStudyHours: hours, TotalDays: days}
	if avgWake != "" {
		s.AvgWakeTime = &avgWake
	}
	return s
}

func TestCompareWakeTime(t *testing.T) {
	tests := []struct {
		name         string
		current      models.PeriodStats
		previous     models.PeriodStats
		wantDiff     int
		wantImproved bool
		wantNil      bool
	}{
		{
			name:         "earlier wake time improves",
			current:      statsWith("06:00", 0, 5),
			previous:     statsWith("07:00", 0, 5),
			wantDiff:     60,
			wantImproved: true,
		},
		{
			name:         "later wake time declines",
			current:      statsWith("07:30", 0, 5),
			previous:     statsWith("07:00", 0, 5),
			wantDiff:     -30,
			wantImproved: false,
		},
		{
			name:         "identical wake times are not improved",
			current:      statsWith("06:15", 0, 5),
			previous:     statsWith("06:15", 0, 5),
			wantDiff:     0,
			wantImproved: false,
		},
		{
			name:     "missing current average suppresses comparison",
			current:  statsWith("", 0, 0),
			previous: statsWith("07:00", 0, 5),
			wantNil:  true,
		},
		{
			name:     "missing previous average suppresses comparison",
			current:  statsWith("06:00", 0, 5),
			previous: statsWith("", 0, 0),
			wantNil:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmp := Compare(tt.current, tt.previous)
			if tt.wantNil {
				if cmp.WakeTime != nil {
					t.Errorf("WakeTime = %+v, want nil", cmp.WakeTime)
				}
				return
			}
			if cmp.WakeTime == nil {
				t.Fatal("WakeTime = nil, want value")
			}
			if cmp.WakeTime.DiffMinutes != tt.wantDiff {
				t.Errorf("DiffMinutes = %d, want %d", cmp.WakeTime.DiffMinutes, tt.wantDiff)
			}
			if cmp.WakeTime.Improved != tt.wantImproved {
				t.Errorf("Improved = %v, want %v", cmp.WakeTime.Improved, tt.wantImproved)
			}
		})
	}
}

func TestCompareStudyHours(t *testing.T) {
	t.Run("more hours improves", func(t *testing.T) {
		cmp := Compare(statsWith("06:00", 10.5, 5), statsWith("06:00", 8.0, 5))
		if cmp.StudyHours == nil {
			t.Fatal("StudyHours = nil, want value")
		}
		if cmp.StudyHours.DiffHours != 2.5 {
			t.Errorf("DiffHours = %v, want 2.5", cmp.StudyHours.DiffHours)
		}
		if !cmp.StudyHours.Improved {
			t.Error("Improved = false, want true")
		}
	})

	t.Run("fewer hours declines", func(t *testing.T) {
		cmp := Compare(statsWith("06:00", 4.0, 5), statsWith("06:00", 8.0, 5))
		if cmp.StudyHours == nil {
			t.Fatal("StudyHours = nil, want value")
		}
		if cmp.StudyHours.DiffHours != -4.0 {
			t.Errorf("DiffHours = %v, want -4.0", cmp.StudyHours.DiffHours)
		}
		if cmp.StudyHours.Improved {
			t.Error("Improved = true, want false")
		}
	})

	t.Run("zero previous baseline suppresses comparison", func(t *testing.T) {
		cmp := Compare(statsWith("06:00", 12.0, 5), statsWith("06:00", 0, 5))
		if cmp.StudyHours != nil {
			t.Errorf("StudyHours = %+v, want nil for zero baseline", cmp.StudyHours)
		}
	})
}

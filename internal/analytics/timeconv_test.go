package analytics

import (
	"errors"
	"testing"
)

func TestWakeTimeToMinutes(t *testing.T) {
	tests := []struct {
		name     string
		wakeTime string
		want     int
		wantErr  bool
	}{
		{name: "midnight", wakeTime: "00:00", want: 0},
		{name: "early morning", wakeTime: "04:30", want: 270},
		{name: "typical wake time", wakeTime: "06:45", want: 405},
		{name: "end of day", wakeTime: "23:59", want: 1439},
		{name: "single digit components", wakeTime: "6:5", want: 365},
		{name: "missing colon", wakeTime: "0630", wantErr: true},
		{name: "too many parts", wakeTime: "06:30:00", wantErr: true},
		{name: "non-numeric hours", wakeTime: "ab:30", wantErr: true},
		{name: "non-numeric minutes", wakeTime: "06:xx", wantErr: true},
		{name: "hours out of range", wakeTime: "24:00", wantErr: true},
		{name: "minutes out of range", wakeTime: "06:60", wantErr: true},
		{name: "negative hours", wakeTime: "-1:30", wantErr: true},
		{name: "empty string", wakeTime: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WakeTimeToMinutes(tt.wakeTime)
			if (err != nil) != tt.wantErr {
				t.Errorf("WakeTimeToMinutes(%q) error = %v, wantErr %v", tt.wakeTime, err, tt.wantErr)
				return
			}
			if tt.wantErr {
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("WakeTimeToMinutes(%q) error type = %T, want *FormatError", tt.wakeTime, err)
				} else if formatErr.Value != tt.wakeTime {
					t.Errorf("FormatError.Value = %q, want %q", formatErr.Value, tt.wakeTime)
				}
				return
			}
			if got != tt.want {
				t.Errorf("WakeTimeToMinutes(%q) = %d, want %d", tt.wakeTime, got, tt.want)
			}
		})
	}
}

func TestMinutesToWakeTime(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		want    string
	}{
		{name: "midnight", minutes: 0, want: "00:00"},
		{name: "whole hours", minutes: 360, want: "06:00"},
		{name: "zero padded", minutes: 365, want: "06:05"},
		{name: "end of day", minutes: 1439, want: "23:59"},
		{name: "fractional average rounds minutes", minutes: 390.4, want: "06:30"},
		{name: "half minute rounds up", minutes: 389.5, want: "06:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinutesToWakeTime(tt.minutes); got != tt.want {
				t.Errorf("MinutesToWakeTime(%v) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestWakeTimeRoundTrip(t *testing.T) {
	// Every whole-minute value must survive a parse/format cycle
	for m := 0; m < 1440; m++ {
		formatted := MinutesToWakeTime(float64(m))
		parsed, err := WakeTimeToMinutes(formatted)
		if err != nil {
			t.Fatalf("round trip of %d produced unparsable %q: %v", m, formatted, err)
		}
		if parsed != m {
			t.Fatalf("round trip of %d = %d (via %q)", m, parsed, formatted)
		}
	}
}

func TestWakeCategory(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "midnight is early", minutes: 0, want: "early"},
		{name: "just before five", minutes: 299, want: "early"},
		{name: "five exactly is good", minutes: 300, want: "good"},
		{name: "just before seven", minutes: 419, want: "good"},
		{name: "seven exactly is late", minutes: 420, want: "late"},
		{name: "noon is late", minutes: 720, want: "late"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WakeCategory(tt.minutes); got != tt.want {
				t.Errorf("WakeCategory(%d) = %q, want %q", tt.minutes, got, tt.want)
			}
		})
	}
}

func TestWakeCategoryFor(t *testing.T) {
	got, err := WakeCategoryFor("04:59")
	if err != nil {
		t.Fatalf("WakeCategoryFor() unexpected error: %v", err)
	}
	if got != "early" {
		t.Errorf("WakeCategoryFor(04:59) = %q, want early", got)
	}

	if _, err := WakeCategoryFor("not a time"); err == nil {
		t.Error("WakeCategoryFor() expected error for malformed input")
	}
}

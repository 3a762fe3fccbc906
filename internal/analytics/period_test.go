package analytics

import (
	"testing"
	"time"
)

func TestParsePeriodKind(t *testing.T) {
	if _, err := ParsePeriodKind("week"); err != nil {
		t.Errorf("ParsePeriodKind(week) unexpected error: %v", err)
	}
	if _, err := ParsePeriodKind("month"); err != nil {
		t.Errorf("ParsePeriodKind(month) unexpected error: %v", err)
	}
	if _, err := ParsePeriodKind("fortnight"); err == nil {
		t.Error("ParsePeriodKind(fortnight) expected error")
	}
}

func TestResolvePeriodWeek(t *testing.T) {
	// 2024-03-15 is a Friday
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		offset    int
		wantStart string
		wantEnd   string
	}{
		{name: "current week starts previous Sunday", offset: 0, wantStart: "2024-03-10", wantEnd: "2024-03-16"},
		{name: "previous week", offset: 1, wantStart: "2024-03-03", wantEnd: "2024-03-09"},
		{name: "week crossing month boundary", offset: 2, wantStart: "2024-02-25", wantEnd: "2024-03-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePeriod(PeriodWeek, tt.offset, now)
			if err != nil {
				t.Fatalf("ResolvePeriod() unexpected error: %v", err)
			}
			if got.Start.Format("2006-01-02") != tt.wantStart {
				t.Errorf("start = %s, want %s", got.Start.Format("2006-01-02"), tt.wantStart)
			}
			if got.End.Format("2006-01-02") != tt.wantEnd {
				t.Errorf("end = %s, want %s", got.End.Format("2006-01-02"), tt.wantEnd)
			}
			if h, m, s := got.Start.Clock(); h != 0 || m != 0 || s != 0 {
				t.Errorf("start is not midnight: %v", got.Start)
			}
			if h, m, s := got.End.Clock(); h != 23 || m != 59 || s != 59 {
				t.Errorf("end is not end of day: %v", got.End)
			}
		})
	}
}

func TestResolvePeriodWeekOnSunday(t *testing.T) {
	// A Sunday is the first day of its own week
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	got, err := ResolvePeriod(PeriodWeek, 0, now)
	if err != nil {
		t.Fatalf("ResolvePeriod() unexpected error: %v", err)
	}
	if got.Start.Format("2006-01-02") != "2024-03-10" {
		t.Errorf("start = %s, want 2024-03-10", got.Start.Format("2006-01-02"))
	}
}

func TestResolvePeriodMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		offset    int
		wantStart string
		wantEnd   string
	}{
		{name: "current month", offset: 0, wantStart: "2024-03-01", wantEnd: "2024-03-31"},
		{name: "previous month in leap year", offset: 1, wantStart: "2024-02-01", wantEnd: "2024-02-29"},
		{name: "offset crosses year boundary", offset: 4, wantStart: "2023-11-01", wantEnd: "2023-11-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePeriod(PeriodMonth, tt.offset, now)
			if err != nil {
				t.Fatalf("ResolvePeriod() unexpected error: %v", err)
			}
			if got.Start.Format("2006-01-02") != tt.wantStart {
				t.Errorf("start = %s, want %s", got.Start.Format("2006-01-02"), tt.wantStart)
			}
			if got.End.Format("2006-01-02") != tt.wantEnd {
				t.Errorf("end = %s, want %s", got.End.Format("2006-01-02"), tt.wantEnd)
			}
		})
	}
}

func TestResolvePeriodNegativeOffset(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if _, err := ResolvePeriod(PeriodWeek, -1, now); err == nil {
		t.Error("ResolvePeriod() expected error for negative offset")
	}
}

func TestResolvePeriodPreservesLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}
	now := time.Date(2024, 3, 15, 14, 30, 0, 0, loc)
	got, err := ResolvePeriod(PeriodWeek, 0, now)
	if err != nil {
		t.Fatalf("ResolvePeriod() unexpected error: %v", err)
	}
	if got.Start.Location() != loc {
		t.Errorf("start location = %v, want %v", got.Start.Location(), loc)
	}
}

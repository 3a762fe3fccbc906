package heatmap

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/models"
)

func TestBuildGridShape(t *testing.T) {
	todays := []time.Time{
		time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), // leap day
		time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), // a Saturday
	}

	for _, today := range todays {
		t.Run(today.Format("2006-01-02"), func(t *testing.T) {
			months := BuildGrid(today, nil)

			seen := make(map[string]bool)
			for _, month := range months {
				for _, week := range month.Weeks {
					if len(week) != 7 {
						t.Fatalf("month %s has a week of %d cells, want 7", month.Key, len(week))
					}
					for _, cell := range week {
						if cell.IsPlaceholder() {
							continue
						}
						if seen[cell.Date] {
							t.Fatalf("date %s appears twice", cell.Date)
						}
						seen[cell.Date] = true
						if !strings.HasPrefix(cell.Date, month.Key) {
							t.Fatalf("date %s landed in month block %s", cell.Date, month.Key)
						}
					}
				}
			}

			if len(seen) != constants.HeatmapWindowDays {
				t.Fatalf("grid covers %d days, want %d", len(seen), constants.HeatmapWindowDays)
			}

			// The window runs from today-364 through today with no gaps
			base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
			for i := 0; i < constants.HeatmapWindowDays; i++ {
				date := base.AddDate(0, 0, -i).Format(constants.DateFormat)
				if !seen[date] {
					t.Fatalf("grid is missing %s", date)
				}
			}
		})
	}
}

func TestBuildGridMonthOrderAndNames(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	months := BuildGrid(today, nil)

	// 365 days back from mid-March spans 13 month blocks
	if len(months) != 13 {
		t.Fatalf("len(months) = %d, want 13", len(months))
	}
	if months[0].Key != "2023-03" {
		t.Errorf("first month = %s, want 2023-03", months[0].Key)
	}
	if months[len(months)-1].Key != "2024-03" {
		t.Errorf("last month = %s, want 2024-03", months[len(months)-1].Key)
	}
	for i := 1; i < len(months); i++ {
		if months[i].Key <= months[i-1].Key {
			t.Errorf("months out of order: %s after %s", months[i].Key, months[i-1].Key)
		}
	}
	if months[0].Name != "Mar" {
		t.Errorf("first month name = %q, want Mar", months[0].Name)
	}
}

func TestBuildGridWeekdayAlignment(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	months := BuildGrid(today, nil)

	for _, month := range months {
		for _, week := range month.Weeks {
			for i, cell := range week {
				if cell.IsPlaceholder() {
					continue
				}
				if int(cell.DayOfWeek) != i {
					t.Fatalf("date %s (weekday %v) sits in column %d", cell.Date, cell.DayOfWeek, i)
				}
			}
		}
	}
}

func TestBuildGridAttachesEntries(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	entries := map[string]models.HeatmapEntry{
		"2024-03-15": {Date: "2024-03-15", WakeTime: "06:00", WakeCategory: "good", StudyMinutes: 90},
	}
	months := BuildGrid(today, entries)

	var found *Cell
	for _, month := range months {
		for _, week := range month.Weeks {
			for i := range week {
				if week[i].Date == "2024-03-15" {
					found = &week[i]
				}
			}
		}
	}
	if found == nil {
		t.Fatal("today's cell not found")
	}
	if found.Entry == nil {
		t.Fatal("today's cell has no entry")
	}
	if found.Entry.WakeCategory != "good" || found.Entry.StudyMinutes != 90 {
		t.Errorf("entry = %+v", found.Entry)
	}

	// A neighboring real day without an entry stays a nil-entry cell
	for _, month := range months {
		for _, week := range month.Weeks {
			for _, cell := range week {
				if cell.Date == "2024-03-14" && cell.Entry != nil {
					t.Error("2024-03-14 has an entry but none was supplied")
				}
			}
		}
	}
}

func TestEntryIndex(t *testing.T) {
	feed := []models.HeatmapEntry{
		{Date: "2024-03-14", WakeCategory: "early"},
		{Date: "2024-03-15", WakeCategory: "late"},
	}
	index := EntryIndex(feed)
	if len(index) != 2 {
		t.Fatalf("len(index) = %d, want 2", len(index))
	}
	if index["2024-03-15"].WakeCategory != "late" {
		t.Errorf("index[2024-03-15] = %+v", index["2024-03-15"])
	}
}

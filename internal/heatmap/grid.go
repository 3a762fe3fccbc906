// Package heatmap lays the trailing 365-day activity window out as a
// month-partitioned grid of week rows for calendar rendering.
package heatmap

import (
	"time"

	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/models"
)

// Cell is one grid position. A cell with an empty Date is a placeholder
// used only to pad a week row to seven entries. Entry is nil for real days
// with no recorded activity.
type Cell struct {
	Date      string // YYYY-MM-DD format, empty for placeholders
	DayOfWeek time.Weekday
	Entry     *models.HeatmapEntry
}

// IsPlaceholder reports whether the cell pads the grid rather than
// representing a calendar day.
func (c Cell) IsPlaceholder() bool {
	return c.Date == ""
}

// MonthBlock is one month's worth of week rows. Every week row holds
// exactly seven cells and never spans a month boundary.
type MonthBlock struct {
	Key   string // YYYY-MM month key
	Name  string // short month name of the first real day
	Weeks [][]Cell
}

// BuildGrid partitions the 365 days ending at today (inclusive) into
// chronological month blocks of Sunday-aligned week rows. The entries map
// is a sparse lookup by date string; days without an entry become real
// cells with a nil Entry. Output is deterministic for a given today and
// entry set.
func BuildGrid(today time.Time, entries map[string]models.HeatmapEntry) []MonthBlock {
	var (
		months      []MonthBlock
		current     *MonthBlock
		currentWeek []Cell
	)

	flushWeek := func() {
		if len(currentWeek) == 0 {
			return
		}
		for len(currentWeek) < 7 {
			currentWeek = append(currentWeek, Cell{})
		}
		current.Weeks = append(current.Weeks, currentWeek)
		currentWeek = nil
	}

	flushMonth := func() {
		if current == nil {
			return
		}
		flushWeek()
		months = append(months, *current)
		current = nil
	}

	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for i := constants.HeatmapWindowDays - 1; i >= 0; i-- {
		date := base.AddDate(0, 0, -i)
		monthKey := date.Format("2006-01")

		if current == nil || current.Key != monthKey {
			flushMonth()
			current = &MonthBlock{
				Key:  monthKey,
				Name: date.Format("Jan"),
			}
			// Left-pad the month's first week up to this day's weekday so
			// columns stay Sunday-aligned.
			for j := 0; j < int(date.Weekday()); j++ {
				currentWeek = append(currentWeek, Cell{})
			}
		}

		cell := Cell{
			Date:      date.Format(constants.DateFormat),
			DayOfWeek: date.Weekday(),
		}
		if entry, ok := entries[cell.Date]; ok {
			e := entry
			cell.Entry = &e
		}
		currentWeek = append(currentWeek, cell)

		if len(currentWeek) == 7 {
			current.Weeks = append(current.Weeks, currentWeek)
			currentWeek = nil
		}
	}

	flushMonth()
	return months
}

// EntryIndex builds the sparse lookup BuildGrid consumes from a flat feed.
func EntryIndex(feed []models.HeatmapEntry) map[string]models.HeatmapEntry {
	index := make(map[string]models.HeatmapEntry, len(feed))
	for _, entry := range feed {
		index[entry.Date] = entry
	}
	return index
}

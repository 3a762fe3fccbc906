package heatmap

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/wakelog/internal/models"
)

func TestRenderCell(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{name: "placeholder", cell: Cell{}, want: placeholderMark},
		{
			name: "no activity",
			cell: Cell{Date: "2024-03-15"},
			want: noActivityMark,
		},
		{
			name: "early day",
			cell: Cell{Date: "2024-03-15", Entry: &models.HeatmapEntry{WakeCategory: "early"}},
			want: cellMark,
		},
		{
			name: "unknown category falls back to no activity",
			cell: Cell{Date: "2024-03-15", Entry: &models.HeatmapEntry{WakeCategory: "weird"}},
			want: noActivityMark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Styles add escape codes in color terminals; assert on the marker
			got := RenderCell(tt.cell)
			if !strings.Contains(got, strings.TrimSpace(tt.want)) && got != tt.want {
				t.Errorf("RenderCell() = %q, want marker %q", got, tt.want)
			}
		})
	}
}

func TestRenderGrid(t *testing.T) {
	today := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	months := BuildGrid(today, map[string]models.HeatmapEntry{
		"2024-03-15": {Date: "2024-03-15", WakeCategory: "good"},
	})

	out := RenderGrid(months)

	if !strings.Contains(out, "S  M  T  W  T  F  S") {
		t.Error("output missing weekday header")
	}
	if !strings.Contains(out, "Legend") {
		t.Error("output missing legend")
	}
	for _, name := range []string{"Mar", "Jan", "Dec"} {
		if !strings.Contains(out, name) {
			t.Errorf("output missing month label %s", name)
		}
	}

	// One line per week row plus header, legend and a separator
	wantWeeks := 0
	for _, month := range months {
		wantWeeks += len(month.Weeks)
	}
	lines := strings.Count(strings.TrimRight(out, "\n"), "\n") + 1
	if lines != wantWeeks+3 {
		t.Errorf("output has %d lines, want %d", lines, wantWeeks+3)
	}
}

package heatmap

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	earlyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("120")) // light green
	goodStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))  // dark green
	lateStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // red
	emptyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	monthLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	weekdayRowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	legendLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const (
	cellMark        = "■ "
	noActivityMark  = "· "
	placeholderMark = "  "
)

// RenderCell returns the colored marker for a single grid cell.
func RenderCell(c Cell) string {
	if c.IsPlaceholder() {
		return placeholderMark
	}
	if c.Entry == nil {
		return emptyStyle.Render(noActivityMark)
	}
	switch c.Entry.WakeCategory {
	case "early":
		return earlyStyle.Render(cellMark)
	case "good":
		return goodStyle.Render(cellMark)
	case "late":
		return lateStyle.Render(cellMark)
	default:
		return emptyStyle.Render(noActivityMark)
	}
}

// RenderGrid renders the month blocks vertically with Sunday-first weekday
// columns, one week per line.
func RenderGrid(months []MonthBlock) string {
	var b strings.Builder

	b.WriteString(weekdayRowStyle.Render("      S  M  T  W  T  F  S"))
	b.WriteString("\n")

	for _, month := range months {
		for i, week := range month.Weeks {
			if i == 0 {
				b.WriteString(monthLabelStyle.Render(padRight(month.Name, 5)))
			} else {
				b.WriteString(strings.Repeat(" ", 5))
			}
			b.WriteString(" ")
			for _, cell := range week {
				b.WriteString(" ")
				b.WriteString(RenderCell(cell))
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(legendLabelStyle.Render("Legend: "))
	b.WriteString(earlyStyle.Render(cellMark))
	b.WriteString(legendLabelStyle.Render("before 5 AM   "))
	b.WriteString(goodStyle.Render(cellMark))
	b.WriteString(legendLabelStyle.Render("5-7 AM   "))
	b.WriteString(lateStyle.Render(cellMark))
	b.WriteString(legendLabelStyle.Render("after 7 AM   "))
	b.WriteString(emptyStyle.Render(noActivityMark))
	b.WriteString(legendLabelStyle.Render("no data"))
	b.WriteString("\n")

	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wakelog/internal/analytics"
	"github.com/julianstephens/wakelog/internal/models"
	"github.com/julianstephens/wakelog/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateWeek:
		content = m.viewPeriod("week", m.week, m.weekOffset)
	case StateMonth:
		content = m.viewPeriod("month", m.month, m.monthOffset)
	case StateHeatmap:
		content = m.viewHeatmap()
	}

	if m.loadErr != nil {
		content = errorStyle.Render(fmt.Sprintf("Failed to load data: %v", m.loadErr))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.help.View(m.keys),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Today", "Week", "Month", "Heatmap"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(m.now.Format("Monday, January 2")))
	b.WriteString("\n\n")

	if m.today == nil {
		b.WriteString(mutedStyle.Render("Nothing logged yet. Run 'wakelog day log' to get started."))
		return b.String()
	}

	category, err := analytics.WakeCategoryFor(m.today.WakeTime)
	if err != nil {
		category = "?"
	}
	fmt.Fprintf(&b, "Wake time: %s (%s)\n", m.today.WakeTime, category)
	fmt.Fprintf(&b, "Study time: %s\n", utils.FormatDuration(m.today.TotalStudyMinutes))

	if len(m.today.Sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render("Sessions"))
		b.WriteString("\n")
		for _, s := range m.today.Sessions {
			fmt.Fprintf(&b, "  %s  %s\n", utils.FormatDuration(s.DurationMin), s.Topic)
			if s.Notes != "" {
				fmt.Fprintf(&b, "      %s\n", mutedStyle.Render(s.Notes))
			}
		}
	}

	return b.String()
}

func (m Model) viewPeriod(label string, pair periodPair, offset int) string {
	var b strings.Builder

	title := fmt.Sprintf("This %s", label)
	if offset == 1 {
		title = fmt.Sprintf("Last %s", label)
	} else if offset > 1 {
		title = fmt.Sprintf("%d %ss ago", offset, label)
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s (%s to %s)", title, pair.current.StartDate, pair.current.EndDate)))
	b.WriteString("\n")
	b.WriteString(renderStats(pair.current.PeriodStats))
	b.WriteString("\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("Previous (%s to %s)", pair.previous.StartDate, pair.previous.EndDate)))
	b.WriteString("\n")
	b.WriteString(renderStats(pair.previous.PeriodStats))
	b.WriteString("\n")

	b.WriteString(renderComparison(pair.comparison))
	return b.String()
}

func renderStats(stats models.PeriodStats) string {
	if stats.TotalDays == 0 {
		return mutedStyle.Render("  No days recorded") + "\n"
	}

	avgWake := "-"
	if stats.AvgWakeTime != nil {
		avgWake = *stats.AvgWakeTime
	}
	var b strings.Builder
	fmt.Fprintf(&b, "  Avg wake time:   %s\n", avgWake)
	fmt.Fprintf(&b, "  Study hours:     %.1f\n", stats.TotalStudyHours)
	fmt.Fprintf(&b, "  Days logged:     %d\n", stats.TotalDays)
	fmt.Fprintf(&b, "  Avg hours/day:   %.1f\n", stats.AvgStudyHoursPerDay)
	return b.String()
}

func renderComparison(cmp models.Comparison) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Compared to the previous period"))
	b.WriteString("\n")

	if cmp.WakeTime == nil && cmp.StudyHours == nil {
		b.WriteString(mutedStyle.Render("  Not enough data to compare"))
		b.WriteString("\n")
		return b.String()
	}

	if cmp.WakeTime != nil {
		line := "  Wake time: " + describeWakeDiff(cmp.WakeTime.DiffMinutes)
		if cmp.WakeTime.Improved {
			b.WriteString(improvedStyle.Render(line))
		} else {
			b.WriteString(declinedStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if cmp.StudyHours != nil {
		sign := ""
		if cmp.StudyHours.DiffHours > 0 {
			sign = "+"
		}
		line := fmt.Sprintf("  Study hours: %s%.1f", sign, cmp.StudyHours.DiffHours)
		if cmp.StudyHours.Improved {
			b.WriteString(improvedStyle.Render(line))
		} else {
			b.WriteString(declinedStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func describeWakeDiff(diffMinutes int) string {
	switch {
	case diffMinutes > 0:
		return fmt.Sprintf("%s earlier", utils.FormatDuration(diffMinutes))
	case diffMinutes < 0:
		return fmt.Sprintf("%s later", utils.FormatDuration(-diffMinutes))
	default:
		return "unchanged"
	}
}

func (m Model) viewHeatmap() string {
	if m.grid == "" {
		return mutedStyle.Render("No activity recorded in the last 365 days.")
	}
	return headerStyle.Render("Activity calendar (last 365 days)") + "\n\n" + m.grid
}

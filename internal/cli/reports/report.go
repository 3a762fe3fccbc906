package reports

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wakelog/internal/analytics"
	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	improvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	declinedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type ReportCmd struct {
	Period string `arg:"" help:"Report period: week or month." default:"week"`
	Offset int    `help:"Periods back from the current one (0 = current)."`
	JSON   bool   `help:"Emit the report as JSON."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	kind, err := analytics.ParsePeriodKind(c.Period)
	if err != nil {
		return err
	}

	reporter := analytics.NewReporter(ctx.Store)
	report, err := reporter.BuildReportAt(kind, c.Offset, ctx.Now())
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printReport(report, c.Offset)
	return nil
}

func printReport(report models.Report, offset int) {
	label := "Weekly report"
	if report.Period == string(analytics.PeriodMonth) {
		label = "Monthly report"
	}
	fmt.Println(titleStyle.Render(label))
	fmt.Println()

	currentLabel := fmt.Sprintf("This %s", report.Period)
	if offset == 1 {
		currentLabel = fmt.Sprintf("Last %s", report.Period)
	} else if offset > 1 {
		currentLabel = fmt.Sprintf("%d %ss ago", offset, report.Period)
	}
	fmt.Println(headerStyle.Render(fmt.Sprintf("%s (%s to %s)", currentLabel, report.Current.StartDate, report.Current.EndDate)))
	printStats(report.Current.PeriodStats)
	fmt.Println()

	fmt.Println(headerStyle.Render(fmt.Sprintf("Previous %s (%s to %s)", report.Period, report.Previous.StartDate, report.Previous.EndDate)))
	printStats(report.Previous.PeriodStats)
	fmt.Println()

	printComparison(report.Comparison)
}

func printStats(stats models.PeriodStats) {
	if stats.TotalDays == 0 {
		fmt.Println(mutedStyle.Render("  No days recorded"))
		return
	}

	avgWake := "-"
	if stats.AvgWakeTime != nil {
		avgWake = *stats.AvgWakeTime
	}
	fmt.Printf("  Avg wake time:   %s\n", avgWake)
	fmt.Printf("  Study hours:     %.1f\n", stats.TotalStudyHours)
	fmt.Printf("  Days logged:     %d\n", stats.TotalDays)
	fmt.Printf("  Avg hours/day:   %.1f\n", stats.AvgStudyHoursPerDay)
}

func printComparison(cmp models.Comparison) {
	fmt.Println(headerStyle.Render("Compared to the previous period"))

	if cmp.WakeTime == nil && cmp.StudyHours == nil {
		fmt.Println(mutedStyle.Render("  Not enough data to compare"))
		return
	}

	if cmp.WakeTime != nil {
		line := fmt.Sprintf("  Wake time: %s", describeWakeDiff(cmp.WakeTime.DiffMinutes))
		if cmp.WakeTime.Improved {
			fmt.Println(improvedStyle.Render(line))
		} else {
			fmt.Println(declinedStyle.Render(line))
		}
	}

	if cmp.StudyHours != nil {
		sign := ""
		if cmp.StudyHours.DiffHours > 0 {
			sign = "+"
		}
		line := fmt.Sprintf("  Study hours: %s%.1f", sign, cmp.StudyHours.DiffHours)
		if cmp.StudyHours.Improved {
			fmt.Println(improvedStyle.Render(line))
		} else {
			fmt.Println(declinedStyle.Render(line))
		}
	}
}

func describeWakeDiff(diffMinutes int) string {
	switch {
	case diffMinutes > 0:
		return fmt.Sprintf("%s earlier", formatMinutes(diffMinutes))
	case diffMinutes < 0:
		return fmt.Sprintf("%s later", formatMinutes(-diffMinutes))
	default:
		return "unchanged"
	}
}

func formatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%dh", minutes/60)
	if minutes%60 != 0 {
		fmt.Fprintf(&b, " %dm", minutes%60)
	}
	return b.String()
}

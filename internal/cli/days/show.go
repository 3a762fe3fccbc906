package days

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/wakelog/internal/analytics"
	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/utils"
)

type ShowCmd struct {
	Date string `arg:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	date, err := utils.ResolveDate(c.Date, ctx.Settings().Timezone)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDay(date)
	if err != nil {
		return fmt.Errorf("no day recorded for %s", date)
	}

	category, err := analytics.WakeCategoryFor(day.WakeTime)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", day.Date)
	fmt.Printf("  Woke at %s (%s)\n", day.WakeTime, category)

	if len(day.Sessions) == 0 {
		fmt.Println("  No study sessions")
	} else {
		fmt.Printf("  Study: %s across %d session(s)\n\n", utils.FormatDuration(day.TotalStudyMinutes), len(day.Sessions))
		for _, session := range day.Sessions {
			fmt.Printf("  • %-30s %s\n", session.Topic, utils.FormatDuration(session.DurationMin))
			if session.Notes != "" {
				fmt.Printf("    %s\n", session.Notes)
			}
		}
	}

	if !day.UpdatedAt.IsZero() {
		fmt.Printf("\n  Last updated %s\n", humanize.Time(day.UpdatedAt))
	}
	return nil
}

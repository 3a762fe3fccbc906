package days

import (
	"fmt"

	"github.com/julianstephens/wakelog/internal/analytics"
	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/utils"
)

type ListCmd struct {
	Days int    `help:"Number of trailing days to list." default:"14"`
	From string `help:"Start date (YYYY-MM-DD), overrides --days."`
	To   string `help:"End date (YYYY-MM-DD, default today)."`
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	timezone := ctx.Settings().Timezone

	endDate, err := utils.ResolveDate(c.To, timezone)
	if err != nil {
		return err
	}

	startDate := c.From
	if startDate == "" {
		end, err := utils.ParseDate(endDate)
		if err != nil {
			return err
		}
		startDate = end.AddDate(0, 0, -(c.Days - 1)).Format(constants.DateFormat)
	} else if _, err := utils.ParseDate(startDate); err != nil {
		return fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", startDate)
	}

	records, err := ctx.Store.GetDaysInRange(startDate, endDate)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Printf("No days recorded between %s and %s.\n", startDate, endDate)
		return nil
	}

	fmt.Printf("Days %s to %s:\n\n", startDate, endDate)
	for _, day := range records {
		category, err := analytics.WakeCategoryFor(day.WakeTime)
		if err != nil {
			return err
		}
		fmt.Printf("%s  woke %s (%-5s)  study %-8s  %d session(s)\n",
			day.Date, day.WakeTime, category, utils.FormatDuration(day.TotalStudyMinutes), len(day.Sessions))
	}
	return nil
}

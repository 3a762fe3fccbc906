package days

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/models"
	"github.com/julianstephens/wakelog/internal/utils"
	"github.com/julianstephens/wakelog/internal/validation"
)

type SessionAddCmd struct {
	Topic    string `arg:"" help:"Study topic."`
	Duration int    `arg:"" help:"Duration in minutes."`
	Date     string `help:"Date to add to (YYYY-MM-DD or 'today')." default:"today"`
	Notes    string `help:"Optional notes." default:""`
}

// Run appends a session to an existing day. The day must already have a
// wake time logged; sessions never create a day on their own.
func (c *SessionAddCmd) Run(ctx *cli.Context) error {
	date, err := utils.ResolveDate(c.Date, ctx.Settings().Timezone)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDay(date)
	if err != nil {
		return fmt.Errorf("no day recorded for %s: log a wake time first with 'wakelog day log'", date)
	}

	session := models.StudySession{
		ID:          uuid.New().String(),
		Topic:       c.Topic,
		DurationMin: c.Duration,
		Notes:       c.Notes,
	}
	if err := validation.ValidateSession(session); err != nil {
		return err
	}

	day.AddSession(session)
	if err := ctx.Store.SaveDay(day); err != nil {
		return err
	}

	fmt.Printf("Added %s (%s) to %s, %s total\n",
		session.Topic, utils.FormatDuration(session.DurationMin), day.Date, utils.FormatDuration(day.TotalStudyMinutes))
	return nil
}

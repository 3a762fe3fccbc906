package days

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/logger"
	"github.com/julianstephens/wakelog/internal/models"
	"github.com/julianstephens/wakelog/internal/utils"
	"github.com/julianstephens/wakelog/internal/validation"
)

type LogCmd struct {
	Date     string   `help:"Date to log (YYYY-MM-DD or 'today')." default:"today"`
	Wake     string   `help:"Wake time in HH:MM (24-hour)."`
	Sessions []string `help:"Study sessions as topic:minutes or topic:minutes:notes. Repeatable." name:"session" short:"s"`
	Keep     bool     `help:"Keep existing sessions when the day already has some."`
}

// Run upserts the day record. With no --wake flag it opens an interactive
// form prefilled from any existing record.
func (c *LogCmd) Run(ctx *cli.Context) error {
	date, err := utils.ResolveDate(c.Date, ctx.Settings().Timezone)
	if err != nil {
		return err
	}

	day, err := ctx.Store.GetDay(date)
	exists := err == nil
	if !exists {
		day = models.Day{Date: date}
	}

	if c.Wake == "" {
		if err := runLogForm(&day); err != nil {
			return err
		}
	} else {
		day.WakeTime = c.Wake

		sessions, err := parseSessions(c.Sessions)
		if err != nil {
			return err
		}
		if c.Keep {
			day.Sessions = append(day.Sessions, sessions...)
		} else if len(sessions) > 0 || !exists {
			day.Sessions = sessions
		}
	}

	day.Normalize()
	if err := validation.ValidateDay(day); err != nil {
		return err
	}

	if err := ctx.Store.SaveDay(day); err != nil {
		return err
	}

	logger.Debug("Saved day", "date", day.Date, "sessions", len(day.Sessions))

	verb := "Logged"
	if exists {
		verb = "Updated"
	}
	fmt.Printf("%s %s: woke at %s, %s of study across %d session(s)\n",
		verb, day.Date, day.WakeTime, utils.FormatDuration(day.TotalStudyMinutes), len(day.Sessions))
	return nil
}

// parseSessions parses repeated topic:minutes[:notes] flags.
func parseSessions(specs []string) ([]models.StudySession, error) {
	var sessions []models.StudySession
	for _, spec := range specs {
		parts := strings.SplitN(spec, ":", 3)
		if len(parts) < 2 {
			return nil, fmt.Errorf("invalid session %q: expected topic:minutes or topic:minutes:notes", spec)
		}

		duration, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid session duration in %q: %w", spec, err)
		}

		session := models.StudySession{
			ID:          uuid.New().String(),
			Topic:       strings.TrimSpace(parts[0]),
			DurationMin: duration,
		}
		if len(parts) == 3 {
			session.Notes = strings.TrimSpace(parts[2])
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// runLogForm collects wake time and an optional first session interactively.
func runLogForm(day *models.Day) error {
	var (
		wake     = day.WakeTime
		topic    string
		duration string
		notes    string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Wake time (HH:MM)").
				Value(&wake).
				Validate(validation.ValidateWakeTime),
			huh.NewInput().
				Title("Study topic").
				Description("Leave empty to log only the wake time").
				Value(&topic),
			huh.NewInput().
				Title("Study duration (min)").
				Value(&duration).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("duration must be at least 1 minute")
					}
					return nil
				}),
			huh.NewInput().
				Title("Notes").
				Value(&notes),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	day.WakeTime = wake
	if strings.TrimSpace(topic) != "" {
		mins, err := strconv.Atoi(strings.TrimSpace(duration))
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", duration, err)
		}
		day.AddSession(models.StudySession{
			ID:          uuid.New().String(),
			Topic:       strings.TrimSpace(topic),
			DurationMin: mins,
			Notes:       strings.TrimSpace(notes),
		})
	}
	return nil
}

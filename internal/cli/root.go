package cli

import (
	"time"

	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/models"
	"github.com/julianstephens/wakelog/internal/storage"
	"github.com/julianstephens/wakelog/internal/utils"
)

// Context carries the shared dependencies into every command's Run method.
type Context struct {
	Store storage.Provider
}

// Settings loads the stored settings, defaulting to the system timezone
// when the settings row cannot be read yet.
func (ctx *Context) Settings() models.Settings {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return models.Settings{Timezone: "Local"}
	}
	return settings
}

// Now returns the current instant in the user's configured timezone.
func (ctx *Context) Now() time.Time {
	now, err := utils.NowInTimezone(ctx.Settings().Timezone)
	if err != nil {
		return time.Now()
	}
	return now
}

// Today returns today's date string in the user's configured timezone.
func (ctx *Context) Today() string {
	return ctx.Now().Format(constants.DateFormat)
}

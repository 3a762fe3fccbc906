package settings

import (
	"errors"
	"fmt"

	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/keyring"
	"github.com/julianstephens/wakelog/internal/utils"
)

type SettingsCmd struct {
	Show ShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SetCmd  `cmd:"" help:"Change a setting."`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}

	timezone := settings.Timezone
	if timezone == "" {
		timezone = "Local"
	}
	fmt.Printf("Timezone: %s\n", timezone)

	if _, err := keyring.GetConnectionString(); err == nil {
		fmt.Println("Connection string: stored in OS keyring")
	} else if errors.Is(err, keyring.ErrNotFound) {
		fmt.Println("Connection string: not set")
	} else {
		fmt.Println("Connection string: keyring unavailable")
	}

	return nil
}

type SetCmd struct {
	Timezone         string `help:"IANA timezone name (e.g. Europe/London), or 'Local'."`
	ConnectionString string `help:"PostgreSQL connection string to store in the OS keyring." name:"connection-string"`
	ClearConnection  bool   `help:"Remove the stored connection string from the OS keyring."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	changed := false

	if c.Timezone != "" {
		if !utils.ValidateTimezone(c.Timezone) {
			return fmt.Errorf("invalid timezone %q", c.Timezone)
		}
		settings, err := ctx.Store.GetSettings()
		if err != nil {
			return err
		}
		settings.Timezone = c.Timezone
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Printf("Timezone set to %s\n", c.Timezone)
		changed = true
	}

	if c.ConnectionString != "" {
		// Keyring entries may carry the password; that is the point of
		// keeping them out of flags and config files.
		if err := keyring.SetConnectionString(c.ConnectionString); err != nil {
			return err
		}
		fmt.Println("Connection string stored in OS keyring.")
		changed = true
	}

	if c.ClearConnection {
		if err := keyring.DeleteConnectionString(); err != nil {
			return err
		}
		fmt.Println("Connection string removed from OS keyring.")
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to set: use --timezone, --connection-string or --clear-connection")
	}
	return nil
}

package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/wakelog/internal/backup"
	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/constants"
	"github.com/julianstephens/wakelog/internal/keyring"
	"github.com/julianstephens/wakelog/internal/migration"
	"github.com/julianstephens/wakelog/internal/sysutil"
	"github.com/julianstephens/wakelog/internal/utils"
)

type DoctorCmd struct{}

// Run performs a series of health checks against the storage and the host
// environment. Failures are reported but do not stop subsequent checks.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Printf("Checking %s installation...\n\n", constants.AppName)

	healthy := true
	loaded := false

	err := ctx.Store.Load()
	switch {
	case err == nil:
		fmt.Printf("✓ Database reachable: %s\n", ctx.Store.GetConfigPath())
		fmt.Println("✓ Schema is up to date")
		loaded = true
	case errors.Is(err, migration.ErrSchemaOutOfDate):
		fmt.Printf("✓ Database reachable: %s\n", ctx.Store.GetConfigPath())
		fmt.Printf("❌ %v\n", err)
		healthy = false
	default:
		fmt.Printf("❌ Database not reachable: %v\n", err)
		healthy = false
	}

	if loaded {
		settings, err := ctx.Store.GetSettings()
		switch {
		case err != nil:
			fmt.Printf("❌ Settings unreadable: %v\n", err)
			healthy = false
		case settings.Timezone == "" || utils.ValidateTimezone(settings.Timezone):
			tz := settings.Timezone
			if tz == "" {
				tz = "Local"
			}
			fmt.Printf("✓ Timezone: %s\n", tz)
		default:
			fmt.Printf("❌ Invalid timezone setting: %q\n", settings.Timezone)
			healthy = false
		}
	} else {
		fmt.Println("⊘ Settings check skipped (database unavailable)")
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if backups, err := mgr.ListBackups(); err != nil {
		fmt.Printf("⊘ Backup check skipped: %v\n", err)
	} else if len(backups) == 0 {
		fmt.Println("⚠ No backups found; run 'wakelog backup create'")
	} else {
		fmt.Printf("✓ Backups: %d available (latest %s)\n",
			len(backups), backups[0].Timestamp.Format("2006-01-02 15:04:05"))
	}

	if keyring.IsAvailable() {
		fmt.Println("✓ OS keyring available")
	} else {
		fmt.Println("⊘ OS keyring unavailable (connection strings fall back to WAKELOG_DB_URL)")
	}

	if others, err := sysutil.OtherInstances(); err != nil {
		fmt.Printf("⊘ Process check skipped: %v\n", err)
	} else if len(others) > 0 {
		fmt.Printf("⚠ Found %d other running %s process(es)\n", len(others), constants.AppName)
	} else {
		fmt.Println("✓ No other running instances")
	}

	fmt.Println()
	if !healthy {
		return fmt.Errorf("some checks failed")
	}
	fmt.Println("All checks passed.")
	return nil
}

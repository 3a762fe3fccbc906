package system

import (
	"fmt"

	"github.com/julianstephens/wakelog/internal/cli"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	applied, err := ctx.Store.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if applied == 0 {
		fmt.Println("✓ Database schema is up to date.")
	} else {
		fmt.Printf("✓ Applied %d migration(s).\n", applied)
	}
	return nil
}

package days

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/utils"
)

type DeleteCmd struct {
	Date  string `arg:"" help:"Date to delete (YYYY-MM-DD or 'today')."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	date, err := utils.ResolveDate(c.Date, ctx.Settings().Timezone)
	if err != nil {
		return err
	}

	if _, err := ctx.Store.GetDay(date); err != nil {
		return fmt.Errorf("no day recorded for %s", date)
	}

	if !c.Force {
		fmt.Printf("Delete the record for %s, including its study sessions? [y/N]: ", date)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := ctx.Store.DeleteDay(date); err != nil {
		return err
	}

	fmt.Printf("Deleted %s\n", date)
	return nil
}

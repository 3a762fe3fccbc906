package reports

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/julianstephens/wakelog/internal/analytics"
	"github.com/julianstephens/wakelog/internal/cli"
	"github.com/julianstephens/wakelog/internal/heatmap"
)

type HeatmapCmd struct {
	JSON bool `help:"Emit the flat per-day feed as JSON instead of the grid."`
}

func (c *HeatmapCmd) Run(ctx *cli.Context) error {
	reporter := analytics.NewReporter(ctx.Store)
	today := ctx.Now()

	feed, err := reporter.HeatmapFeed(today)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(feed)
	}

	months := heatmap.BuildGrid(today, heatmap.EntryIndex(feed))
	fmt.Println(titleStyle.Render("Activity calendar (last 365 days)"))
	fmt.Println()
	fmt.Print(heatmap.RenderGrid(months))
	return nil
}

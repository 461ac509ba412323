package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cryptodash/cryptodash"
	"github.com/cryptodash/cryptodash/renderer"
	"github.com/google/subcommands"
)

type chartCmd struct {
	hover float64
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot the portfolio value over time" }
func (*chartCmd) Usage() string {
	return `cdash chart [-hover <x>]

  Plots the portfolio value time series. With -hover, the horizontal pixel
  offset is mapped back to the nearest sample and its exact date and value
  are shown as a tooltip; offsets outside the plotted band show none.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.hover, "hover", -1, "Horizontal offset to inspect, in drawing-region pixels.")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, _ := openClient()

	var view cryptodash.HistoryView
	view.Load(ctx, client)
	if view.State == cryptodash.Failed {
		return reportFailure(view.Kind, view.Err)
	}

	chart := cryptodash.NewChart(view.Points)
	if c.hover >= 0 {
		if _, ok := chart.Hover(c.hover); !ok {
			fmt.Fprintln(os.Stderr, "No sample under that offset.")
		}
	}
	printMarkdown(renderer.Chart(chart))
	return subcommands.ExitSuccess
}

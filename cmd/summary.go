package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cryptodash/cryptodash"
	"github.com/cryptodash/cryptodash/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the portfolio summary figures" }
func (*summaryCmd) Usage() string {
	return `cdash summary

  Displays the portfolio aggregates: total value, cost basis, profit and
  loss, and the number of distinct holdings.
`
}
func (*summaryCmd) SetFlags(*flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, _ := openClient()

	var view cryptodash.SummaryView
	view.Load(ctx, client)
	if view.State == cryptodash.Failed {
		return reportFailure(view.Kind, view.Err)
	}
	printMarkdown(renderer.Summary(view.Summary))
	return subcommands.ExitSuccess
}

type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list positions, largest market value first" }
func (*holdingsCmd) Usage() string {
	return `cdash holdings

  Lists the portfolio positions sorted descending by current market value.
`
}
func (*holdingsCmd) SetFlags(*flag.FlagSet) {}

func (*holdingsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, _ := openClient()

	var view cryptodash.HoldingsView
	view.Load(ctx, client)
	switch view.State {
	case cryptodash.Failed:
		return reportFailure(view.Kind, view.Err)
	case cryptodash.Empty:
		fmt.Println("No holdings yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Holdings(view.Holdings))
	return subcommands.ExitSuccess
}

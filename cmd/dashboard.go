package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cryptodash/cryptodash"
	"github.com/cryptodash/cryptodash/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the full portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `cdash dashboard

  Displays the composed dashboard: summary figures, the value chart, the
  holdings and the most recent transactions.
`
}
func (*dashboardCmd) SetFlags(*flag.FlagSet) {}

func (*dashboardCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, store, cfg := openClient()
	prices := cryptodash.NewPriceProvider(cfg.PriceAPIURL)

	dash := cryptodash.NewDashboard(store, client, prices, func() {
		fmt.Fprintln(os.Stderr, loginHint)
	})
	if dash.User() == nil {
		fmt.Fprintln(os.Stderr, loginHint)
		return subcommands.ExitFailure
	}
	dash.Reload(ctx)

	var b strings.Builder
	fmt.Fprintf(&b, "# CryptoTracker — %s\n\n", dash.User().DisplayName())

	section(&b, dash.Summary.State, dash.Summary.Err, func() string {
		return renderer.Summary(dash.Summary.Summary)
	})
	section(&b, dash.History.State, dash.History.Err, func() string {
		return renderer.Chart(cryptodash.NewChart(dash.History.Points))
	})
	section(&b, dash.Holdings.State, dash.Holdings.Err, func() string {
		return renderer.Holdings(dash.Holdings.Holdings)
	})
	section(&b, dash.Transactions.State, dash.Transactions.Err, func() string {
		return renderer.Transactions(dash.Transactions.Recent(), dash.Transactions.Omitted())
	})

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// section appends one view's rendering, or its inline placeholder when the
// view is empty or failed. Errors never abort the composed dashboard.
func section(b *strings.Builder, state cryptodash.ViewState, err error, render func() string) {
	switch state {
	case cryptodash.Ready:
		b.WriteString(render())
	case cryptodash.Empty:
		b.WriteString("No data available.\n")
	case cryptodash.Failed:
		fmt.Fprintf(b, "> %v\n", err)
	}
	b.WriteString("\n")
}

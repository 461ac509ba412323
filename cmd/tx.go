package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cryptodash/cryptodash"
	"github.com/cryptodash/cryptodash/renderer"
	"github.com/google/subcommands"
)

type txCmd struct{}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the most recent transactions" }
func (*txCmd) Usage() string {
	return `cdash tx

  Lists the ten most recent transactions, newest first, and reports how
  many older ones were omitted.
`
}
func (*txCmd) SetFlags(*flag.FlagSet) {}

func (*txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, _ := openClient()

	var view cryptodash.TransactionsView
	view.Load(ctx, client)
	switch view.State {
	case cryptodash.Failed:
		return reportFailure(view.Kind, view.Err)
	case cryptodash.Empty:
		fmt.Println("No transactions yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Transactions(view.Recent(), view.Omitted()))
	return subcommands.ExitSuccess
}

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list the available asset catalog" }
func (*assetsCmd) Usage() string {
	return `cdash assets

  Lists the cryptocurrencies available for transactions.
`
}
func (*assetsCmd) SetFlags(*flag.FlagSet) {}

func (*assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, _ := openClient()

	assets, err := client.Assets(ctx)
	if err != nil {
		return reportFailure(cryptodash.RequestFailed, err)
	}
	if len(assets) == 0 {
		fmt.Println("The asset catalog is empty.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Assets(assets))
	return subcommands.ExitSuccess
}

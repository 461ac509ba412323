package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/cryptodash/cryptodash"
	"github.com/cryptodash/cryptodash/date"
	"github.com/google/subcommands"
)

type addCmd struct {
	txType   string
	asset    string
	quantity string
	price    string
	date     string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a new buy or sell transaction" }
func (*addCmd) Usage() string {
	return `cdash add -asset <symbol> -quantity <q> [-type buy|sell] [-price <p>] [-d <date>]

  Records a transaction. The date defaults to today. When -price is
  omitted, the historical unit price for the asset on that date is looked
  up from the price provider; if the lookup fails (for example when rate
  limited) the price must be passed manually.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", string(cryptodash.Buy), "Transaction type, buy or sell.")
	f.StringVar(&c.asset, "asset", "", "Asset symbol, e.g. BTC.")
	f.StringVar(&c.quantity, "quantity", "", "Quantity of the asset.")
	f.StringVar(&c.price, "price", "", "Unit price in USD. Fetched for the date when omitted.")
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today).")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	client, _, cfg := openClient()
	prices := cryptodash.NewPriceProvider(cfg.PriceAPIURL)

	workflow := cryptodash.NewEntryWorkflow(client, prices)
	refreshed := false
	workflow.OnSubmitted = func() { refreshed = true }
	workflow.OnAuthNeeded = func() { fmt.Fprintln(os.Stderr, loginHint) }

	if err := workflow.Open(ctx); err != nil {
		if errors.Is(err, cryptodash.ErrAuthRequired) {
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "Warning: cannot fetch the asset catalog: %v\n", err)
	}

	switch cryptodash.TransactionType(c.txType) {
	case cryptodash.Buy, cryptodash.Sell:
		workflow.SetType(cryptodash.TransactionType(c.txType))
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid type %q, want buy or sell.\n", c.txType)
		return subcommands.ExitUsageError
	}

	if c.date != "" {
		on, err := date.Parse(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		workflow.SetDate(ctx, on)
	}
	if c.asset != "" {
		if err := workflow.SelectAsset(ctx, c.asset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if note := workflow.PriceNote(); note != "" {
		fmt.Fprintln(os.Stderr, note)
	}
	workflow.SetQuantity(c.quantity)
	if c.price != "" {
		// A manual price always wins over the fetched one.
		workflow.SetPrice(c.price)
	}

	if err := workflow.Submit(ctx); err != nil {
		if errors.Is(err, cryptodash.ErrValidation) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if msg := workflow.SubmitError(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	if refreshed {
		fmt.Println("Transaction recorded.")
	}
	return subcommands.ExitSuccess
}

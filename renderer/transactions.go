package renderer

import (
	"fmt"
	"strings"

	"github.com/cryptodash/cryptodash"
)

// Transactions renders the recent transactions and a note about how many
// older ones were omitted from the display.
func Transactions(recent []cryptodash.Transaction, omitted int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Recent Transactions\n\n")
	fmt.Fprintln(&b, "| Date | Type | Asset | Quantity | Price | Value |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, tx := range recent {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			strings.ToUpper(string(tx.Type)),
			strings.ToUpper(tx.Symbol),
			qty(tx.Quantity),
			usd(tx.PricePerUnit),
			usd(tx.FiatValue),
		)
	}
	if omitted > 0 {
		fmt.Fprintf(&b, "\nShowing %d of %d transactions.\n", len(recent), len(recent)+omitted)
	}
	return b.String()
}

// Assets renders the catalog table.
func Assets(assets []cryptodash.Asset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Assets\n\n")
	fmt.Fprintln(&b, "| Symbol | Name | Provider ID | Last Price |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|")
	for _, a := range assets {
		last := "-"
		if a.LastPrice != nil {
			last = usd(*a.LastPrice)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			strings.ToUpper(a.Symbol), a.Name, a.ProviderID, last)
	}
	return b.String()
}

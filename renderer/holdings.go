package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cryptodash/cryptodash"
)

// qty formats an asset quantity with as many digits as it needs.
func qty(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Holdings renders the positions table. Callers pass the slice already in
// display order (descending by current market value).
func Holdings(holdings []cryptodash.Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintln(&b, "| Asset | Quantity | Avg Buy | Current | Value | P&L | P&L %% |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s (%s) | %s | %s | %s | %s | %s | %s |\n",
			h.Asset.Name,
			strings.ToUpper(h.Asset.Symbol),
			qty(h.Quantity),
			usd(h.AvgBuyPrice),
			usd(h.CurrentPrice),
			usd(h.CurrentValue),
			signedUSD(h.GainLoss),
			signedPercent(h.GainLossPct),
		)
	}
	return b.String()
}

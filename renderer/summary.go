package renderer

import (
	"fmt"
	"strings"

	"github.com/cryptodash/cryptodash"
)

// Summary renders the four portfolio aggregate figures.
func Summary(s *cryptodash.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Summary\n\n")
	fmt.Fprintln(&b, "| Metric | Value |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Total Value | %s |\n", usd(s.TotalValue))
	fmt.Fprintf(&b, "| Cost Basis | %s |\n", usd(s.TotalCostBasis))
	fmt.Fprintf(&b, "| Total P&L | %s (%s) |\n", signedUSD(s.TotalGainLoss), signedPercent(s.TotalGainPct))
	fmt.Fprintf(&b, "| Holdings | %d |\n", s.NumHoldings)
	return b.String()
}

// Package renderer turns dashboard view data into markdown strings.
// The command layer decides how to print them (plain or through a terminal
// markdown renderer).
package renderer

import (
	"github.com/cryptodash/cryptodash"
)

// usd formats a dollar amount, e.g. 1234.5 -> "$1,234.50".
func usd(v float64) string { return cryptodash.USD(v).String() }

// signedUSD formats a gain/loss amount with an explicit sign.
func signedUSD(v float64) string { return cryptodash.USD(v).SignedString() }

// percent formats a percentage, e.g. 12.34 -> "12.34%".
func percent(v float64) string { return cryptodash.Percent(v).String() }

// signedPercent formats a percentage with an explicit sign.
func signedPercent(v float64) string { return cryptodash.Percent(v).SignedString() }

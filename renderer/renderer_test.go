package renderer

import (
	"strings"
	"testing"

	"github.com/cryptodash/cryptodash"
	"github.com/cryptodash/cryptodash/date"
)

func TestSummary(t *testing.T) {
	got := Summary(&cryptodash.Summary{
		TotalValue:     1234.5,
		TotalCostBasis: 1000,
		TotalGainLoss:  234.5,
		TotalGainPct:   23.45,
		NumHoldings:    2,
	})
	for _, want := range []string{
		"| Total Value | $1,234.50 |",
		"| Cost Basis | $1,000.00 |",
		"| Total P&L | +$234.50 (+23.45%) |",
		"| Holdings | 2 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
}

func TestHoldings(t *testing.T) {
	got := Holdings([]cryptodash.Holding{
		{
			Quantity:     0.5,
			AvgBuyPrice:  50000,
			CurrentPrice: 67000,
			CurrentValue: 33500,
			GainLoss:     8500,
			GainLossPct:  34,
			Asset:        cryptodash.Asset{Name: "Bitcoin", Symbol: "btc"},
		},
	})
	want := "| Bitcoin (BTC) | 0.5 | $50,000.00 | $67,000.00 | $33,500.00 | +$8,500.00 | +34.00% |"
	if !strings.Contains(got, want) {
		t.Errorf("missing %q in:\n%s", want, got)
	}
}

func TestTransactions(t *testing.T) {
	recent := []cryptodash.Transaction{
		{Date: "2024-03-15", Type: cryptodash.Sell, Symbol: "eth", Quantity: 2, PricePerUnit: 3000, FiatValue: 6000},
	}
	got := Transactions(recent, 5)
	want := "| 2024-03-15 | SELL | ETH | 2 | $3,000.00 | $6,000.00 |"
	if !strings.Contains(got, want) {
		t.Errorf("missing %q in:\n%s", want, got)
	}
	if !strings.Contains(got, "Showing 1 of 6 transactions.") {
		t.Errorf("missing omission note in:\n%s", got)
	}

	// No note when everything fits.
	if strings.Contains(Transactions(recent, 0), "Showing") {
		t.Error("unexpected omission note")
	}
}

func TestAssets(t *testing.T) {
	price := 67000.5
	got := Assets([]cryptodash.Asset{
		{Symbol: "btc", Name: "Bitcoin", ProviderID: "bitcoin", LastPrice: &price},
		{Symbol: "new", Name: "Newcoin", ProviderID: "newcoin"},
	})
	if !strings.Contains(got, "| BTC | Bitcoin | bitcoin | $67,000.50 |") {
		t.Errorf("missing priced row in:\n%s", got)
	}
	if !strings.Contains(got, "| NEW | Newcoin | newcoin | - |") {
		t.Errorf("missing unpriced row in:\n%s", got)
	}
}

func TestChart(t *testing.T) {
	chart := cryptodash.NewChart([]cryptodash.HistoryPoint{
		{Date: date.New(2024, 3, 13), Value: 1000},
		{Date: date.New(2024, 3, 14), Value: 1500},
		{Date: date.New(2024, 3, 15), Value: 1337},
	})
	got := Chart(chart)
	if !strings.Contains(got, "Current Total Value: $1,337.00") {
		t.Errorf("missing headline in:\n%s", got)
	}
	if !strings.Contains(got, "•") {
		t.Errorf("no plotted points in:\n%s", got)
	}
	if strings.Contains(got, "2024-03-14:") {
		t.Errorf("tooltip shown without a hover:\n%s", got)
	}

	// Hovering the middle sample adds its exact figures as a tooltip.
	if _, ok := chart.Hover(300); !ok {
		t.Fatal("hover missed")
	}
	got = Chart(chart)
	if !strings.Contains(got, "2024-03-14: $1,500.00") {
		t.Errorf("missing tooltip in:\n%s", got)
	}
}

// Package cryptodash is a terminal client for the CryptoTracker backend:
// it exchanges a Google identity credential for a session, fetches account
// balances, holdings and transaction history, and records new buy/sell
// transactions. All portfolio figures are computed server-side; the client
// only fetches, derives display state and renders.
package cryptodash

import "github.com/cryptodash/cryptodash/date"

// User is the authenticated profile, held for the lifetime of the session.
type User struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// DisplayName returns the best human label for the user.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// Asset is one catalog cryptocurrency as served by GET /cryptos/db.
// Immutable from the client's perspective; fetched fresh per view.
type Asset struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Symbol     string   `json:"symbol"`
	ProviderID string   `json:"api_id"` // id used by the external price provider
	LogoURL    string   `json:"logo_url"`
	LastPrice  *float64 `json:"last_updated_price"`
}

// TransactionType is either buy or sell.
type TransactionType string

const (
	Buy  TransactionType = "buy"
	Sell TransactionType = "sell"
)

// Transaction is one recorded buy or sell, immutable once created.
// All monetary fields are display-only doubles, never ledger truth.
type Transaction struct {
	ID           int64           `json:"id"`
	CryptoID     int64           `json:"crypto_id"`
	Type         TransactionType `json:"transaction_type"`
	Quantity     float64         `json:"quantity"`
	PricePerUnit float64         `json:"price_per_coin"`
	FiatValue    float64         `json:"fiat_value"`
	Date         string          `json:"transaction_date"`
	Symbol       string          `json:"crypto_symbol"`
	Name         string          `json:"crypto_name"`
}

// NewTransaction is the write shape for POST /transactions.
type NewTransaction struct {
	CryptoID     int64           `json:"crypto_id"`
	Quantity     float64         `json:"quantity"`
	PricePerUnit float64         `json:"price_per_coin"`
	Type         TransactionType `json:"transaction_type"`
	Date         date.Date       `json:"transaction_date"`
}

// Holding is one aggregated position, recomputed server-side after every
// transaction write. The client never mutates it.
type Holding struct {
	ID           int64   `json:"id"`
	CryptoID     int64   `json:"crypto_id"`
	Quantity     float64 `json:"quantity"`
	AvgBuyPrice  float64 `json:"average_buy_price"`
	CurrentPrice float64 `json:"current_price"`
	CurrentValue float64 `json:"current_value"`
	GainLoss     float64 `json:"gain_loss"`
	GainLossPct  float64 `json:"percentage_change"`
	LastUpdated  string  `json:"last_updated"`
	Asset        Asset   `json:"crypto"`
}

// Summary is the portfolio aggregate from GET /portfolio/summary.
type Summary struct {
	TotalValue     float64 `json:"total_current_value"`
	TotalCostBasis float64 `json:"total_cost_basis"`
	TotalGainLoss  float64 `json:"total_gain_loss"`
	TotalGainPct   float64 `json:"total_percentage_change"`
	NumHoldings    int     `json:"num_holdings"`
}

// HistoryPoint is one sampled day of total portfolio value.
type HistoryPoint struct {
	Date  date.Date `json:"date"`
	Value float64   `json:"value"`
}

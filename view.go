package cryptodash

import (
	"context"
	"errors"
	"sort"

	"github.com/cryptodash/cryptodash/date"
)

// ViewState is the lifecycle of a read-and-render view. Every view enters
// Loading on mount, issues exactly one fetch, and lands in one of the three
// terminal states. There is no retry; re-fetching means a new load.
type ViewState int

const (
	Loading ViewState = iota
	Ready
	Empty
	Failed
)

func (s ViewState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// FailureKind classifies a failed view for inline display.
type FailureKind int

const (
	// AuthRequired means the session is missing or was rejected; the user
	// should be prompted to log in again.
	AuthRequired FailureKind = iota
	// RequestFailed covers every other backend or transport failure; the
	// only recovery is a manual reload.
	RequestFailed
)

// classify maps a fetch error to its failure kind.
func classify(err error) FailureKind {
	if errors.Is(err, ErrAuthRequired) {
		return AuthRequired
	}
	return RequestFailed
}

// SummaryView fetches and holds the portfolio aggregate figures.
type SummaryView struct {
	State   ViewState
	Summary *Summary
	Err     error
	Kind    FailureKind
}

// Load runs the view's single fetch.
func (v *SummaryView) Load(ctx context.Context, c *Client) {
	v.State = Loading
	s, err := c.Summary(ctx)
	if err != nil {
		v.State, v.Err, v.Kind = Failed, err, classify(err)
		return
	}
	v.State, v.Summary, v.Err = Ready, s, nil
}

// HoldingsView fetches the user's positions, sorted descending by current
// market value. The sort is stable: ties keep the backend-returned order.
type HoldingsView struct {
	State    ViewState
	Holdings []Holding
	Err      error
	Kind     FailureKind
}

func (v *HoldingsView) Load(ctx context.Context, c *Client) {
	v.State = Loading
	holdings, err := c.Holdings(ctx)
	if err != nil {
		v.State, v.Err, v.Kind = Failed, err, classify(err)
		return
	}
	if len(holdings) == 0 {
		v.State, v.Holdings = Empty, nil
		return
	}
	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].CurrentValue > holdings[j].CurrentValue
	})
	v.State, v.Holdings, v.Err = Ready, holdings, nil
}

// maxRecentTransactions caps how many transactions the history view renders.
const maxRecentTransactions = 10

// TransactionsView fetches the transaction history, newest first as the
// backend returns it, and renders at most the ten most recent entries.
type TransactionsView struct {
	State ViewState
	// All transactions as fetched; Recent returns the displayed slice.
	Transactions []Transaction
	Err          error
	Kind         FailureKind
}

func (v *TransactionsView) Load(ctx context.Context, c *Client) {
	v.State = Loading
	txs, err := c.Transactions(ctx)
	if err != nil {
		v.State, v.Err, v.Kind = Failed, err, classify(err)
		return
	}
	if len(txs) == 0 {
		v.State, v.Transactions = Empty, nil
		return
	}
	v.State, v.Transactions, v.Err = Ready, txs, nil
}

// Recent returns the transactions to display, at most ten.
func (v *TransactionsView) Recent() []Transaction {
	if len(v.Transactions) <= maxRecentTransactions {
		return v.Transactions
	}
	return v.Transactions[:maxRecentTransactions]
}

// Omitted returns how many transactions are not displayed.
func (v *TransactionsView) Omitted() int {
	if n := len(v.Transactions) - maxRecentTransactions; n > 0 {
		return n
	}
	return 0
}

// HistoryView fetches the portfolio value time series for the chart.
// An empty series is Failed, not Empty: the chart's scaling has no meaning
// without at least one point.
type HistoryView struct {
	State  ViewState
	Points []HistoryPoint
	Err    error
	Kind   FailureKind
}

// errNoHistory is the failure an empty series maps to.
var errNoHistory = errors.New("no portfolio history available")

func (v *HistoryView) Load(ctx context.Context, c *Client) {
	v.State = Loading
	points, err := c.History(ctx)
	if err != nil {
		v.State, v.Err, v.Kind = Failed, err, classify(err)
		return
	}

	// Normalize through a chronological series: samples sort by day and a
	// duplicated day keeps the latest sample, whatever order the backend
	// returned them in.
	var series date.Series
	for _, p := range points {
		series.Append(p.Date, p.Value)
	}
	if series.Len() < 1 {
		v.State, v.Err, v.Kind = Failed, errNoHistory, RequestFailed
		return
	}
	sorted := make([]HistoryPoint, 0, series.Len())
	for on, value := range series.Values() {
		sorted = append(sorted, HistoryPoint{Date: on, Value: value})
	}
	v.State, v.Points, v.Err = Ready, sorted, nil
}

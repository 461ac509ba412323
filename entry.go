package cryptodash

import (
	"context"
	"errors"
	"strconv"

	"github.com/cryptodash/cryptodash/date"
	"github.com/shopspring/decimal"
)

// ErrValidation reports a submit attempt with a required field missing.
// No request is issued; recovery is fixing the input.
var ErrValidation = errors.New("asset, quantity, price and date are all required")

// ErrSubmitInFlight reports a submit attempt while one is already running.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

// EntryState is the lifecycle of the transaction entry workflow.
type EntryState int

const (
	EntryClosed EntryState = iota
	FetchingCatalog
	EntryReady
	Submitting
)

// EntryWorkflow manages the record-a-transaction flow: open, pick an asset
// and a date, look up the historical price, adjust by hand, submit.
//
// Lookups are best-effort and may overlap when the selection changes
// quickly; each carries a monotonically increasing token and only the most
// recently issued one may apply its result, so a stale response can never
// clobber a newer price.
type EntryWorkflow struct {
	client *Client
	prices *PriceProvider

	// OnSubmitted fires exactly once per successful submission, after the
	// workflow has closed. Dependent views re-fetch on it.
	OnSubmitted func()
	// OnAuthNeeded fires when opening fails for lack of a session, after
	// the workflow has closed itself.
	OnAuthNeeded func()

	state   EntryState
	catalog []Asset

	txType    TransactionType
	asset     *Asset
	quantity  string
	price     string
	on        date.Date
	priceNote string // set when the user must enter the price manually
	submitErr string // server-supplied message of the last failed submit

	lookupSeq uint64 // token of the most recently issued price lookup
}

// NewEntryWorkflow returns a closed workflow bound to the backend client
// and the historical price provider.
func NewEntryWorkflow(client *Client, prices *PriceProvider) *EntryWorkflow {
	return &EntryWorkflow{client: client, prices: prices, txType: Buy}
}

func (w *EntryWorkflow) State() EntryState  { return w.state }
func (w *EntryWorkflow) Catalog() []Asset   { return w.catalog }
func (w *EntryWorkflow) Selected() *Asset   { return w.asset }
func (w *EntryWorkflow) Quantity() string   { return w.quantity }
func (w *EntryWorkflow) Price() string      { return w.price }
func (w *EntryWorkflow) Date() date.Date    { return w.on }
func (w *EntryWorkflow) PriceNote() string  { return w.priceNote }
func (w *EntryWorkflow) SubmitError() string { return w.submitErr }

// Open starts the workflow: the date defaults to today when none is chosen
// yet, and the asset catalog is fetched. When the catalog fetch fails for
// lack of a session the workflow closes itself and signals the caller to
// prompt a login.
func (w *EntryWorkflow) Open(ctx context.Context) error {
	if w.state != EntryClosed {
		return nil
	}
	if w.on.IsZero() {
		w.on = date.Today()
	}
	w.state = FetchingCatalog
	catalog, err := w.client.Assets(ctx)
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			w.state = EntryClosed
			if w.OnAuthNeeded != nil {
				w.OnAuthNeeded()
			}
			return err
		}
		// Catalog unavailable: stay open, the user can still type.
		w.state = EntryReady
		return err
	}
	w.state = EntryReady
	w.catalog = catalog
	return nil
}

// Close dismisses the workflow, keeping the entered fields.
func (w *EntryWorkflow) Close() { w.state = EntryClosed }

// SetType picks buy or sell.
func (w *EntryWorkflow) SetType(t TransactionType) { w.txType = t }

// SelectAsset picks a catalog asset by symbol and, when a date is already
// chosen, looks up the historical price for it.
func (w *EntryWorkflow) SelectAsset(ctx context.Context, symbol string) error {
	for i := range w.catalog {
		if w.catalog[i].Symbol == symbol {
			w.asset = &w.catalog[i]
			w.lookupPrice(ctx)
			return nil
		}
	}
	return errors.New("unknown asset " + strconv.Quote(symbol))
}

// SetDate changes the transaction date and, when an asset is already
// selected, looks up the historical price for the new date.
func (w *EntryWorkflow) SetDate(ctx context.Context, on date.Date) {
	w.on = on
	w.lookupPrice(ctx)
}

// SetQuantity records the entered quantity verbatim; it is parsed on submit.
func (w *EntryWorkflow) SetQuantity(q string) { w.quantity = q }

// SetPrice records a manual price. The last edit wins, automatic or manual;
// there is no re-lock.
func (w *EntryWorkflow) SetPrice(p string) {
	w.price = p
	w.priceNote = ""
}

// lookupPrice runs a historical price lookup when both an asset and a date
// are present. The fetched price overwrites the field; on any failure the
// field is left untouched and the user is told to enter it manually.
func (w *EntryWorkflow) lookupPrice(ctx context.Context) {
	if w.asset == nil || w.on.IsZero() || w.prices == nil {
		return
	}
	token := w.beginLookup()
	price, err := w.prices.HistoricalPrice(ctx, w.asset.ProviderID, w.on)
	w.applyLookup(token, price, err)
}

// beginLookup issues a new lookup token, invalidating every earlier one.
func (w *EntryWorkflow) beginLookup() uint64 {
	w.lookupSeq++
	return w.lookupSeq
}

// applyLookup applies a lookup result unless a newer lookup was issued
// since, in which case the result is stale and discarded.
func (w *EntryWorkflow) applyLookup(token uint64, price float64, err error) {
	if token != w.lookupSeq {
		return
	}
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			w.priceNote = "Price provider rate limit exceeded. Please enter the price manually."
		} else {
			w.priceNote = "Could not fetch the historical price for this date. Please enter the price manually."
		}
		return
	}
	w.price = strconv.FormatFloat(price, 'f', -1, 64)
	w.priceNote = ""
}

// Submit validates the form and posts the transaction. On success the form
// resets, the workflow closes and OnSubmitted fires once; on failure the
// workflow stays open with the fields intact and the server message kept.
func (w *EntryWorkflow) Submit(ctx context.Context) error {
	if w.state == Submitting {
		return ErrSubmitInFlight
	}
	if w.asset == nil || w.quantity == "" || w.price == "" || w.on.IsZero() {
		return ErrValidation
	}
	quantity, err := decimal.NewFromString(w.quantity)
	if err != nil {
		return ErrValidation
	}
	price, err := ParseUSD(w.price)
	if err != nil {
		return ErrValidation
	}

	w.state = Submitting
	_, err = w.client.CreateTransaction(ctx, NewTransaction{
		CryptoID:     w.asset.ID,
		Quantity:     quantity.InexactFloat64(),
		PricePerUnit: price.Float64(),
		Type:         w.txType,
		Date:         w.on,
	})
	if err != nil {
		w.state = EntryReady
		var reqErr *RequestError
		if errors.As(err, &reqErr) && reqErr.Message != "" {
			w.submitErr = reqErr.Message
		} else {
			w.submitErr = err.Error()
		}
		return err
	}

	w.txType = Buy
	w.asset = nil
	w.quantity = ""
	w.price = ""
	w.on = date.Date{}
	w.priceNote = ""
	w.submitErr = ""
	w.state = EntryClosed
	if w.OnSubmitted != nil {
		w.OnSubmitted()
	}
	return nil
}

package cryptodash

import "context"

// RefreshSignal is an invalidation broadcast: dependent views subscribe a
// re-fetch function and the entry workflow fires the signal after a
// successful write. This replaces the source system's full page reload, so
// transient UI state (open modal, scroll) survives a refresh.
type RefreshSignal struct {
	subs []func()
}

// Subscribe registers fn to run on every invalidation.
func (s *RefreshSignal) Subscribe(fn func()) { s.subs = append(s.subs, fn) }

// Fire invalidates: every subscriber runs, in subscription order.
func (s *RefreshSignal) Fire() {
	for _, fn := range s.subs {
		fn()
	}
}

// Dashboard composes the views, the entry workflow and the transient shell
// state: the entry modal flag and the profile menu flag. Everything runs on
// one event loop; no locks.
type Dashboard struct {
	Sessions *Store
	Client   *Client

	Summary      SummaryView
	Holdings     HoldingsView
	Transactions TransactionsView
	History      HistoryView

	Entry   *EntryWorkflow
	Refresh RefreshSignal

	menuOpen bool
}

// NewDashboard wires the shell: the workflow's success signal re-fetches
// every dependent view, and an auth failure while opening the entry modal
// is surfaced through promptLogin.
func NewDashboard(sessions *Store, client *Client, prices *PriceProvider, promptLogin func()) *Dashboard {
	d := &Dashboard{Sessions: sessions, Client: client}
	d.Entry = NewEntryWorkflow(client, prices)
	d.Entry.OnAuthNeeded = promptLogin
	d.Entry.OnSubmitted = d.Refresh.Fire
	d.Refresh.Subscribe(func() { d.Reload(context.Background()) })
	return d
}

// Reload re-runs every view's fetch.
func (d *Dashboard) Reload(ctx context.Context) {
	d.Summary.Load(ctx, d.Client)
	d.Holdings.Load(ctx, d.Client)
	d.Transactions.Load(ctx, d.Client)
	d.History.Load(ctx, d.Client)
}

// User returns the signed-in user, or nil.
func (d *Dashboard) User() *User {
	sess := d.Sessions.Get()
	if sess == nil {
		return nil
	}
	return &sess.User
}

// ModalOpen reports whether the entry modal is showing.
func (d *Dashboard) ModalOpen() bool { return d.Entry.State() != EntryClosed }

// MenuOpen reports whether the profile menu is showing.
func (d *Dashboard) MenuOpen() bool { return d.menuOpen }

// ToggleMenu opens or closes the profile menu.
func (d *Dashboard) ToggleMenu() { d.menuOpen = !d.menuOpen }

// PointerDown handles a pointer interaction; any interaction outside the
// profile menu's region closes the menu.
func (d *Dashboard) PointerDown(insideMenu bool) {
	if !insideMenu {
		d.menuOpen = false
	}
}

// Logout clears the session and the menu.
func (d *Dashboard) Logout() error {
	d.menuOpen = false
	return d.Sessions.Clear()
}

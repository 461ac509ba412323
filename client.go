package cryptodash

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrAuthRequired reports that the operation needs a valid session: either
// no token is stored, or the backend rejected the one presented.
// Recovery is prompting the user to log in again.
var ErrAuthRequired = errors.New("authentication required")

// RequestError reports a failed backend request: a non-2xx status carrying
// the server-supplied message when one was parseable, or a transport
// failure, in which case Status is 0.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s", e.Message)
	}
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Status, e.Message)
}

// Client issues authenticated JSON requests against the backend origin.
// The session store is injected explicitly; there is no ambient session
// state. Requests are never retried and carry no client-side timeout.
type Client struct {
	baseURL  string
	http     *http.Client
	sessions *Store
}

// NewClient returns a client for the backend at baseURL using the given
// session store for bearer tokens.
func NewClient(baseURL string, sessions *Store) *Client {
	return &Client{baseURL: baseURL, http: new(http.Client), sessions: sessions}
}

// Assets lists the catalog from GET /cryptos/db. The token is attached when
// present but the catalog does not require one.
func (c *Client) Assets(ctx context.Context) ([]Asset, error) {
	var out []Asset
	if err := c.get(ctx, "/cryptos/db", false, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Holdings lists the user's positions from GET /portfolio.
func (c *Client) Holdings(ctx context.Context) ([]Holding, error) {
	var out []Holding
	if err := c.get(ctx, "/portfolio", true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Summary fetches the aggregate figures from GET /portfolio/summary.
func (c *Client) Summary(ctx context.Context) (*Summary, error) {
	var out Summary
	if err := c.get(ctx, "/portfolio/summary", true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// History fetches the portfolio value time series from GET /portfolio/history.
func (c *Client) History(ctx context.Context) ([]HistoryPoint, error) {
	var out []HistoryPoint
	if err := c.get(ctx, "/portfolio/history", true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Transactions lists the user's transactions from GET /transactions,
// newest first as the backend returns them.
func (c *Client) Transactions(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	if err := c.get(ctx, "/transactions", true, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// createTransactionResponse is the POST /transactions success body.
type createTransactionResponse struct {
	Message     string      `json:"message"`
	Transaction Transaction `json:"transaction"`
}

// CreateTransaction records a new buy or sell via POST /transactions and
// returns the created transaction as the backend echoes it.
func (c *Client) CreateTransaction(ctx context.Context, tx NewTransaction) (*Transaction, error) {
	var out createTransactionResponse
	if err := c.post(ctx, "/transactions", true, tx, &out); err != nil {
		return nil, err
	}
	return &out.Transaction, nil
}

// exchangeResponse is the POST /auth/google success body. The session is
// built from this response, not from client-side credential decoding.
type exchangeResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	User        struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// ExchangeCredential forwards an identity-provider credential to the backend
// exchange endpoint. No bearer token is attached.
func (c *Client) ExchangeCredential(ctx context.Context, credential string) (*exchangeResponse, error) {
	body := map[string]string{"credential": credential}
	var out exchangeResponse
	if err := c.post(ctx, "/auth/google", false, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, auth bool, out any) error {
	return c.do(ctx, http.MethodGet, path, auth, nil, out)
}

func (c *Client) post(ctx context.Context, path string, auth bool, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, auth, payload, out)
}

func (c *Client) do(ctx context.Context, method, path string, auth bool, body []byte, out any) error {
	token := ""
	if c.sessions != nil {
		token = c.sessions.Token()
	}
	if auth && token == "" {
		// Fail fast, the backend would reject it anyway.
		return ErrAuthRequired
	}

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrAuthRequired
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &RequestError{Status: resp.StatusCode, Message: serverMessage(resp.Body)}
	}
	if out == nil {
		return nil
	}
	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Message: err.Error()}
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return fmt.Errorf("cannot parse %s %s response: %w", method, path, err)
	}
	return nil
}

// serverMessage extracts the conventional {"message": ...} error body,
// or "" when the body has another shape.
func serverMessage(r io.Reader) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil {
		return ""
	}
	return body.Message
}

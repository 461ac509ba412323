package cryptodash

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"path/filepath"

	"github.com/PaesslerAG/jsonpath"
	"github.com/cryptodash/cryptodash/date"
)

// ErrRateLimited reports that the price provider throttled the request.
// Recovery is manual price entry; the surrounding workflow continues.
var ErrRateLimited = errors.New("price provider rate limit exceeded")

// ErrNoPrice reports that the provider answered but carried no USD price
// for the requested asset and date.
var ErrNoPrice = errors.New("no historical price for that date")

// usdPricePath locates the unit price in the provider's nested payload.
const usdPricePath = "$.market_data.current_price.usd"

// PriceProvider fetches historical unit prices from a CoinGecko-style API,
// keyed by the asset's external provider id and a day-first formatted date.
type PriceProvider struct {
	baseURL string
	client  *http.Client
}

// NewPriceProvider returns a provider for the API at baseURL. Responses are
// cached on disk with a daily expiry: a historical price is immutable, so
// repeat lookups within a day are served locally for free.
func NewPriceProvider(baseURL string) *PriceProvider {
	return &PriceProvider{baseURL: baseURL, client: daily()}
}

// HistoricalPrice returns the USD unit price of the asset identified by
// providerID on the given day.
func (p *PriceProvider) HistoricalPrice(ctx context.Context, providerID string, on date.Date) (float64, error) {
	addr := fmt.Sprintf("%s/coins/%s/history?date=%s",
		p.baseURL, url.PathEscape(providerID), on.ProviderString())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("cannot fetch price history for %q: %w", providerID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return 0, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("cannot fetch price history for %q: %s", providerID, resp.Status)
	}

	var jobj any
	if err := json.NewDecoder(resp.Body).Decode(&jobj); err != nil {
		return 0, fmt.Errorf("cannot parse price history for %q: %w", providerID, err)
	}

	jval, err := jsonpath.Get(usdPricePath, jobj)
	if err != nil {
		// The payload exists but has no price section for that day.
		return 0, ErrNoPrice
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, ErrNoPrice
	}
	return val, nil
}

// diskCache implements a simple disk cache for HTTP responses.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", date.Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns a client with a disk cache that expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

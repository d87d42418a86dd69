// Package exchangerate looks up the USD to JPY rate from a public JSON API.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type ratesResponse struct {
	Rates map[string]json.Number `json:"rates"`
}

// Quote is the rate in effect and where it came from.
type Quote struct {
	Rate      decimal.Decimal `json:"rate"`
	Fallback  bool            `json:"fallback"`
	FetchedAt time.Time       `json:"fetched_at"`
}

type Client struct {
	URL      string
	Target   string
	Fallback decimal.Decimal
	HTTP     *http.Client
	Log      *logrus.Entry

	mu   sync.RWMutex
	last Quote
}

func New(url string, fallback decimal.Decimal, log *logrus.Entry) *Client {
	return &Client{
		URL:      url,
		Target:   "JPY",
		Fallback: fallback,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
		Log:      log,
		last:     Quote{Rate: fallback, Fallback: true},
	}
}

// Refresh fetches a fresh rate. On any failure the last good rate is kept, or
// the fallback constant if there never was one.
func (c *Client) Refresh(ctx context.Context) Quote {
	rate, err := c.fetch(ctx)
	if err != nil {
		if c.Log != nil {
			c.Log.WithError(err).Warn("exchange rate lookup failed")
		}
		return c.Current()
	}
	q := Quote{Rate: rate, FetchedAt: time.Now().UTC()}
	c.mu.Lock()
	c.last = q
	c.mu.Unlock()
	return q
}

// Current returns the cached rate without I/O.
func (c *Client) Current() Quote {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.last
}

// Rate satisfies ports.RateSource.
func (c *Client) Rate() decimal.Decimal { return c.Current().Rate }

func (c *Client) fetch(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return decimal.Zero, fmt.Errorf("rates status %d", resp.StatusCode)
	}
	var body ratesResponse
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decode rates: %w", err)
	}
	raw, ok := body.Rates[c.Target]
	if !ok {
		return decimal.Zero, fmt.Errorf("rates missing %s", c.Target)
	}
	rate, err := decimal.NewFromString(raw.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s rate: %w", c.Target, err)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("non-positive %s rate %s", c.Target, rate)
	}
	return rate, nil
}

package catalog

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// RetryOpts configures fetch retries.
type RetryOpts struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
}

var DefaultRetry = RetryOpts{
	MaxAttempts: 3,
	InitialWait: 500 * time.Millisecond,
	MaxWait:     5 * time.Second,
}

// Fetcher downloads and parses the spreadsheet feed.
type Fetcher struct {
	URL     string
	Client  *http.Client
	Retry   RetryOpts
	Limiter *rate.Limiter
	Log     *logrus.Entry
}

func NewFetcher(url string, log *logrus.Entry) *Fetcher {
	return &Fetcher{
		URL:     url,
		Client:  &http.Client{Timeout: 20 * time.Second},
		Retry:   DefaultRetry,
		Limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
		Log:     log,
	}
}

// Fetch retries transient failures with exponential backoff. A feed that
// parses but is missing required columns is not retried.
func (f *Fetcher) Fetch(ctx context.Context) (ParseResult, error) {
	opts := f.Retry
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = 1
	}
	wait := opts.InitialWait
	var lastErr error
	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		res, retryable, err := f.fetchOnce(ctx)
		if err == nil {
			return res, nil
		}
		lastErr = err
		if !retryable || attempt == opts.MaxAttempts {
			break
		}
		if f.Log != nil {
			f.Log.WithError(err).WithField("attempt", attempt).Warn("catalog fetch failed, retrying")
		}
		sleep := time.Duration(float64(wait) * (0.5 + rand.Float64()))
		if sleep > opts.MaxWait {
			sleep = opts.MaxWait
		}
		select {
		case <-ctx.Done():
			return ParseResult{}, ctx.Err()
		case <-time.After(sleep):
		}
		wait *= 2
	}
	return ParseResult{}, lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context) (ParseResult, bool, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return ParseResult{}, false, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return ParseResult{}, false, err
	}
	req.Header.Set("Accept", "text/csv")
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return ParseResult{}, true, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
		return ParseResult{}, true, fmt.Errorf("fetch feed: status %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return ParseResult{}, false, fmt.Errorf("fetch feed: status %d", resp.StatusCode)
	}
	res, err := Parse(resp.Body)
	if err != nil {
		return ParseResult{}, false, err
	}
	return res, false, nil
}

// Refresh fetches the feed and swaps it into store. The previous snapshot
// keeps serving on failure.
func (f *Fetcher) Refresh(ctx context.Context, store *Store) error {
	res, err := f.Fetch(ctx)
	if err != nil {
		return err
	}
	store.Replace(res.Devices, time.Now().UTC())
	if f.Log != nil {
		f.Log.WithFields(logrus.Fields{"devices": len(res.Devices), "skipped": res.Skipped}).Info("catalog refreshed")
	}
	return nil
}

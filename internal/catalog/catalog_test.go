package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeup/internal/domain"
	"tradeup/internal/logging"
)

const sampleFeed = `OS,Brand,Model,Storage,Color,Condition,Price
iOS,Apple,iPhone 13,128GB,Midnight,Good,"$549.00"
iOS,Apple,iPhone 13,128GB,Midnight,Good,499
Android,Samsung,Galaxy S22,256GB,Phantom Black,Like New,"1,029.50"
Android,Google,Pixel 7,128GB,Snow,Fair,call us
iOS,Apple,,64GB,Red,Poor,120
Android,OnePlus,11,,Green,Good,-5
`

func TestParseSkipsUnpricedRows(t *testing.T) {
	res, err := Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)
	require.Len(t, res.Devices, 4)
	assert.Equal(t, 3, res.Skipped)

	first := res.Devices[0]
	assert.Equal(t, "iOS", first.OS)
	assert.Equal(t, "Apple", first.Brand)
	assert.Equal(t, "iPhone 13", first.Model)
	assert.Equal(t, "Good", first.Condition)
	assert.Equal(t, "549", first.Price.String())
	assert.Equal(t, "apple-iphone-13-128gb-midnight-good", first.Key())

	assert.Equal(t, "1029.5", res.Devices[2].Price.String())
}

func TestParseHeaderAliasesAndOrder(t *testing.T) {
	feed := "\ufeffPrice (USD),Make,Model,Grade\n300,Apple,iPad Air,Good\n"
	res, err := Parse(strings.NewReader(feed))
	require.NoError(t, err)
	require.Len(t, res.Devices, 1)
	assert.Equal(t, "Apple", res.Devices[0].Brand)
	assert.Equal(t, "Good", res.Devices[0].Condition)
	assert.Equal(t, "300", res.Devices[0].Price.String())
}

func TestParseMissingColumn(t *testing.T) {
	_, err := Parse(strings.NewReader("Brand,Model\nApple,iPhone\n"))
	require.ErrorIs(t, err, ErrMissingColumn)

	_, err = Parse(strings.NewReader(""))
	require.ErrorIs(t, err, ErrMissingColumn)
}

func TestParsePrice(t *testing.T) {
	for raw, want := range map[string]string{
		"$1,299.00": "1299",
		" 450 ":     "450",
		"US$80":     "80",
		"0":         "0",
	} {
		v, ok := ParsePrice(raw)
		require.True(t, ok, raw)
		assert.Equal(t, want, v.String(), raw)
	}
	for _, raw := range []string{"", "n/a", "-1", "$"} {
		_, ok := ParsePrice(raw)
		assert.False(t, ok, raw)
	}
}

func TestStoreReplaceDedupesAndCopies(t *testing.T) {
	res, err := Parse(strings.NewReader(sampleFeed))
	require.NoError(t, err)

	s := NewStore()
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.Replace(append(res.Devices, res.Devices[0]), at)

	all := s.All()
	require.Len(t, all, 3)
	all[0].Model = "mutated"

	got, ok := s.Get("apple-iphone-13-128gb-midnight-good")
	require.True(t, ok)
	assert.Equal(t, "iPhone 13", got.Model)
	assert.Equal(t, at, s.UpdatedAt())

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestFilter(t *testing.T) {
	devices := []domain.Device{
		{OS: "iOS", Brand: "Apple", Model: "iPhone 14", Condition: "Good"},
		{OS: "Android", Brand: "Samsung", Model: "Galaxy S23", Condition: "Fair"},
		{OS: "Android", Brand: "Google", Model: "Pixel 8", Condition: "Good"},
	}
	assert.Len(t, Apply(devices, Filter{OS: "android"}), 2)
	assert.Len(t, Apply(devices, Filter{Condition: "good"}), 2)
	assert.Len(t, Apply(devices, Filter{Brand: "apple", Query: "iphone"}), 1)
	assert.Len(t, Apply(devices, Filter{Query: "pixel 9"}), 0)
	assert.Len(t, Apply(devices, Filter{}), 3)
}

func newTestFetcher(url string) *Fetcher {
	f := NewFetcher(url, logging.Discard().WithComponent("catalog"))
	f.Limiter = nil
	f.Retry = RetryOpts{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond}
	return f
}

func TestFetcherRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	store := NewStore()
	require.NoError(t, newTestFetcher(srv.URL).Refresh(context.Background(), store))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Len(t, store.All(), 3)
	assert.False(t, store.UpdatedAt().IsZero())
}

func TestFetcherDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	store := NewStore()
	store.Replace([]domain.Device{{Brand: "Apple", Model: "iPhone 12"}}, time.Now())
	err := newTestFetcher(srv.URL).Refresh(context.Background(), store)
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Len(t, store.All(), 1, "previous snapshot keeps serving")
}

func TestFetcherHonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := newTestFetcher(srv.URL)
	f.Retry = RetryOpts{MaxAttempts: 5, InitialWait: time.Second, MaxWait: time.Second}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := f.Fetch(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}

package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeup/internal/logging"
)

func newClient(url string) *Client {
	return New(url, decimal.NewFromInt(158), logging.Discard().WithComponent("rates"))
}

func TestRefreshParsesRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result":"success","rates":{"USD":1,"JPY":157.23}}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	q := c.Refresh(context.Background())
	assert.False(t, q.Fallback)
	assert.Equal(t, "157.23", q.Rate.String())
	assert.Equal(t, "157.23", c.Rate().String())
	assert.False(t, q.FetchedAt.IsZero())
}

func TestRefreshFallsBack(t *testing.T) {
	cases := map[string]http.HandlerFunc{
		"server error": func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
		"bad json":     func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{`)) },
		"missing":      func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"rates":{"EUR":0.9}}`)) },
		"zero":         func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"rates":{"JPY":0}}`)) },
	}
	for name, h := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(h)
			defer srv.Close()

			q := newClient(srv.URL).Refresh(context.Background())
			assert.True(t, q.Fallback)
			assert.Equal(t, "158", q.Rate.String())
		})
	}
}

func TestRefreshKeepsLastGoodRate(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"rates":{"JPY":149.5}}`))
	}))
	defer srv.Close()

	c := newClient(srv.URL)
	require.Equal(t, "149.5", c.Refresh(context.Background()).Rate.String())
	fail.Store(true)
	q := c.Refresh(context.Background())
	assert.Equal(t, "149.5", q.Rate.String())
	assert.False(t, q.Fallback)
}

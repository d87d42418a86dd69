package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"tradeup/internal/adapters/exchangerate"
	"tradeup/internal/api"
	"tradeup/internal/catalog"
	"tradeup/internal/currency"
	"tradeup/internal/domain"
	"tradeup/internal/logging"
	"tradeup/internal/services/orders"
	"tradeup/internal/services/quotes"
	"tradeup/internal/session"
)

type devices []domain.Device

func (d devices) Devices(ctx context.Context) ([]domain.Device, error) { return d, nil }
func (d devices) Device(ctx context.Context, key string) (domain.Device, error) {
	for _, dev := range d {
		if dev.Key() == key {
			return dev, nil
		}
	}
	return domain.Device{}, domain.ErrDeviceNotFound
}

type fixedRate struct{}

func (fixedRate) Rate() decimal.Decimal { return decimal.NewFromInt(158) }

type rateReport struct{}

func (rateReport) Current() exchangerate.Quote {
	return exchangerate.Quote{Rate: decimal.RequireFromString("151.25"), FetchedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

var feedUpdated = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

type feedReport struct{}

func (feedReport) UpdatedAt() time.Time { return feedUpdated }

type downDB struct{}

func (downDB) Ping(ctx context.Context) error { return errors.New("connection refused") }

type stubOrders struct {
	submitErr error
	filter    domain.OrderFilter
	status    string
}

func (s *stubOrders) SubmitTradeIn(ctx context.Context, req orders.TradeInRequest) (orders.Submission, error) {
	if s.submitErr != nil {
		return orders.Submission{}, s.submitErr
	}
	return orders.Submission{Order: domain.Order{ID: "o-1", Kind: domain.OrderKindTradeIn}, MailtoLink: "mailto:x", Persisted: true}, nil
}

func (s *stubOrders) Checkout(ctx context.Context, sid string, c domain.Customer, cur string) ([]orders.Submission, error) {
	return []orders.Submission{{Order: domain.Order{ID: "p-1"}}}, nil
}

func (s *stubOrders) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	s.filter = f
	return nil, nil
}

func (s *stubOrders) Get(ctx context.Context, id string) (domain.Order, error) {
	return domain.Order{}, domain.ErrNotFound
}

func (s *stubOrders) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	s.status = status
	return domain.Order{}, domain.ErrInvalidTransition
}

func (s *stubOrders) Delete(ctx context.Context, id string) error { return nil }

type stubReferrals struct{}

func (stubReferrals) List(ctx context.Context, limit, offset int) ([]domain.ReferralCode, error) {
	return []domain.ReferralCode{{Code: "A"}}, nil
}
func (stubReferrals) Get(ctx context.Context, id string) (domain.ReferralCode, error) {
	return domain.ReferralCode{}, domain.ErrNotFound
}
func (stubReferrals) Create(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error) {
	return domain.ReferralCode{}, domain.ErrConflict
}
func (stubReferrals) Update(ctx context.Context, id string, r domain.ReferralCode) (domain.ReferralCode, error) {
	return r, nil
}
func (stubReferrals) Delete(ctx context.Context, id string) error { return nil }

type stubInventory struct{}

func (stubInventory) List(ctx context.Context, limit, offset int) ([]domain.Device, error) {
	return nil, domain.ErrUnavailable
}
func (stubInventory) Get(ctx context.Context, id string) (domain.Device, error) {
	return domain.Device{}, domain.ErrInvalidInput
}
func (stubInventory) Create(ctx context.Context, d domain.Device) (domain.Device, error) {
	d.ID = "d-1"
	return d, nil
}
func (stubInventory) Update(ctx context.Context, id string, d domain.Device) (domain.Device, error) {
	return d, nil
}
func (stubInventory) Delete(ctx context.Context, id string) error { return nil }

var (
	oldPhone = domain.Device{OS: "iOS", Brand: "Apple", Model: "iPhone 12", Storage: "128GB", Color: "Black", Condition: "Good", Price: decimal.NewFromInt(1000)}
	newPhone = domain.Device{OS: "iOS", Brand: "Apple", Model: "iPhone 15", Storage: "256GB", Color: "Blue", Condition: "Like New", Price: decimal.NewFromInt(950)}
	pixel    = domain.Device{OS: "Android", Brand: "Google", Model: "Pixel 8", Storage: "128GB", Color: "Obsidian", Condition: "Fair", Price: decimal.NewFromInt(400)}
)

type harness struct {
	handler http.Handler
	orders  *stubOrders
	limiter *rate.Limiter
}

func newHarness(t *testing.T, limiter *rate.Limiter) harness {
	t.Helper()
	src := devices{oldPhone, newPhone, pixel}
	o := &stubOrders{}
	srv := New(Deps{
		Catalog:        src,
		Quotes:         quotes.New(src, fixedRate{}, nil),
		Orders:         o,
		Inventory:      stubInventory{},
		Referrals:      stubReferrals{},
		Sessions:       session.NewMemoryStore(time.Hour),
		Rates:          rateReport{},
		Feed:           feedReport{},
		Log:            logging.Discard().WithComponent("http"),
		AdminToken:     "s3cret",
		AdminJWTSecret: jwtSecret,
		Limiter:        limiter,
	})
	return harness{handler: srv.Routes(), orders: o, limiter: limiter}
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *errorBody      `json:"error"`
}

func (h harness) do(t *testing.T, method, path string, body any, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.handler.ServeHTTP(rec, req)
	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

const jwtSecret = "jwt-signing-key"

func admin() []string { return []string{"Authorization", "Bearer s3cret"} }

func signAdmin(t *testing.T, method jwt.SigningMethod, key any, role string, exp time.Time) string {
	t.Helper()
	claims := adminClaims{Role: role}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return raw
}

func TestHealthz(t *testing.T) {
	rec, env := newHarness(t, nil).do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestCatalogListAndFilter(t *testing.T) {
	h := newHarness(t, nil)
	rec, env := h.do(t, http.MethodGet, "/v1/catalog?os=ios&q=iphone%2015", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Items []catalog.Item `json:"items"`
		Count int            `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Equal(t, 1, out.Count)
	assert.Equal(t, newPhone.Key(), out.Items[0].Key)
	assert.Equal(t, "iPhone 15", out.Items[0].Model)
}

func TestCatalogUnknownKey(t *testing.T) {
	rec, env := newHarness(t, nil).do(t, http.MethodGet, "/v1/catalog/nope", nil, "X-Request-Id", "req-42")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "device_not_found", env.Error.Code)
	assert.Equal(t, "req-42", env.Error.RequestID)
}

func TestFaultsAndRates(t *testing.T) {
	h := newHarness(t, nil)
	_, env := h.do(t, http.MethodGet, "/v1/faults", nil)
	var faults struct {
		Items []struct {
			ID   string `json:"id"`
			Rate string `json:"rate"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &faults))
	assert.Len(t, faults.Items, 8)

	_, env = h.do(t, http.MethodGet, "/v1/rates", nil)
	var rates api.Rates
	require.NoError(t, json.Unmarshal(env.Data, &rates))
	assert.Equal(t, "151.25", rates.Rate.String())
	assert.False(t, rates.Fallback)
	require.NotNil(t, rates.FetchedAt)
	require.NotNil(t, rates.CatalogUpdatedAt)
	assert.True(t, feedUpdated.Equal(*rates.CatalogUpdatedAt))
	assert.Equal(t, []api.Currency{currency.USD, currency.JPY}, rates.Currencies)
}

func TestCreateQuote(t *testing.T) {
	h := newHarness(t, nil)
	rec, env := h.do(t, http.MethodPost, "/v1/quotes", quotes.Input{
		DeviceKey:  oldPhone.Key(),
		Faults:     []string{"cracked-screen"},
		UpgradeKey: newPhone.Key(),
		Currency:   "JPY",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var q quotes.Quote
	require.NoError(t, json.Unmarshal(env.Data, &q))
	assert.Equal(t, "485", q.Breakdown.TotalDue.String())
	require.NotNil(t, q.Display.TotalDue)
	assert.Equal(t, "¥76,630", q.Display.TotalDue.Formatted)

	rec, env = h.do(t, http.MethodPost, "/v1/quotes", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", env.Error.Code)

	rec, _ = h.do(t, http.MethodPost, "/v1/quotes", quotes.Input{DeviceKey: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitRequest(t *testing.T) {
	h := newHarness(t, nil)
	rec, env := h.do(t, http.MethodPost, "/v1/requests", orders.TradeInRequest{})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(env.Data), `"mailto_link":"mailto:x"`)

	h.orders.submitErr = domain.ErrReferralInvalid
	rec, env = h.do(t, http.MethodPost, "/v1/requests", orders.TradeInRequest{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "referral_invalid", env.Error.Code)
}

func TestSessionCartFlow(t *testing.T) {
	h := newHarness(t, nil)

	rec, _ := h.do(t, http.MethodPost, "/v1/sessions/abc/cart", api.AddToCartJSONRequestBody{Device: newPhone.Key(), Quantity: qty(2)})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = h.do(t, http.MethodPost, "/v1/sessions/abc/cart", api.AddToCartJSONRequestBody{Device: "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = h.do(t, http.MethodPost, "/v1/sessions/abc/viewed", api.RecordViewedJSONRequestBody{Device: pixel.Key()})
	require.Equal(t, http.StatusOK, rec.Code)

	_, env := h.do(t, http.MethodGet, "/v1/sessions/abc", nil)
	var view session.View
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "abc", view.ID)
	require.Len(t, view.Cart, 1)
	assert.Equal(t, 2, view.Cart[0].Quantity)
	assert.Equal(t, []string{pixel.Key()}, view.RecentlyViewed)

	rec, _ = h.do(t, http.MethodDelete, "/v1/sessions/abc/cart/"+newPhone.Key(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = h.do(t, http.MethodDelete, "/v1/sessions/abc/cart/"+newPhone.Key(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	usd := currency.USD
	rec, env = h.do(t, http.MethodPost, "/v1/sessions/abc/checkout", api.CheckoutJSONRequestBody{Currency: &usd})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"items":[`)
}

func qty(n int) *int { return &n }

func TestAddToCartBoundsQuantity(t *testing.T) {
	h := newHarness(t, nil)
	for _, n := range []int{0, -1, session.MaxQuantity + 1, 1 << 40} {
		rec, env := h.do(t, http.MethodPost, "/v1/sessions/abc/cart", api.AddToCartJSONRequestBody{Device: newPhone.Key(), Quantity: qty(n)})
		assert.Equal(t, http.StatusBadRequest, rec.Code, n)
		require.NotNil(t, env.Error)
		assert.Equal(t, "invalid_input", env.Error.Code)
	}

	rec, _ := h.do(t, http.MethodPost, "/v1/sessions/abc/cart", api.AddToCartJSONRequestBody{Device: newPhone.Key(), Quantity: qty(session.MaxQuantity)})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, env := h.do(t, http.MethodPost, "/v1/sessions/abc/cart", api.AddToCartJSONRequestBody{Device: newPhone.Key(), Quantity: qty(session.MaxQuantity)})
	require.Equal(t, http.StatusOK, rec.Code)
	var view session.View
	require.NoError(t, json.Unmarshal(env.Data, &view))
	require.Len(t, view.Cart, 1)
	assert.Equal(t, session.MaxQuantity, view.Cart[0].Quantity)
}

func TestReadyz(t *testing.T) {
	rec, env := newHarness(t, nil).do(t, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, string(env.Data))

	down := New(Deps{DB: downDB{}, Log: logging.Discard().WithComponent("http")}).Routes()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	req.Header.Set("X-Request-Id", "ready-1")
	w := httptest.NewRecorder()
	down.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var out envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotNil(t, out.Error)
	assert.Equal(t, "unavailable", out.Error.Code)
	assert.Equal(t, "ready-1", out.Error.RequestID)
}

func TestUnmatchedRoutesUseEnvelope(t *testing.T) {
	h := newHarness(t, nil)
	rec, env := h.do(t, http.MethodGet, "/v1/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", env.Error.Code)

	rec, env = h.do(t, http.MethodPut, "/v1/catalog", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "method_not_allowed", env.Error.Code)
}

func TestThrottle(t *testing.T) {
	h := newHarness(t, rate.NewLimiter(0, 1))
	rec, _ := h.do(t, http.MethodPost, "/v1/quotes", quotes.Input{DeviceKey: oldPhone.Key()})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, env := h.do(t, http.MethodPost, "/v1/quotes", quotes.Input{DeviceKey: oldPhone.Key()})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", env.Error.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	rec, _ = h.do(t, http.MethodGet, "/v1/catalog", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth(t *testing.T) {
	h := newHarness(t, nil)
	rec, _ := h.do(t, http.MethodGet, "/v1/admin/referrals", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = h.do(t, http.MethodGet, "/v1/admin/referrals", nil, "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = h.do(t, http.MethodGet, "/v1/admin/referrals", nil, "Authorization", "s3cret")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = h.do(t, http.MethodGet, "/v1/admin/referrals", nil, admin()...)
	assert.Equal(t, http.StatusOK, rec.Code)

	open := New(Deps{Referrals: stubReferrals{}, Log: logging.Discard().WithComponent("http")}).Routes()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/referrals", nil)
	req.Header.Set("Authorization", "Bearer ")
	w := httptest.NewRecorder()
	open.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminJWT(t *testing.T) {
	h := newHarness(t, nil)
	hour := time.Now().Add(time.Hour)
	cases := []struct {
		name  string
		token string
		want  int
	}{
		{"valid", signAdmin(t, jwt.SigningMethodHS256, []byte(jwtSecret), "admin", hour), http.StatusOK},
		{"wrong role", signAdmin(t, jwt.SigningMethodHS256, []byte(jwtSecret), "viewer", hour), http.StatusUnauthorized},
		{"wrong key", signAdmin(t, jwt.SigningMethodHS256, []byte("other"), "admin", hour), http.StatusUnauthorized},
		{"expired", signAdmin(t, jwt.SigningMethodHS256, []byte(jwtSecret), "admin", time.Now().Add(-time.Hour)), http.StatusUnauthorized},
		{"no expiry", signAdmin(t, jwt.SigningMethodHS256, []byte(jwtSecret), "admin", time.Time{}), http.StatusUnauthorized},
		{"alg none", signAdmin(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, "admin", hour), http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := h.do(t, http.MethodGet, "/v1/admin/referrals", nil, "Authorization", "Bearer "+tc.token)
			assert.Equal(t, tc.want, rec.Code)
		})
	}

	noSecret := New(Deps{Referrals: stubReferrals{}, AdminToken: "s3cret", Log: logging.Discard().WithComponent("http")}).Routes()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/referrals", nil)
	req.Header.Set("Authorization", "Bearer "+cases[0].token)
	w := httptest.NewRecorder()
	noSecret.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOrders(t *testing.T) {
	h := newHarness(t, nil)
	rec, env := h.do(t, http.MethodGet, "/v1/admin/orders?status=Received&kind=purchase&limit=20&offset=40", nil, admin()...)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[],"count":0}`, string(env.Data))
	assert.Equal(t, domain.OrderFilter{Status: domain.OrderStatusReceived, Kind: domain.OrderKindPurchase, Limit: 20, Offset: 40}, h.orders.filter)

	for _, q := range []string{"limit=abc", "offset=-1", "status=shipped", "kind=rental"} {
		rec, _ = h.do(t, http.MethodGet, "/v1/admin/orders?"+q, nil, admin()...)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}

	rec, env = h.do(t, http.MethodPatch, "/v1/admin/orders/x/status", api.AdminUpdateOrderStatusJSONRequestBody{Status: domain.OrderStatusCompleted}, admin()...)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_transition", env.Error.Code)
	assert.Equal(t, "completed", h.orders.status)

	rec, _ = h.do(t, http.MethodDelete, "/v1/admin/orders/x", nil, admin()...)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAdminDevicesAndReferrals(t *testing.T) {
	h := newHarness(t, nil)
	rec, env := h.do(t, http.MethodGet, "/v1/admin/devices", nil, admin()...)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unavailable", env.Error.Code)

	rec, env = h.do(t, http.MethodPost, "/v1/admin/devices", `{"brand":"Apple","model":"iPhone 13","price":"499.90"}`, admin()...)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created catalog.Item
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "d-1", created.ID)
	assert.Equal(t, "apple-iphone-13", created.Key)
	assert.Equal(t, "499.9", created.Price.String())

	rec, env = h.do(t, http.MethodPost, "/v1/admin/referrals", domain.ReferralCode{Code: "DUP"}, admin()...)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "conflict", env.Error.Code)

	rec, _ = h.do(t, http.MethodGet, "/v1/admin/referrals/x", nil, admin()...)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	h := newHarness(t, nil)
	h.orders.submitErr = assert.AnError
	rec, env := h.do(t, http.MethodPost, "/v1/requests", orders.TradeInRequest{})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", env.Error.Message)
}

package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"tradeup/internal/adapters/exchangerate"
	"tradeup/internal/api"
	"tradeup/internal/domain"
	"tradeup/internal/ports"
	"tradeup/internal/services/orders"
	"tradeup/internal/services/quotes"
	"tradeup/internal/session"
	"tradeup/internal/valuation"
)

type Quoter interface {
	Quote(ctx context.Context, in quotes.Input) (quotes.Quote, error)
	Faults() []valuation.Fault
	Rate() decimal.Decimal
}

type Orders interface {
	SubmitTradeIn(ctx context.Context, req orders.TradeInRequest) (orders.Submission, error)
	Checkout(ctx context.Context, sessionID string, cust domain.Customer, currency string) ([]orders.Submission, error)
	List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type Inventory interface {
	List(ctx context.Context, limit, offset int) ([]domain.Device, error)
	Get(ctx context.Context, id string) (domain.Device, error)
	Create(ctx context.Context, d domain.Device) (domain.Device, error)
	Update(ctx context.Context, id string, d domain.Device) (domain.Device, error)
	Delete(ctx context.Context, id string) error
}

type Referrals interface {
	List(ctx context.Context, limit, offset int) ([]domain.ReferralCode, error)
	Get(ctx context.Context, id string) (domain.ReferralCode, error)
	Create(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error)
	Update(ctx context.Context, id string, r domain.ReferralCode) (domain.ReferralCode, error)
	Delete(ctx context.Context, id string) error
}

// RateReporter exposes the state of the exchange rate lookup.
type RateReporter interface {
	Current() exchangerate.Quote
}

// FeedReporter exposes when the catalog feed snapshot was last replaced.
type FeedReporter interface {
	UpdatedAt() time.Time
}

// Pinger reports backing store health for /readyz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Catalog    ports.DeviceSource
	Quotes     Quoter
	Orders     Orders
	Inventory  Inventory
	Referrals  Referrals
	Sessions   session.Store
	Rates      RateReporter
	Feed       FeedReporter
	DB         Pinger
	Log        *logrus.Entry
	AdminToken string
	// AdminJWTSecret verifies HS256 admin bearer tokens; empty disables JWTs.
	AdminJWTSecret string
	// Limiter throttles public write endpoints; nil disables throttling.
	Limiter *rate.Limiter
}

// Server implements the generated StrictServerInterface.
type Server struct {
	Deps
	log *logrus.Entry
}

var _ api.StrictServerInterface = (*Server)(nil)

func New(deps Deps) *Server {
	log := deps.Log
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Server{Deps: deps, log: log}
}

// throttled lists the public write operations sharing the rate limiter.
var throttled = []string{"CreateQuote", "SubmitTradeIn", "AddToCart", "RecordViewed", "Checkout"}

// Routes mounts the generated strict handlers on a chi router carrying the
// request-scoped middleware and the envelope for unmatched routes.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, echoRequestID, middleware.RealIP, loggingMiddleware(s.log), recoverMiddleware(s.log), limitBody(maxBodyBytes))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	handler := api.NewStrictHandlerWithOptions(s, []api.StrictMiddlewareFunc{throttle(s.Limiter, throttled...)}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  invalidBody,
		ResponseErrorHandlerFunc: s.fail,
	})
	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{adminAuth(s.AdminToken, []byte(s.AdminJWTSecret), s.log)},
		ErrorHandlerFunc: invalidParam,
	})
	return r
}

func (s *Server) GetHealthz(ctx context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	return api.GetHealthz200JSONResponse{Data: api.Status{Status: "ok"}}, nil
}

func (s *Server) GetReadyz(ctx context.Context, _ api.GetReadyzRequestObject) (api.GetReadyzResponseObject, error) {
	if s.DB != nil {
		if err := s.DB.Ping(ctx); err != nil {
			s.log.WithError(err).Warn("readiness check failed")
			return api.GetReadyzdefaultJSONResponse{
				StatusCode: http.StatusServiceUnavailable,
				Body:       errorEnvelope(ctx, "unavailable", "database unreachable"),
			}, nil
		}
	}
	return api.GetReadyz200JSONResponse{Data: api.Status{Status: "ready"}}, nil
}

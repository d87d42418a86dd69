package httpadapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"tradeup/internal/api"
	"tradeup/internal/catalog"
	"tradeup/internal/currency"
	"tradeup/internal/domain"
	"tradeup/internal/session"
)

func (s *Server) ListCatalog(ctx context.Context, req api.ListCatalogRequestObject) (api.ListCatalogResponseObject, error) {
	all, err := s.Catalog.Devices(ctx)
	if err != nil {
		return nil, err
	}
	p := req.Params
	matched := catalog.Apply(all, catalog.Filter{
		OS:        deref(p.Os),
		Brand:     deref(p.Brand),
		Condition: deref(p.Condition),
		Query:     deref(p.Q),
	})
	items := make([]api.CatalogItem, 0, len(matched))
	for _, d := range matched {
		items = append(items, catalog.NewItem(d))
	}
	return api.ListCatalog200JSONResponse{Data: api.CatalogList{Items: items, Count: len(items)}}, nil
}

func (s *Server) GetCatalogDevice(ctx context.Context, req api.GetCatalogDeviceRequestObject) (api.GetCatalogDeviceResponseObject, error) {
	d, err := s.Catalog.Device(ctx, req.Key)
	if err != nil {
		return nil, err
	}
	return api.GetCatalogDevice200JSONResponse{Data: catalog.NewItem(d)}, nil
}

func (s *Server) ListFaults(ctx context.Context, _ api.ListFaultsRequestObject) (api.ListFaultsResponseObject, error) {
	return api.ListFaults200JSONResponse{Data: api.FaultList{Items: s.Quotes.Faults()}}, nil
}

func (s *Server) GetRates(ctx context.Context, _ api.GetRatesRequestObject) (api.GetRatesResponseObject, error) {
	resp := api.Rates{
		Base:       currency.Base,
		Currencies: []api.Currency{currency.USD, currency.JPY},
		Rate:       s.Quotes.Rate(),
		Fallback:   true,
	}
	if s.Rates != nil {
		cur := s.Rates.Current()
		resp.Rate, resp.Fallback = cur.Rate, cur.Fallback
		if !cur.FetchedAt.IsZero() {
			at := cur.FetchedAt
			resp.FetchedAt = &at
		}
	}
	if s.Feed != nil {
		if at := s.Feed.UpdatedAt(); !at.IsZero() {
			resp.CatalogUpdatedAt = &at
		}
	}
	return api.GetRates200JSONResponse{Data: resp}, nil
}

func (s *Server) CreateQuote(ctx context.Context, req api.CreateQuoteRequestObject) (api.CreateQuoteResponseObject, error) {
	q, err := s.Quotes.Quote(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.CreateQuote200JSONResponse{Data: q}, nil
}

func (s *Server) SubmitTradeIn(ctx context.Context, req api.SubmitTradeInRequestObject) (api.SubmitTradeInResponseObject, error) {
	sub, err := s.Orders.SubmitTradeIn(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	if sub.Persisted {
		return api.SubmitTradeIn201JSONResponse{Data: sub}, nil
	}
	return api.SubmitTradeIn200JSONResponse{Data: sub}, nil
}

// sessionID trims and bounds the path id and checks a store is configured.
func (s *Server) sessionID(raw string) (string, error) {
	sid := strings.TrimSpace(raw)
	if sid == "" || len(sid) > 128 {
		return "", fmt.Errorf("%w: invalid session id", domain.ErrInvalidInput)
	}
	if s.Sessions == nil {
		return "", domain.ErrUnavailable
	}
	return sid, nil
}

func (s *Server) GetSession(ctx context.Context, req api.GetSessionRequestObject) (api.GetSessionResponseObject, error) {
	sid, err := s.sessionID(req.Sid)
	if err != nil {
		return nil, err
	}
	st, err := s.Sessions.Get(ctx, sid)
	if err != nil {
		return nil, err
	}
	return api.GetSession200JSONResponse{Data: session.View{ID: sid, State: st}}, nil
}

func (s *Server) AddToCart(ctx context.Context, req api.AddToCartRequestObject) (api.AddToCartResponseObject, error) {
	sid, err := s.sessionID(req.Sid)
	if err != nil {
		return nil, err
	}
	qty := 1
	if req.Body.Quantity != nil {
		qty = *req.Body.Quantity
		if qty < 1 || qty > session.MaxQuantity {
			return nil, fmt.Errorf("%w: quantity must be between 1 and %d", domain.ErrInvalidInput, session.MaxQuantity)
		}
	}
	d, err := s.Catalog.Device(ctx, strings.TrimSpace(req.Body.Device))
	if err != nil {
		return nil, err
	}
	st, err := s.Sessions.Update(ctx, sid, func(st *session.State) { st.AddToCart(d.Key(), qty) })
	if err != nil {
		return nil, err
	}
	return api.AddToCart200JSONResponse{Data: session.View{ID: sid, State: st}}, nil
}

func (s *Server) RemoveFromCart(ctx context.Context, req api.RemoveFromCartRequestObject) (api.RemoveFromCartResponseObject, error) {
	sid, err := s.sessionID(req.Sid)
	if err != nil {
		return nil, err
	}
	removed := false
	st, err := s.Sessions.Update(ctx, sid, func(st *session.State) { removed = st.RemoveFromCart(req.Key) })
	if err != nil {
		return nil, err
	}
	if !removed {
		return api.RemoveFromCartdefaultJSONResponse{
			StatusCode: http.StatusNotFound,
			Body:       errorEnvelope(ctx, "not_found", "device not in cart"),
		}, nil
	}
	return api.RemoveFromCart200JSONResponse{Data: session.View{ID: sid, State: st}}, nil
}

func (s *Server) RecordViewed(ctx context.Context, req api.RecordViewedRequestObject) (api.RecordViewedResponseObject, error) {
	sid, err := s.sessionID(req.Sid)
	if err != nil {
		return nil, err
	}
	d, err := s.Catalog.Device(ctx, strings.TrimSpace(req.Body.Device))
	if err != nil {
		return nil, err
	}
	st, err := s.Sessions.Update(ctx, sid, func(st *session.State) { st.Viewed(d.Key()) })
	if err != nil {
		return nil, err
	}
	return api.RecordViewed200JSONResponse{Data: session.View{ID: sid, State: st}}, nil
}

func (s *Server) Checkout(ctx context.Context, req api.CheckoutRequestObject) (api.CheckoutResponseObject, error) {
	sid, err := s.sessionID(req.Sid)
	if err != nil {
		return nil, err
	}
	subs, err := s.Orders.Checkout(ctx, sid, req.Body.Customer, string(deref(req.Body.Currency)))
	if err != nil {
		return nil, err
	}
	data := api.SubmissionList{Items: orEmpty(subs)}
	if len(subs) > 0 && subs[0].Persisted {
		return api.Checkout201JSONResponse{Data: data}, nil
	}
	return api.Checkout200JSONResponse{Data: data}, nil
}

package httpadapter

import (
	"context"
	"fmt"

	"tradeup/internal/api"
	"tradeup/internal/catalog"
	"tradeup/internal/domain"
)

// page validates the optional limit and offset; the repositories apply
// defaults and the upper bound.
func page(limit, offset *int) (int, int, error) {
	l, o := deref(limit), deref(offset)
	if l < 0 || o < 0 {
		return 0, 0, fmt.Errorf("%w: limit and offset must not be negative", domain.ErrInvalidInput)
	}
	return l, o, nil
}

// devices

func (s *Server) AdminListDevices(ctx context.Context, req api.AdminListDevicesRequestObject) (api.AdminListDevicesResponseObject, error) {
	limit, offset, err := page(req.Params.Limit, req.Params.Offset)
	if err != nil {
		return nil, err
	}
	rows, err := s.Inventory.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return api.AdminListDevices200JSONResponse{Data: api.DeviceList{Items: orEmpty(rows), Count: len(rows)}}, nil
}

func (s *Server) AdminGetDevice(ctx context.Context, req api.AdminGetDeviceRequestObject) (api.AdminGetDeviceResponseObject, error) {
	d, err := s.Inventory.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.AdminGetDevice200JSONResponse{Data: catalog.NewItem(d)}, nil
}

func (s *Server) AdminCreateDevice(ctx context.Context, req api.AdminCreateDeviceRequestObject) (api.AdminCreateDeviceResponseObject, error) {
	out, err := s.Inventory.Create(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.AdminCreateDevice201JSONResponse{Data: catalog.NewItem(out)}, nil
}

func (s *Server) AdminUpdateDevice(ctx context.Context, req api.AdminUpdateDeviceRequestObject) (api.AdminUpdateDeviceResponseObject, error) {
	out, err := s.Inventory.Update(ctx, req.Id, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.AdminUpdateDevice200JSONResponse{Data: catalog.NewItem(out)}, nil
}

func (s *Server) AdminDeleteDevice(ctx context.Context, req api.AdminDeleteDeviceRequestObject) (api.AdminDeleteDeviceResponseObject, error) {
	if err := s.Inventory.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return api.AdminDeleteDevice204Response{}, nil
}

// orders

func (s *Server) AdminListOrders(ctx context.Context, req api.AdminListOrdersRequestObject) (api.AdminListOrdersResponseObject, error) {
	p := req.Params
	limit, offset, err := page(p.Limit, p.Offset)
	if err != nil {
		return nil, err
	}
	f := domain.OrderFilter{Limit: limit, Offset: offset}
	if raw := deref(p.Status); raw != "" {
		st, ok := domain.ParseOrderStatus(string(raw))
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, raw)
		}
		f.Status = st
	}
	switch kind := deref(p.Kind); kind {
	case "":
	case domain.OrderKindTradeIn, domain.OrderKindPurchase:
		f.Kind = kind
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidInput, kind)
	}

	rows, err := s.Orders.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return api.AdminListOrders200JSONResponse{Data: api.OrderList{Items: orEmpty(rows), Count: len(rows)}}, nil
}

func (s *Server) AdminGetOrder(ctx context.Context, req api.AdminGetOrderRequestObject) (api.AdminGetOrderResponseObject, error) {
	o, err := s.Orders.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.AdminGetOrder200JSONResponse{Data: o}, nil
}

func (s *Server) AdminUpdateOrderStatus(ctx context.Context, req api.AdminUpdateOrderStatusRequestObject) (api.AdminUpdateOrderStatusResponseObject, error) {
	o, err := s.Orders.UpdateStatus(ctx, req.Id, string(req.Body.Status))
	if err != nil {
		return nil, err
	}
	return api.AdminUpdateOrderStatus200JSONResponse{Data: o}, nil
}

func (s *Server) AdminDeleteOrder(ctx context.Context, req api.AdminDeleteOrderRequestObject) (api.AdminDeleteOrderResponseObject, error) {
	if err := s.Orders.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return api.AdminDeleteOrder204Response{}, nil
}

// referrals

func (s *Server) AdminListReferrals(ctx context.Context, req api.AdminListReferralsRequestObject) (api.AdminListReferralsResponseObject, error) {
	limit, offset, err := page(req.Params.Limit, req.Params.Offset)
	if err != nil {
		return nil, err
	}
	rows, err := s.Referrals.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return api.AdminListReferrals200JSONResponse{Data: api.ReferralList{Items: orEmpty(rows), Count: len(rows)}}, nil
}

func (s *Server) AdminGetReferral(ctx context.Context, req api.AdminGetReferralRequestObject) (api.AdminGetReferralResponseObject, error) {
	ref, err := s.Referrals.Get(ctx, req.Id)
	if err != nil {
		return nil, err
	}
	return api.AdminGetReferral200JSONResponse{Data: ref}, nil
}

func (s *Server) AdminCreateReferral(ctx context.Context, req api.AdminCreateReferralRequestObject) (api.AdminCreateReferralResponseObject, error) {
	out, err := s.Referrals.Create(ctx, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.AdminCreateReferral201JSONResponse{Data: out}, nil
}

func (s *Server) AdminUpdateReferral(ctx context.Context, req api.AdminUpdateReferralRequestObject) (api.AdminUpdateReferralResponseObject, error) {
	out, err := s.Referrals.Update(ctx, req.Id, *req.Body)
	if err != nil {
		return nil, err
	}
	return api.AdminUpdateReferral200JSONResponse{Data: out}, nil
}

func (s *Server) AdminDeleteReferral(ctx context.Context, req api.AdminDeleteReferralRequestObject) (api.AdminDeleteReferralResponseObject, error) {
	if err := s.Referrals.Delete(ctx, req.Id); err != nil {
		return nil, err
	}
	return api.AdminDeleteReferral204Response{}, nil
}

package ports

import (
	"context"

	"tradeup/internal/domain"
)

// DeviceRepository stores store-owned inventory devices.
type DeviceRepository interface {
	ListDevices(ctx context.Context, limit, offset int) ([]domain.Device, error)
	GetDevice(ctx context.Context, id string) (domain.Device, error)
	CreateDevice(ctx context.Context, d domain.Device) (domain.Device, error)
	UpdateDevice(ctx context.Context, d domain.Device) (domain.Device, error)
	DeleteDevice(ctx context.Context, id string) error
}

// OrderRepository stores submitted trade-in and purchase orders.
type OrderRepository interface {
	CreateOrder(ctx context.Context, o domain.Order) error
	// CreateOrders stores the batch atomically.
	CreateOrders(ctx context.Context, batch []domain.Order) error
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	ListOrders(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, from, to domain.OrderStatus) (domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// ReferralRepository stores referral codes. Redeem must check and increment
// the use count atomically.
type ReferralRepository interface {
	ListReferrals(ctx context.Context, limit, offset int) ([]domain.ReferralCode, error)
	GetReferral(ctx context.Context, id string) (domain.ReferralCode, error)
	CreateReferral(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error)
	UpdateReferral(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error)
	DeleteReferral(ctx context.Context, id string) error
	Redeem(ctx context.Context, code string) (domain.ReferralCode, error)
}

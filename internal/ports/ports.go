package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"tradeup/internal/domain"
)

// DeviceSource resolves devices visible on the storefront.
type DeviceSource interface {
	Devices(ctx context.Context) ([]domain.Device, error)
	Device(ctx context.Context, key string) (domain.Device, error)
}

// RateSource supplies the current USD to JPY rate.
type RateSource interface {
	Rate() decimal.Decimal
}

const (
	SubjectOrderSubmitted = "tradeup.orders.submitted"
	SubjectOrderStatus    = "tradeup.orders.status"
)

// EventPublisher announces order lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

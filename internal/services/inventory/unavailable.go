package inventory

import (
	"context"

	"tradeup/internal/domain"
)

// unavailable backs admin operations when the server runs without a database.
type unavailable struct{}

func (unavailable) ListDevices(context.Context, int, int) ([]domain.Device, error) {
	return nil, domain.ErrUnavailable
}

func (unavailable) GetDevice(context.Context, string) (domain.Device, error) {
	return domain.Device{}, domain.ErrUnavailable
}

func (unavailable) CreateDevice(context.Context, domain.Device) (domain.Device, error) {
	return domain.Device{}, domain.ErrUnavailable
}

func (unavailable) UpdateDevice(context.Context, domain.Device) (domain.Device, error) {
	return domain.Device{}, domain.ErrUnavailable
}

func (unavailable) DeleteDevice(context.Context, string) error { return domain.ErrUnavailable }

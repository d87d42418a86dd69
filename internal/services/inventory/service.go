package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tradeup/internal/catalog"
	"tradeup/internal/domain"
	"tradeup/internal/ports"
)

const pageSize = 200

// Service manages store-owned inventory and merges it with the feed catalog
// to form the storefront's device source.
type Service struct {
	devices ports.DeviceRepository
	feed    *catalog.Store
}

func New(devices ports.DeviceRepository, feed *catalog.Store) *Service {
	if feed == nil {
		feed = catalog.NewStore()
	}
	return &Service{devices: devices, feed: feed}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Device, error) {
	return s.repo().ListDevices(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Device, error) {
	if err := checkID(id); err != nil {
		return domain.Device{}, err
	}
	return s.repo().GetDevice(ctx, id)
}

func (s *Service) Create(ctx context.Context, d domain.Device) (domain.Device, error) {
	d = trim(d)
	if err := domain.ValidateDevice(d); err != nil {
		return domain.Device{}, err
	}
	return s.repo().CreateDevice(ctx, d)
}

func (s *Service) Update(ctx context.Context, id string, d domain.Device) (domain.Device, error) {
	if err := checkID(id); err != nil {
		return domain.Device{}, err
	}
	d = trim(d)
	d.ID = id
	if err := domain.ValidateDevice(d); err != nil {
		return domain.Device{}, err
	}
	return s.repo().UpdateDevice(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	return s.repo().DeleteDevice(ctx, id)
}

// Devices returns the feed catalog followed by in-stock inventory devices
// whose key the feed does not already carry.
func (s *Service) Devices(ctx context.Context) ([]domain.Device, error) {
	out := s.feed.All()
	if s.devices == nil {
		return out, nil
	}
	seen := make(map[string]struct{}, len(out))
	for _, d := range out {
		seen[d.Key()] = struct{}{}
	}
	for offset := 0; ; offset += pageSize {
		page, err := s.devices.ListDevices(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, d := range page {
			if d.Stock <= 0 {
				continue
			}
			if _, dup := seen[d.Key()]; dup {
				continue
			}
			seen[d.Key()] = struct{}{}
			out = append(out, d)
		}
		if len(page) < pageSize {
			return out, nil
		}
	}
}

// Device resolves a storefront key, preferring the feed.
func (s *Service) Device(ctx context.Context, key string) (domain.Device, error) {
	if d, ok := s.feed.Get(key); ok {
		return d, nil
	}
	all, err := s.Devices(ctx)
	if err != nil {
		return domain.Device{}, err
	}
	for _, d := range all {
		if d.Key() == key {
			return d, nil
		}
	}
	return domain.Device{}, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, key)
}

func (s *Service) repo() ports.DeviceRepository {
	if s.devices == nil {
		return unavailable{}
	}
	return s.devices
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id", domain.ErrInvalidInput)
	}
	return nil
}

func trim(d domain.Device) domain.Device {
	d.OS = strings.TrimSpace(d.OS)
	d.Brand = strings.TrimSpace(d.Brand)
	d.Model = strings.TrimSpace(d.Model)
	d.Storage = strings.TrimSpace(d.Storage)
	d.Color = strings.TrimSpace(d.Color)
	d.Condition = strings.TrimSpace(d.Condition)
	return d
}

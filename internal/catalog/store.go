package catalog

import (
	"strings"
	"sync"
	"time"

	"tradeup/internal/domain"
)

// Item is a device as listed on the storefront, with its catalog key.
type Item struct {
	Key string `json:"key"`
	domain.Device
}

func NewItem(d domain.Device) Item { return Item{Key: d.Key(), Device: d} }

// Store holds the latest feed snapshot. Readers always get a copy.
type Store struct {
	mu        sync.RWMutex
	devices   []domain.Device
	byKey     map[string]int
	updatedAt time.Time
}

func NewStore() *Store {
	return &Store{byKey: map[string]int{}}
}

// Replace swaps in a new snapshot. Duplicate keys keep the first row.
func (s *Store) Replace(devices []domain.Device, at time.Time) {
	next := make([]domain.Device, 0, len(devices))
	idx := make(map[string]int, len(devices))
	for _, d := range devices {
		k := d.Key()
		if _, dup := idx[k]; dup {
			continue
		}
		idx[k] = len(next)
		next = append(next, d)
	}
	s.mu.Lock()
	s.devices = next
	s.byKey = idx
	s.updatedAt = at
	s.mu.Unlock()
}

func (s *Store) All() []domain.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Device, len(s.devices))
	copy(out, s.devices)
	return out
}

func (s *Store) Get(key string) (domain.Device, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.byKey[key]
	if !ok {
		return domain.Device{}, false
	}
	return s.devices[i], true
}

func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// Filter narrows a device list. Empty fields match everything; comparison is
// case-insensitive.
type Filter struct {
	OS        string
	Brand     string
	Condition string
	Query     string
}

func (f Filter) Match(d domain.Device) bool {
	if f.OS != "" && !strings.EqualFold(f.OS, d.OS) {
		return false
	}
	if f.Brand != "" && !strings.EqualFold(f.Brand, d.Brand) {
		return false
	}
	if f.Condition != "" && !strings.EqualFold(f.Condition, d.Condition) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(d.Title()), q) {
			return false
		}
	}
	return true
}

func Apply(devices []domain.Device, f Filter) []domain.Device {
	out := make([]domain.Device, 0, len(devices))
	for _, d := range devices {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

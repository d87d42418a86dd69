// Package session holds per-visitor storefront state: cart, purchase history
// and recently viewed devices. Callers pass the store in explicitly.
package session

import (
	"context"
	"time"
)

const (
	// MaxRecentlyViewed caps the recently viewed list.
	MaxRecentlyViewed = 10
	// MaxQuantity caps the units held on a single cart line.
	MaxQuantity = 10
)

type CartItem struct {
	DeviceKey string `json:"device_key"`
	Quantity  int    `json:"quantity"`
}

type State struct {
	Cart           []CartItem `json:"cart"`
	Purchases      []string   `json:"purchases"`
	RecentlyViewed []string   `json:"recently_viewed"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// View is a session state as returned to the storefront.
type View struct {
	ID string `json:"id"`
	State
}

func (s *State) clone() State {
	out := State{UpdatedAt: s.UpdatedAt}
	out.Cart = append([]CartItem{}, s.Cart...)
	out.Purchases = append([]string{}, s.Purchases...)
	out.RecentlyViewed = append([]string{}, s.RecentlyViewed...)
	return out
}

// AddToCart merges quantities for a device already in the cart. Non-positive
// quantities count as one; a line never holds more than MaxQuantity.
func (s *State) AddToCart(key string, qty int) {
	qty = clampQuantity(qty)
	for i := range s.Cart {
		if s.Cart[i].DeviceKey == key {
			s.Cart[i].Quantity = clampQuantity(clampQuantity(s.Cart[i].Quantity) + qty)
			return
		}
	}
	s.Cart = append(s.Cart, CartItem{DeviceKey: key, Quantity: qty})
}

func clampQuantity(q int) int {
	switch {
	case q <= 0:
		return 1
	case q > MaxQuantity:
		return MaxQuantity
	}
	return q
}

// RemoveFromCart reports whether the key was in the cart.
func (s *State) RemoveFromCart(key string) bool {
	for i := range s.Cart {
		if s.Cart[i].DeviceKey == key {
			s.Cart = append(s.Cart[:i], s.Cart[i+1:]...)
			return true
		}
	}
	return false
}

func (s *State) ClearCart() { s.Cart = nil }

// Viewed moves key to the front of the recently viewed list.
func (s *State) Viewed(key string) {
	out := make([]string, 0, MaxRecentlyViewed)
	out = append(out, key)
	for _, k := range s.RecentlyViewed {
		if k == key {
			continue
		}
		if len(out) == MaxRecentlyViewed {
			break
		}
		out = append(out, k)
	}
	s.RecentlyViewed = out
}

func (s *State) RecordPurchase(orderID string) {
	s.Purchases = append(s.Purchases, orderID)
}

// Store reads and mutates session state by id. Update applies fn atomically
// with respect to other updates of the same session.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Update(ctx context.Context, id string, fn func(*State)) (State, error)
}

package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Core domain models shared by services and adapters. Money is always held in
// the base currency (USD); conversion happens at presentation time.

type Device struct {
	ID        string          `json:"id,omitempty"`
	OS        string          `json:"os"`
	Brand     string          `json:"brand"`
	Model     string          `json:"model"`
	Storage   string          `json:"storage"`
	Color     string          `json:"color"`
	Condition string          `json:"condition"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock,omitempty"`
	CreatedAt *time.Time      `json:"created_at,omitempty"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
}

// Key is a stable slug derived from the descriptive fields. Feed devices have
// no identity beyond field equality, so the key is what clients refer to.
func (d Device) Key() string {
	parts := []string{d.Brand, d.Model, d.Storage, d.Color, d.Condition}
	var b strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('-')
		}
		b.WriteString(slug(p))
	}
	return b.String()
}

// Title is the human label used in mail bodies and admin listings.
func (d Device) Title() string {
	fields := []string{d.Brand, d.Model, d.Storage, d.Color}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	title := strings.Join(out, " ")
	if c := strings.TrimSpace(d.Condition); c != "" {
		title += " (" + c + ")"
	}
	return title
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

type OrderKind string

type OrderStatus string

const (
	OrderKindTradeIn  OrderKind = "trade_in"
	OrderKindPurchase OrderKind = "purchase"

	OrderStatusPending   OrderStatus = "pending"
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusInspected OrderStatus = "inspected"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusReceived, OrderStatusCancelled},
	OrderStatusReceived:  {OrderStatusInspected, OrderStatusCancelled},
	OrderStatusInspected: {OrderStatusCompleted, OrderStatusCancelled},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseOrderStatus(raw string) (OrderStatus, bool) {
	s := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case OrderStatusPending, OrderStatusReceived, OrderStatusInspected, OrderStatusCompleted, OrderStatusCancelled:
		return s, true
	}
	return "", false
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Pricing is the persisted price breakdown of an order, in USD.
type Pricing struct {
	BasePrice         decimal.Decimal `json:"base_price"`
	Deduction         decimal.Decimal `json:"deduction"`
	FinalValue        decimal.Decimal `json:"final_value"`
	UpgradePrice      decimal.Decimal `json:"upgrade_price"`
	PriceDifference   decimal.Decimal `json:"price_difference"`
	ShippingSurcharge decimal.Decimal `json:"shipping_surcharge"`
	TotalDue          decimal.Decimal `json:"total_due"`
}

type Order struct {
	ID           string          `json:"id"`
	Kind         OrderKind       `json:"kind"`
	Customer     Customer        `json:"customer"`
	TradeIn      *Device         `json:"trade_in,omitempty"`
	Upgrade      *Device         `json:"upgrade,omitempty"`
	Faults       []string        `json:"faults"`
	Pricing      Pricing         `json:"pricing"`
	Currency     string          `json:"currency"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
	ReferralCode string          `json:"referral_code,omitempty"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type OrderFilter struct {
	Status OrderStatus
	Kind   OrderKind
	Limit  int
	Offset int
}

type ReferralCode struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Owner     string    `json:"owner"`
	Active    bool      `json:"active"`
	MaxUses   int       `json:"max_uses"`
	Uses      int       `json:"uses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeReferralCode upper-cases and trims a code as entered by a customer.
func NormalizeReferralCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

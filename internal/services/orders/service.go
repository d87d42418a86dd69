package orders

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"

	"tradeup/internal/currency"
	"tradeup/internal/domain"
	"tradeup/internal/ports"
	"tradeup/internal/services/quotes"
	"tradeup/internal/session"
	"tradeup/internal/valuation"
)

// MaxCheckoutUnits caps the purchase orders a single checkout may create.
const MaxCheckoutUnits = 20

// Quoter prices trade-ins and purchases.
type Quoter interface {
	Quote(ctx context.Context, in quotes.Input) (quotes.Quote, error)
	Purchase(dev domain.Device, cur currency.Currency) domain.Pricing
	Rate() decimal.Decimal
}

// Redeemer consumes referral code uses.
type Redeemer interface {
	Redeem(ctx context.Context, code string) (domain.ReferralCode, error)
}

type Deps struct {
	Orders    ports.OrderRepository
	Jobs      ports.JobRepository
	Referrals Redeemer
	Devices   ports.DeviceSource
	Quotes    Quoter
	Sessions  session.Store
	Events    ports.EventPublisher
	Log       *logrus.Entry
}

type Options struct {
	StoreEmail string
	// EmailOnly skips persistence; submissions only produce a mailto link.
	EmailOnly bool
	Faults    valuation.FaultTable
}

type Service struct {
	Deps
	opts Options
	now  func() time.Time
}

func New(deps Deps, opts Options) *Service {
	if opts.Faults == nil {
		opts.Faults = valuation.DefaultFaults
	}
	if deps.Log == nil {
		deps.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	if deps.Orders == nil {
		opts.EmailOnly = true
	}
	return &Service{Deps: deps, opts: opts, now: func() time.Time { return time.Now().UTC() }}
}

// Submission is the outcome of a customer request.
type Submission struct {
	Order      domain.Order  `json:"order"`
	Quote      *quotes.Quote `json:"quote,omitempty"`
	MailtoLink string        `json:"mailto_link"`
	Persisted  bool          `json:"persisted"`
}

type TradeInRequest struct {
	SessionID    string          `json:"session_id,omitempty"`
	Customer     domain.Customer `json:"customer"`
	Quote        quotes.Input    `json:"quote"`
	ReferralCode string          `json:"referral_code,omitempty"`
}

// SubmitTradeIn re-prices the request server-side and records it.
func (s *Service) SubmitTradeIn(ctx context.Context, req TradeInRequest) (Submission, error) {
	cust, err := validateCustomer(req.Customer)
	if err != nil {
		return Submission{}, err
	}
	q, err := s.Quotes.Quote(ctx, req.Quote)
	if err != nil {
		return Submission{}, err
	}

	o := s.newOrder(domain.OrderKindTradeIn, cust, q.Currency)
	o.TradeIn = q.TradeIn
	o.Upgrade = q.Upgrade
	for _, f := range q.Faults {
		o.Faults = append(o.Faults, string(f.ID))
	}
	o.Pricing = quotes.Pricing(q.Breakdown)
	o.ExchangeRate = q.Rate.Round(4)
	o.ReferralCode = domain.NormalizeReferralCode(req.ReferralCode)

	sub := Submission{Order: o, Quote: &q}
	if !s.opts.EmailOnly {
		if o.ReferralCode != "" {
			if s.Referrals == nil {
				return Submission{}, domain.ErrReferralInvalid
			}
			if _, err := s.Referrals.Redeem(ctx, o.ReferralCode); err != nil {
				return Submission{}, err
			}
		}
		if err := s.persist(ctx, o); err != nil {
			return Submission{}, err
		}
		sub.Persisted = true
		if req.SessionID != "" && s.Sessions != nil {
			if _, err := s.Sessions.Update(ctx, req.SessionID, func(st *session.State) { st.RecordPurchase(o.ID) }); err != nil {
				s.Log.WithError(err).WithField("order_id", o.ID).Warn("record purchase in session")
			}
		}
	}
	sub.MailtoLink = quotes.MailtoLink(s.opts.StoreEmail, o, s.opts.Faults)
	return sub, nil
}

// Checkout turns every cart unit into its own purchase order and empties the
// cart. The orders are stored together or not at all.
func (s *Service) Checkout(ctx context.Context, sessionID string, cust domain.Customer, cur string) ([]Submission, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, fmt.Errorf("%w: session id is required", domain.ErrInvalidInput)
	}
	if s.Sessions == nil {
		return nil, domain.ErrUnavailable
	}
	cust, err := validateCustomer(cust)
	if err != nil {
		return nil, err
	}
	st, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart := st.Cart
	if len(cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", domain.ErrInvalidInput)
	}

	if err := checkCart(cart); err != nil {
		return nil, err
	}

	c := currency.Parse(cur)
	rate := s.Quotes.Rate().Round(4)
	var out []Submission
	for _, item := range cart {
		dev, err := s.Devices.Device(ctx, item.DeviceKey)
		if errors.Is(err, domain.ErrNotFound) {
			err = fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, item.DeviceKey)
		}
		if err != nil {
			return nil, err
		}
		for i := 0; i < item.Quantity; i++ {
			d := dev
			o := s.newOrder(domain.OrderKindPurchase, cust, c)
			o.Upgrade = &d
			o.Pricing = s.Quotes.Purchase(d, c)
			o.ExchangeRate = rate
			out = append(out, Submission{Order: o})
		}
	}

	if !s.opts.EmailOnly {
		batch := make([]domain.Order, len(out))
		for i := range out {
			batch[i] = out[i].Order
		}
		if err := s.Orders.CreateOrders(ctx, batch); err != nil {
			return nil, err
		}
		for i := range out {
			out[i].Persisted = true
			s.enqueue(ctx, out[i].Order.ID)
		}
	}
	for i := range out {
		out[i].MailtoLink = quotes.MailtoLink(s.opts.StoreEmail, out[i].Order, s.opts.Faults)
	}

	_, err = s.Sessions.Update(ctx, sessionID, func(st *session.State) {
		st.ClearCart()
		if s.opts.EmailOnly {
			return
		}
		for _, sub := range out {
			st.RecordPurchase(sub.Order.ID)
		}
	})
	if err != nil {
		s.Log.WithError(err).WithField("session_id", sessionID).Warn("clear cart after checkout")
	}
	return out, nil
}

func (s *Service) List(ctx context.Context, f domain.OrderFilter) ([]domain.Order, error) {
	if s.Orders == nil {
		return nil, domain.ErrUnavailable
	}
	return s.Orders.ListOrders(ctx, f)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Order, error) {
	if err := s.check(id); err != nil {
		return domain.Order{}, err
	}
	return s.Orders.GetOrder(ctx, id)
}

// StatusChanged is published whenever an admin moves an order.
type StatusChanged struct {
	OrderID string             `json:"order_id"`
	From    domain.OrderStatus `json:"from"`
	To      domain.OrderStatus `json:"to"`
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (domain.Order, error) {
	to, ok := domain.ParseOrderStatus(status)
	if !ok {
		return domain.Order{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}
	cur, err := s.Get(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !domain.CanTransition(cur.Status, to) {
		return domain.Order{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, cur.Status, to)
	}
	o, err := s.Orders.UpdateOrderStatus(ctx, id, cur.Status, to)
	if err != nil {
		return domain.Order{}, err
	}
	if s.Events != nil {
		ev := StatusChanged{OrderID: o.ID, From: cur.Status, To: to}
		if err := s.Events.Publish(ctx, ports.SubjectOrderStatus, ev); err != nil {
			s.Log.WithError(err).WithField("order_id", o.ID).Warn("publish status event")
		}
	}
	return o, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.check(id); err != nil {
		return err
	}
	return s.Orders.DeleteOrder(ctx, id)
}

func (s *Service) newOrder(kind domain.OrderKind, cust domain.Customer, c currency.Currency) domain.Order {
	now := s.now()
	return domain.Order{
		ID:        uuid.NewString(),
		Kind:      kind,
		Customer:  cust,
		Currency:  string(c),
		Status:    domain.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// persist stores the order and queues its notification.
func (s *Service) persist(ctx context.Context, o domain.Order) error {
	if err := s.Orders.CreateOrder(ctx, o); err != nil {
		return err
	}
	s.enqueue(ctx, o.ID)
	return nil
}

// enqueue queues the order notification. A failed enqueue is logged; the
// order itself is already safe.
func (s *Service) enqueue(ctx context.Context, orderID string) {
	if s.Jobs == nil {
		return
	}
	if _, err := s.Jobs.Enqueue(ctx, orderID); err != nil {
		s.Log.WithError(err).WithField("order_id", orderID).Warn("enqueue notification")
	}
}

// checkCart bounds every line and the whole cart before any order is built.
func checkCart(cart []session.CartItem) error {
	units := 0
	for _, item := range cart {
		if item.Quantity <= 0 || item.Quantity > session.MaxQuantity {
			return fmt.Errorf("%w: quantity for %s must be between 1 and %d", domain.ErrInvalidInput, item.DeviceKey, session.MaxQuantity)
		}
		units += item.Quantity
	}
	if units > MaxCheckoutUnits {
		return fmt.Errorf("%w: at most %d units per checkout", domain.ErrInvalidInput, MaxCheckoutUnits)
	}
	return nil
}

func (s *Service) check(id string) error {
	if s.Orders == nil {
		return domain.ErrUnavailable
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id", domain.ErrInvalidInput)
	}
	return nil
}

func validateCustomer(c domain.Customer) (domain.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	if c.Name == "" {
		return c, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	email, err := normalizeEmail(c.Email)
	if err != nil {
		return c, err
	}
	c.Email = email
	return c, nil
}

// normalizeEmail accepts a bare address whose domain sits under an ICANN
// public suffix.
func normalizeEmail(raw string) (string, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil || addr.Address != raw {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	at := strings.LastIndexByte(addr.Address, '@')
	host := strings.ToLower(addr.Address[at+1:])
	suffix, icann := publicsuffix.PublicSuffix(host)
	if !icann || suffix == host {
		return "", fmt.Errorf("%w: invalid email domain", domain.ErrInvalidInput)
	}
	return addr.Address[:at+1] + host, nil
}

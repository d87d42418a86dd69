package quotes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tradeup/internal/currency"
	"tradeup/internal/domain"
	"tradeup/internal/ports"
	"tradeup/internal/valuation"
)

type Service struct {
	devices ports.DeviceSource
	rates   ports.RateSource
	faults  valuation.FaultTable
}

func New(devices ports.DeviceSource, rates ports.RateSource, faults valuation.FaultTable) *Service {
	if faults == nil {
		faults = valuation.DefaultFaults
	}
	return &Service{devices: devices, rates: rates, faults: faults}
}

type Input struct {
	DeviceKey  string   `json:"device"`
	Faults     []string `json:"faults"`
	UpgradeKey string   `json:"upgrade,omitempty"`
	Currency   string   `json:"currency,omitempty"`
}

// Display holds every breakdown amount converted to the presentation currency.
type Display struct {
	BasePrice         currency.Amount  `json:"base_price"`
	Deduction         currency.Amount  `json:"deduction"`
	FinalValue        currency.Amount  `json:"final_value"`
	UpgradePrice      *currency.Amount `json:"upgrade_price,omitempty"`
	PriceDifference   *currency.Amount `json:"price_difference,omitempty"`
	ShippingSurcharge *currency.Amount `json:"shipping_surcharge,omitempty"`
	TotalDue          *currency.Amount `json:"total_due,omitempty"`
}

type Quote struct {
	TradeIn   *domain.Device      `json:"trade_in,omitempty"`
	Upgrade   *domain.Device      `json:"upgrade,omitempty"`
	Faults    []valuation.Fault   `json:"faults"`
	Currency  currency.Currency   `json:"currency"`
	Rate      decimal.Decimal     `json:"exchange_rate"`
	Breakdown valuation.Breakdown `json:"breakdown"`
	Display   Display             `json:"display"`
}

// Faults lists the fault catalog.
func (s *Service) Faults() []valuation.Fault { return s.faults.List() }

func (s *Service) Rate() decimal.Decimal {
	if s.rates == nil {
		return currency.FallbackRate
	}
	return s.rates.Rate()
}

// Quote values the trade-in device and prices the optional upgrade. The
// shipping surcharge only applies when presenting in the secondary currency.
func (s *Service) Quote(ctx context.Context, in Input) (Quote, error) {
	if strings.TrimSpace(in.DeviceKey) == "" {
		return Quote{}, fmt.Errorf("%w: device is required", domain.ErrInvalidInput)
	}
	tradeIn, err := s.resolve(ctx, in.DeviceKey)
	if err != nil {
		return Quote{}, err
	}
	var upgrade *domain.Device
	if strings.TrimSpace(in.UpgradeKey) != "" {
		if upgrade, err = s.resolve(ctx, in.UpgradeKey); err != nil {
			return Quote{}, err
		}
	}

	cur := currency.Parse(in.Currency)
	sel := valuation.SelectionFromStrings(in.Faults)
	b := valuation.Quote(tradeIn, sel, s.faults, upgrade, cur.Secondary())

	q := Quote{
		TradeIn:   tradeIn,
		Upgrade:   upgrade,
		Currency:  cur,
		Rate:      s.Rate(),
		Breakdown: b,
	}
	for _, id := range sel.Known(s.faults) {
		q.Faults = append(q.Faults, s.faults[id])
	}
	q.Display = s.display(b, cur, q.Rate)
	return q, nil
}

func (s *Service) display(b valuation.Breakdown, cur currency.Currency, rate decimal.Decimal) Display {
	d := Display{
		BasePrice:  currency.Present(b.TradeIn.BasePrice, rate, cur),
		Deduction:  currency.Present(b.TradeIn.Deduction, rate, cur),
		FinalValue: currency.Present(b.TradeIn.FinalValue, rate, cur),
	}
	if b.HasUpgrade {
		up := currency.Present(b.UpgradePrice, rate, cur)
		diff := currency.Present(b.PriceDifference, rate, cur)
		total := currency.Present(b.TotalDue, rate, cur)
		d.UpgradePrice, d.PriceDifference, d.TotalDue = &up, &diff, &total
		if b.SurchargeApplied {
			sc := currency.Present(b.ShippingSurcharge, rate, cur)
			d.ShippingSurcharge = &sc
		}
	}
	return d
}

// Purchase prices a straight purchase of dev: its price plus the surcharge
// when presenting in the secondary currency.
func (s *Service) Purchase(dev domain.Device, cur currency.Currency) domain.Pricing {
	p := domain.Pricing{UpgradePrice: cents(dev.Price)}
	if cur.Secondary() {
		p.ShippingSurcharge = cents(valuation.ShippingSurcharge(p.UpgradePrice))
	}
	p.TotalDue = valuation.TotalDue(p.UpgradePrice, p.ShippingSurcharge)
	return p
}

func (s *Service) resolve(ctx context.Context, key string) (*domain.Device, error) {
	d, err := s.devices.Device(ctx, strings.TrimSpace(key))
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrDeviceNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrDeviceNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Pricing flattens a trade-in breakdown into the persisted order pricing.
// Deduction and surcharge are rounded to cents and the derived amounts are
// recomputed from them, so the stored row adds up.
func Pricing(b valuation.Breakdown) domain.Pricing {
	base := cents(b.TradeIn.BasePrice)
	ded := cents(b.TradeIn.Deduction)
	p := domain.Pricing{
		BasePrice:  base,
		Deduction:  ded,
		FinalValue: valuation.FinalValue(base, ded),
	}
	if !b.HasUpgrade {
		return p
	}
	p.UpgradePrice = cents(b.UpgradePrice)
	p.PriceDifference = p.UpgradePrice.Sub(p.FinalValue)
	if b.SurchargeApplied {
		p.ShippingSurcharge = cents(b.ShippingSurcharge)
	}
	p.TotalDue = valuation.TotalDue(p.PriceDifference, p.ShippingSurcharge)
	return p
}

// cents matches the numeric(12,2) money columns.
func cents(d decimal.Decimal) decimal.Decimal { return d.Round(2) }

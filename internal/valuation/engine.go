// Package valuation computes trade-in values and the price breakdown shown to
// customers. Every function is pure; none of them return errors. Out-of-range
// input is clamped or ignored.
package valuation

import (
	"github.com/shopspring/decimal"

	"tradeup/internal/domain"
)

// SurchargeRate is the shipping surcharge applied to an upgrade device's price.
var SurchargeRate = decimal.RequireFromString("0.30")

// Deduction sums basePrice*rate over the selected faults found in table.
// Rates are fractions of the original base price; they do not compound.
func Deduction(basePrice decimal.Decimal, selected Selection, table FaultTable) decimal.Decimal {
	total := decimal.Zero
	for id := range selected {
		f, ok := table[id]
		if !ok {
			continue
		}
		total = total.Add(basePrice.Mul(f.Rate))
	}
	return total
}

// FinalValue is basePrice minus the deduction, floored at zero.
func FinalValue(basePrice, totalDeduction decimal.Decimal) decimal.Decimal {
	v := basePrice.Sub(totalDeduction)
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// PriceDifference is what the customer still owes for the upgrade after the
// trade-in credit. Negative means the store owes the customer. Zero when either
// device is missing.
func PriceDifference(tradeIn, upgrade *domain.Device, finalTradeInValue decimal.Decimal) decimal.Decimal {
	if tradeIn == nil || upgrade == nil {
		return decimal.Zero
	}
	return upgrade.Price.Sub(finalTradeInValue)
}

// ShippingSurcharge is a fixed 30% of the upgrade price, in the device's base
// currency. Callers decide when it applies.
func ShippingSurcharge(upgradePrice decimal.Decimal) decimal.Decimal {
	return upgradePrice.Mul(SurchargeRate)
}

// TotalDue adds the surcharge to the price difference without clamping.
func TotalDue(priceDifference, shippingSurcharge decimal.Decimal) decimal.Decimal {
	return priceDifference.Add(shippingSurcharge)
}

// Result is the trade-in valuation for one device and fault selection.
type Result struct {
	BasePrice  decimal.Decimal `json:"base_price"`
	Deduction  decimal.Decimal `json:"deduction"`
	FinalValue decimal.Decimal `json:"final_value"`
}

func Evaluate(basePrice decimal.Decimal, selected Selection, table FaultTable) Result {
	d := Deduction(basePrice, selected, table)
	return Result{BasePrice: basePrice, Deduction: d, FinalValue: FinalValue(basePrice, d)}
}

// Breakdown is the consumer-facing price breakdown.
type Breakdown struct {
	TradeIn           Result          `json:"trade_in"`
	HasUpgrade        bool            `json:"has_upgrade"`
	UpgradePrice      decimal.Decimal `json:"upgrade_price"`
	PriceDifference   decimal.Decimal `json:"price_difference"`
	SurchargeApplied  bool            `json:"surcharge_applied"`
	ShippingSurcharge decimal.Decimal `json:"shipping_surcharge"`
	TotalDue          decimal.Decimal `json:"total_due"`
}

// Quote values tradeIn under the selection and prices the optional upgrade.
// applySurcharge is the caller's presentation policy.
func Quote(tradeIn *domain.Device, selected Selection, table FaultTable, upgrade *domain.Device, applySurcharge bool) Breakdown {
	var b Breakdown
	if tradeIn != nil {
		b.TradeIn = Evaluate(tradeIn.Price, selected, table)
	}
	if upgrade == nil {
		b.TotalDue = decimal.Zero
		return b
	}
	b.HasUpgrade = true
	b.UpgradePrice = upgrade.Price
	b.PriceDifference = PriceDifference(tradeIn, upgrade, b.TradeIn.FinalValue)
	if applySurcharge {
		b.SurchargeApplied = true
		b.ShippingSurcharge = ShippingSurcharge(upgrade.Price)
	}
	b.TotalDue = TotalDue(b.PriceDifference, b.ShippingSurcharge)
	return b
}

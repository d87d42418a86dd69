package quotes

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"tradeup/internal/currency"
	"tradeup/internal/domain"
	"tradeup/internal/valuation"
)

// MailtoLink renders a pre-filled mailto: link for an order so the customer
// can send the request from their own mail client.
func MailtoLink(storeEmail string, o domain.Order, faults valuation.FaultTable) string {
	cur := currency.Parse(o.Currency)
	money := func(v decimal.Decimal) string {
		return currency.Present(v, o.ExchangeRate, cur).Formatted
	}

	ref := o.ID
	if len(ref) > 8 {
		ref = ref[:8]
	}
	var subject string
	var body strings.Builder
	line := func(parts ...string) {
		body.WriteString(strings.Join(parts, ""))
		body.WriteString("\n")
	}

	switch o.Kind {
	case domain.OrderKindPurchase:
		title := ""
		if o.Upgrade != nil {
			title = o.Upgrade.Title()
		}
		subject = "Purchase request " + ref + ": " + title
		line("Purchase request ", ref)
		line("Device: ", title)
		line("Price: ", money(o.Pricing.UpgradePrice))
		if o.Pricing.ShippingSurcharge.IsPositive() {
			line("Shipping surcharge: ", money(o.Pricing.ShippingSurcharge))
		}
		line("Total due: ", money(o.Pricing.TotalDue))
	default:
		title := ""
		if o.TradeIn != nil {
			title = o.TradeIn.Title()
		}
		subject = "Trade-in request " + ref + ": " + title
		line("Trade-in request ", ref)
		line("Device: ", title)
		if len(o.Faults) == 0 {
			line("Reported issues: none")
		} else {
			labels := make([]string, 0, len(o.Faults))
			for _, id := range o.Faults {
				if f, ok := faults[valuation.FaultID(id)]; ok {
					labels = append(labels, f.Label)
				} else {
					labels = append(labels, id)
				}
			}
			line("Reported issues: ", strings.Join(labels, ", "))
		}
		line("Base price: ", money(o.Pricing.BasePrice))
		line("Deductions: ", money(o.Pricing.Deduction))
		line("Trade-in value: ", money(o.Pricing.FinalValue))
		if o.Upgrade != nil {
			line("")
			line("Upgrade device: ", o.Upgrade.Title())
			line("Upgrade price: ", money(o.Pricing.UpgradePrice))
			line("Price difference: ", money(o.Pricing.PriceDifference))
			if o.Pricing.ShippingSurcharge.IsPositive() {
				line("Shipping surcharge: ", money(o.Pricing.ShippingSurcharge))
			}
			if o.Pricing.TotalDue.IsNegative() {
				line("Credit owed to you: ", money(o.Pricing.TotalDue.Neg()))
			} else {
				line("Total due: ", money(o.Pricing.TotalDue))
			}
		}
	}

	line("")
	line("Name: ", o.Customer.Name)
	line("Email: ", o.Customer.Email)
	if o.Customer.Phone != "" {
		line("Phone: ", o.Customer.Phone)
	}
	if o.ReferralCode != "" {
		line("Referral code: ", o.ReferralCode)
	}

	return "mailto:" + storeEmail + "?subject=" + escape(subject) + "&body=" + escape(body.String())
}

// mailto bodies must use %20 for spaces, not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

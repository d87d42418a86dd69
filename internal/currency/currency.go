// Package currency converts base-currency amounts for display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Currency string

const (
	USD Currency = "USD"
	JPY Currency = "JPY"
)

// Base is the currency every stored amount is denominated in.
const Base = USD

// FallbackRate is the USD to JPY rate used when the lookup fails.
var FallbackRate = decimal.NewFromInt(158)

// Parse maps a client-supplied code to a currency. Anything unrecognised is
// treated as the base currency.
func Parse(raw string) Currency {
	switch Currency(strings.ToUpper(strings.TrimSpace(raw))) {
	case JPY:
		return JPY
	default:
		return USD
	}
}

// Secondary reports whether c is the non-base presentation currency.
func (c Currency) Secondary() bool { return c == JPY }

func (c Currency) Symbol() string {
	if c == JPY {
		return "¥"
	}
	return "$"
}

// Convert turns a USD amount into c using rate (USD to JPY). USD amounts are
// rounded to cents, JPY to whole yen.
func Convert(amount, rate decimal.Decimal, c Currency) decimal.Decimal {
	if c == JPY {
		if !rate.IsPositive() {
			rate = FallbackRate
		}
		return amount.Mul(rate).Round(0)
	}
	return amount.Round(2)
}

var printer = message.NewPrinter(language.English)

// Format renders an already converted amount, e.g. "$1,234.50" or "¥195,600".
func Format(amount decimal.Decimal, c Currency) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}
	if c == JPY {
		return sign + c.Symbol() + printer.Sprintf("%d", amount.Round(0).IntPart())
	}
	fixed := amount.StringFixed(2)
	whole := amount.Round(2).IntPart()
	return sign + c.Symbol() + printer.Sprintf("%d", whole) + fixed[len(fixed)-3:]
}

// Amount is a display-ready value in one currency.
type Amount struct {
	Currency  Currency        `json:"currency"`
	Value     decimal.Decimal `json:"value"`
	Formatted string          `json:"formatted"`
}

// Present converts a USD amount and formats it.
func Present(amount, rate decimal.Decimal, c Currency) Amount {
	v := Convert(amount, rate, c)
	return Amount{Currency: c, Value: v, Formatted: Format(v, c)}
}

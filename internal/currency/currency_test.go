package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, JPY, Parse("jpy"))
	assert.Equal(t, JPY, Parse(" JPY "))
	assert.Equal(t, USD, Parse("USD"))
	assert.Equal(t, USD, Parse("EUR"))
	assert.Equal(t, USD, Parse(""))
	assert.True(t, JPY.Secondary())
	assert.False(t, USD.Secondary())
}

func TestConvert(t *testing.T) {
	rate := decimal.RequireFromString("157.25")
	assert.Equal(t, "157250", Convert(decimal.NewFromInt(1000), rate, JPY).String())
	assert.Equal(t, "1000.13", Convert(decimal.RequireFromString("1000.125"), rate, USD).StringFixed(2))
	assert.Equal(t, "158000", Convert(decimal.NewFromInt(1000), decimal.Zero, JPY).String())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount string
		cur    Currency
		want   string
	}{
		{"1234.5", USD, "$1,234.50"},
		{"0", USD, "$0.00"},
		{"7.05", USD, "$7.05"},
		{"-200", USD, "-$200.00"},
		{"195600", JPY, "¥195,600"},
		{"999", JPY, "¥999"},
		{"-31600", JPY, "-¥31,600"},
	}
	for _, tc := range cases {
		got := Format(decimal.RequireFromString(tc.amount), tc.cur)
		assert.Equal(t, tc.want, got, tc.amount)
	}
}

func TestPresent(t *testing.T) {
	a := Present(decimal.NewFromInt(810), decimal.NewFromInt(158), JPY)
	assert.Equal(t, JPY, a.Currency)
	assert.Equal(t, "¥127,980", a.Formatted)
}

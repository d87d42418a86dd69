package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceKeyAndTitle(t *testing.T) {
	d := Device{Brand: "Apple", Model: "iPhone 13 Pro Max", Storage: "128GB", Color: "Sierra Blue", Condition: "Like New"}
	assert.Equal(t, "apple-iphone-13-pro-max-128gb-sierra-blue-like-new", d.Key())
	assert.Equal(t, "Apple iPhone 13 Pro Max 128GB Sierra Blue (Like New)", d.Title())

	sparse := Device{Brand: " Google ", Model: "Pixel 8 (Pro)"}
	assert.Equal(t, "google-pixel-8-pro", sparse.Key())
	assert.Equal(t, "Google Pixel 8 (Pro)", sparse.Title())
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(OrderStatusPending, OrderStatusReceived))
	assert.True(t, CanTransition(OrderStatusInspected, OrderStatusCancelled))
	assert.False(t, CanTransition(OrderStatusPending, OrderStatusCompleted))
	assert.False(t, CanTransition(OrderStatusCompleted, OrderStatusCancelled))
	assert.False(t, CanTransition(OrderStatusCancelled, OrderStatusPending))
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus(" Inspected ")
	require.True(t, ok)
	assert.Equal(t, OrderStatusInspected, s)
	_, ok = ParseOrderStatus("lost")
	assert.False(t, ok)
}

func TestValidateDevice(t *testing.T) {
	ok := Device{Brand: "Apple", Model: "iPhone", Price: decimal.NewFromInt(1)}
	require.NoError(t, ValidateDevice(ok))

	bad := []Device{
		{Model: "iPhone"},
		{Brand: "Apple", Model: "  "},
		{Brand: "Apple", Model: "iPhone", Price: decimal.NewFromInt(-1)},
		{Brand: "Apple", Model: "iPhone", Stock: -1},
	}
	for _, d := range bad {
		assert.ErrorIs(t, ValidateDevice(d), ErrInvalidInput)
	}
}

func TestValidateReferralCode(t *testing.T) {
	require.NoError(t, ValidateReferralCode(ReferralCode{Code: "spring_24-a"}))
	assert.ErrorIs(t, ValidateReferralCode(ReferralCode{Code: " "}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateReferralCode(ReferralCode{Code: strings.Repeat("A", 33)}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateReferralCode(ReferralCode{Code: "NO!"}), ErrInvalidInput)
	assert.ErrorIs(t, ValidateReferralCode(ReferralCode{Code: "OK", MaxUses: -1}), ErrInvalidInput)
}

package session

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartMergesAndRemoves(t *testing.T) {
	var s State
	s.AddToCart("a", 1)
	s.AddToCart("b", 0)
	s.AddToCart("a", 2)
	require.Equal(t, []CartItem{{DeviceKey: "a", Quantity: 3}, {DeviceKey: "b", Quantity: 1}}, s.Cart)

	assert.True(t, s.RemoveFromCart("a"))
	assert.False(t, s.RemoveFromCart("a"))
	assert.Equal(t, []CartItem{{DeviceKey: "b", Quantity: 1}}, s.Cart)

	s.ClearCart()
	assert.Empty(t, s.Cart)
}

func TestCartQuantitySaturates(t *testing.T) {
	var s State
	s.AddToCart("a", math.MaxInt)
	s.AddToCart("a", 1)
	s.AddToCart("b", 7)
	s.AddToCart("b", 7)
	s.AddToCart("c", -3)
	require.Equal(t, []CartItem{
		{DeviceKey: "a", Quantity: MaxQuantity},
		{DeviceKey: "b", Quantity: MaxQuantity},
		{DeviceKey: "c", Quantity: 1},
	}, s.Cart)

	s.Cart[0].Quantity = math.MinInt
	s.AddToCart("a", 2)
	assert.Equal(t, 3, s.Cart[0].Quantity)
}

func TestViewedDedupesAndCaps(t *testing.T) {
	var s State
	for i := 0; i < MaxRecentlyViewed+5; i++ {
		s.Viewed(fmt.Sprintf("d%d", i))
	}
	require.Len(t, s.RecentlyViewed, MaxRecentlyViewed)
	assert.Equal(t, "d14", s.RecentlyViewed[0])

	s.Viewed("d10")
	assert.Equal(t, "d10", s.RecentlyViewed[0])
	assert.Equal(t, "d14", s.RecentlyViewed[1])
	assert.Len(t, s.RecentlyViewed, MaxRecentlyViewed)
}

func TestConnectRedisRejectsBadURL(t *testing.T) {
	_, err := ConnectRedis(context.Background(), "redis://localhost:notaport")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}

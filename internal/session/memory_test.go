package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, s Store, id string) State {
	t.Helper()
	st, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	return st
}

func update(t *testing.T, s Store, id string, fn func(*State)) State {
	t.Helper()
	st, err := s.Update(context.Background(), id, fn)
	require.NoError(t, err)
	return st
}

func TestMemoryStoreIsolatesCopies(t *testing.T) {
	m := NewMemoryStore(time.Hour)
	update(t, m, "s1", func(s *State) { s.AddToCart("a", 1) })

	got := get(t, m, "s1")
	got.Cart[0].Quantity = 99
	assert.Equal(t, 1, get(t, m, "s1").Cart[0].Quantity)
	assert.Empty(t, get(t, m, "s2").Cart)
}

func TestMemoryStoreUpdateReturnsState(t *testing.T) {
	m := NewMemoryStore(time.Hour)
	got := update(t, m, "s1", func(s *State) {
		s.AddToCart("a", 2)
		s.Viewed("a")
		s.RecordPurchase("o-1")
	})
	want := State{
		Cart:           []CartItem{{DeviceKey: "a", Quantity: 2}},
		Purchases:      []string{"o-1"},
		RecentlyViewed: []string{"a"},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(State{}, "UpdatedAt")); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestMemoryStoreExpires(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemoryStore(time.Hour)
	m.now = func() time.Time { return now }

	update(t, m, "s1", func(s *State) { s.RecordPurchase("o-1") })
	update(t, m, "s2", func(s *State) { s.Viewed("x") })
	assert.Equal(t, []string{"o-1"}, get(t, m, "s1").Purchases)

	now = now.Add(2 * time.Hour)
	assert.Empty(t, get(t, m, "s1").Purchases)
	assert.Equal(t, 1, m.Sweep())
}

func TestMemoryStoreConcurrentUpdates(t *testing.T) {
	m := NewMemoryStore(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Update(context.Background(), "s1", func(s *State) { s.AddToCart("a", 1) })
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, get(t, m, "s1").Cart[0].Quantity)
}

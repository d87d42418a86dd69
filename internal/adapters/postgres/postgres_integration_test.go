//go:build integration

package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeup/internal/adapters/postgres"
	"tradeup/internal/domain"
)

func connect(t *testing.T) *postgres.DB {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := postgres.Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)
	require.NoError(t, db.Migrate(ctx))
	return db
}

func TestDeviceCRUD(t *testing.T) {
	db := connect(t)
	ctx := context.Background()

	created, err := db.CreateDevice(ctx, domain.Device{
		OS: "iOS", Brand: "Apple", Model: "iPhone 15", Storage: "256GB", Color: "Blue",
		Condition: "Like New", Price: decimal.RequireFromString("899.99"), Stock: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "899.99", created.Price.String())

	created.Stock = 1
	updated, err := db.UpdateDevice(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Stock)

	require.NoError(t, db.DeleteDevice(ctx, created.ID))
	_, err = db.GetDevice(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReferralRedeemRespectsLimit(t *testing.T) {
	db := connect(t)
	ctx := context.Background()

	code := "IT-" + uuid.NewString()[:8]
	ref, err := db.CreateReferral(ctx, domain.ReferralCode{Code: code, Owner: "it", Active: true, MaxUses: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.DeleteReferral(ctx, ref.ID) })

	_, err = db.CreateReferral(ctx, domain.ReferralCode{Code: code, Active: true})
	require.ErrorIs(t, err, domain.ErrConflict)

	redeemed, err := db.Redeem(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, 1, redeemed.Uses)

	_, err = db.Redeem(ctx, code)
	require.ErrorIs(t, err, domain.ErrReferralInvalid)
}

func TestOrderLifecycleAndJobs(t *testing.T) {
	db := connect(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Millisecond)
	order := domain.Order{
		ID:       uuid.NewString(),
		Kind:     domain.OrderKindTradeIn,
		Customer: domain.Customer{Name: "Ada", Email: "ada@example.com"},
		TradeIn:  &domain.Device{Brand: "Apple", Model: "iPhone 12", Price: decimal.NewFromInt(1000)},
		Faults:   []string{"cracked-screen"},
		Pricing: domain.Pricing{
			BasePrice:  decimal.NewFromInt(1000),
			Deduction:  decimal.NewFromInt(250),
			FinalValue: decimal.NewFromInt(750),
			TotalDue:   decimal.NewFromInt(-200),
		},
		Currency:     "USD",
		ExchangeRate: decimal.NewFromInt(158),
		Status:       domain.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, db.CreateOrder(ctx, order))
	t.Cleanup(func() { _ = db.DeleteOrder(ctx, order.ID) })

	got, err := db.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "-200", got.Pricing.TotalDue.String())
	require.NotNil(t, got.TradeIn)
	assert.Nil(t, got.Upgrade)
	assert.Equal(t, []string{"cracked-screen"}, got.Faults)

	_, err = db.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusReceived, domain.OrderStatusInspected)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
	moved, err := db.UpdateOrderStatus(ctx, order.ID, domain.OrderStatusPending, domain.OrderStatusReceived)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusReceived, moved.Status)

	jobID, err := db.Enqueue(ctx, order.ID)
	require.NoError(t, err)
	job, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, 1, job.Attempts)

	require.NoError(t, db.MarkFailed(ctx, job.ID, "boom", 3))
	again, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, again.Attempts)
	require.NoError(t, db.MarkCompleted(ctx, again.ID))
}

func testOrder(id string) domain.Order {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return domain.Order{
		ID:           id,
		Kind:         domain.OrderKindPurchase,
		Customer:     domain.Customer{Name: "Ada", Email: "ada@example.com"},
		Upgrade:      &domain.Device{Brand: "Apple", Model: "iPhone 15", Price: decimal.NewFromInt(950)},
		Pricing:      domain.Pricing{UpgradePrice: decimal.NewFromInt(950), TotalDue: decimal.NewFromInt(950)},
		Currency:     "USD",
		ExchangeRate: decimal.NewFromInt(158),
		Status:       domain.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestCreateOrdersRollsBackBatch(t *testing.T) {
	db := connect(t)
	ctx := context.Background()

	first := testOrder(uuid.NewString())
	err := db.CreateOrders(ctx, []domain.Order{first, testOrder(uuid.NewString()), first})
	require.Error(t, err)
	_, err = db.GetOrder(ctx, first.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	batch := []domain.Order{testOrder(uuid.NewString()), testOrder(uuid.NewString())}
	require.NoError(t, db.CreateOrders(ctx, batch))
	for _, o := range batch {
		id := o.ID
		t.Cleanup(func() { _ = db.DeleteOrder(ctx, id) })
		_, err := db.GetOrder(ctx, id)
		require.NoError(t, err)
	}
}

func TestReleaseAndStaleReclaim(t *testing.T) {
	db := connect(t)
	ctx := context.Background()

	o := testOrder(uuid.NewString())
	require.NoError(t, db.CreateOrder(ctx, o))
	t.Cleanup(func() { _ = db.DeleteOrder(ctx, o.ID) })
	jobID, err := db.Enqueue(ctx, o.ID)
	require.NoError(t, err)

	job, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, jobID, job.ID)

	_, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found, "a fresh claim is not reclaimed")

	require.NoError(t, db.Release(ctx, job.ID))
	job, found, err = db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, job.Attempts, "release does not spend an attempt")

	db.ClaimTimeout = time.Millisecond
	time.Sleep(20 * time.Millisecond)
	stale, found, err := db.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, jobID, stale.ID)
	assert.Equal(t, 2, stale.Attempts)
	require.NoError(t, db.MarkCompleted(ctx, stale.ID))
}

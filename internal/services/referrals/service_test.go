package referrals

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeup/internal/domain"
)

// memRepo mirrors the guarded UPDATE of the postgres adapter.
type memRepo struct {
	mu   sync.Mutex
	rows map[string]*domain.ReferralCode
}

func newMemRepo() *memRepo { return &memRepo{rows: map[string]*domain.ReferralCode{}} }

func (m *memRepo) ListReferrals(ctx context.Context, limit, offset int) ([]domain.ReferralCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.ReferralCode
	for _, r := range m.rows {
		out = append(out, *r)
	}
	return out, nil
}

func (m *memRepo) GetReferral(ctx context.Context, id string) (domain.ReferralCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rows[id]
	if !ok {
		return domain.ReferralCode{}, domain.ErrNotFound
	}
	return *r, nil
}

func (m *memRepo) CreateReferral(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.rows {
		if existing.Code == r.Code {
			return domain.ReferralCode{}, domain.ErrConflict
		}
	}
	r.ID = uuid.NewString()
	m.rows[r.ID] = &r
	return r, nil
}

func (m *memRepo) UpdateReferral(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.rows[r.ID]
	if !ok {
		return domain.ReferralCode{}, domain.ErrNotFound
	}
	r.Uses = cur.Uses
	*cur = r
	return r, nil
}

func (m *memRepo) DeleteReferral(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

func (m *memRepo) Redeem(ctx context.Context, code string) (domain.ReferralCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.Code == code && r.Active && (r.MaxUses == 0 || r.Uses < r.MaxUses) {
			r.Uses++
			return *r, nil
		}
	}
	return domain.ReferralCode{}, domain.ErrReferralInvalid
}

func TestCreateNormalizesAndValidates(t *testing.T) {
	s := New(newMemRepo())
	ctx := context.Background()

	r, err := s.Create(ctx, domain.ReferralCode{Code: "  friend-10 ", Owner: " ada ", Active: true})
	require.NoError(t, err)
	assert.Equal(t, "FRIEND-10", r.Code)
	assert.Equal(t, "ada", r.Owner)

	_, err = s.Create(ctx, domain.ReferralCode{Code: "friend-10"})
	require.ErrorIs(t, err, domain.ErrConflict)

	_, err = s.Create(ctx, domain.ReferralCode{Code: "no spaces"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = s.Create(ctx, domain.ReferralCode{Code: "OK", MaxUses: -1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRedeemHonoursLimitAndActive(t *testing.T) {
	s := New(newMemRepo())
	ctx := context.Background()

	_, err := s.Create(ctx, domain.ReferralCode{Code: "ONCE", Active: true, MaxUses: 1})
	require.NoError(t, err)
	off, err := s.Create(ctx, domain.ReferralCode{Code: "OFF", Active: false})
	require.NoError(t, err)

	r, err := s.Redeem(ctx, " once ")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Uses)

	_, err = s.Redeem(ctx, "ONCE")
	require.ErrorIs(t, err, domain.ErrReferralInvalid)
	_, err = s.Redeem(ctx, "OFF")
	require.ErrorIs(t, err, domain.ErrReferralInvalid)
	_, err = s.Redeem(ctx, "")
	require.ErrorIs(t, err, domain.ErrReferralInvalid)

	off.Active = true
	_, err = s.Update(ctx, off.ID, off)
	require.NoError(t, err)
	_, err = s.Redeem(ctx, "OFF")
	require.NoError(t, err)
}

func TestRedeemIsSafeUnderConcurrency(t *testing.T) {
	s := New(newMemRepo())
	ctx := context.Background()
	_, err := s.Create(ctx, domain.ReferralCode{Code: "TEN", Active: true, MaxUses: 10})
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Redeem(ctx, "TEN"); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 10, ok)
}

func TestIDChecks(t *testing.T) {
	s := New(newMemRepo())
	_, err := s.Get(context.Background(), "x")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	require.ErrorIs(t, s.Delete(context.Background(), uuid.NewString()), domain.ErrNotFound)

	_, err = New(nil).List(context.Background(), 10, 0)
	require.ErrorIs(t, err, domain.ErrUnavailable)
}

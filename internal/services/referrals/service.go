package referrals

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tradeup/internal/domain"
	"tradeup/internal/ports"
)

type Service struct {
	repo ports.ReferralRepository
}

func New(repo ports.ReferralRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.ReferralCode, error) {
	if s.repo == nil {
		return nil, domain.ErrUnavailable
	}
	return s.repo.ListReferrals(ctx, limit, offset)
}

func (s *Service) Get(ctx context.Context, id string) (domain.ReferralCode, error) {
	if err := s.check(id); err != nil {
		return domain.ReferralCode{}, err
	}
	return s.repo.GetReferral(ctx, id)
}

func (s *Service) Create(ctx context.Context, r domain.ReferralCode) (domain.ReferralCode, error) {
	if s.repo == nil {
		return domain.ReferralCode{}, domain.ErrUnavailable
	}
	r = normalize(r)
	if err := domain.ValidateReferralCode(r); err != nil {
		return domain.ReferralCode{}, err
	}
	return s.repo.CreateReferral(ctx, r)
}

func (s *Service) Update(ctx context.Context, id string, r domain.ReferralCode) (domain.ReferralCode, error) {
	if err := s.check(id); err != nil {
		return domain.ReferralCode{}, err
	}
	r = normalize(r)
	r.ID = id
	if err := domain.ValidateReferralCode(r); err != nil {
		return domain.ReferralCode{}, err
	}
	return s.repo.UpdateReferral(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.check(id); err != nil {
		return err
	}
	return s.repo.DeleteReferral(ctx, id)
}

// Redeem consumes one use of code. Unknown, inactive and exhausted codes all
// report ErrReferralInvalid.
func (s *Service) Redeem(ctx context.Context, code string) (domain.ReferralCode, error) {
	if s.repo == nil {
		return domain.ReferralCode{}, domain.ErrUnavailable
	}
	code = domain.NormalizeReferralCode(code)
	if code == "" {
		return domain.ReferralCode{}, fmt.Errorf("%w: empty code", domain.ErrReferralInvalid)
	}
	return s.repo.Redeem(ctx, code)
}

func (s *Service) check(id string) error {
	if s.repo == nil {
		return domain.ErrUnavailable
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: malformed id", domain.ErrInvalidInput)
	}
	return nil
}

func normalize(r domain.ReferralCode) domain.ReferralCode {
	r.Code = domain.NormalizeReferralCode(r.Code)
	r.Owner = strings.TrimSpace(r.Owner)
	return r
}

package domain

import (
	"fmt"
	"strings"
)

// ValidateDevice checks the fields an inventory device must carry.
func ValidateDevice(d Device) error {
	if strings.TrimSpace(d.Brand) == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidInput)
	}
	if strings.TrimSpace(d.Model) == "" {
		return fmt.Errorf("%w: model is required", ErrInvalidInput)
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if d.Stock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrInvalidInput)
	}
	return nil
}

// ValidateReferralCode checks a referral code before it is stored.
func ValidateReferralCode(r ReferralCode) error {
	code := NormalizeReferralCode(r.Code)
	if code == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if len(code) > 32 {
		return fmt.Errorf("%w: code must be at most 32 characters", ErrInvalidInput)
	}
	for _, c := range code {
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') && c != '-' && c != '_' {
			return fmt.Errorf("%w: code may only contain letters, digits, '-' and '_'", ErrInvalidInput)
		}
	}
	if r.MaxUses < 0 {
		return fmt.Errorf("%w: max_uses must not be negative", ErrInvalidInput)
	}
	return nil
}

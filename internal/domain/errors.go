package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrDeviceNotFound    = errors.New("device not found")
	ErrConflict          = errors.New("conflict")
	ErrReferralInvalid   = errors.New("referral code invalid or exhausted")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrUnavailable       = errors.New("storage not configured")
)

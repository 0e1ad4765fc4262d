package service

import "errors"

var (
	ErrNotEnrolled        = errors.New("not_enrolled")
	ErrUnknownLecture     = errors.New("unknown_lecture")
	ErrInvalidRating      = errors.New("invalid_rating")
	ErrInvalidDiscount    = errors.New("invalid_discount")
	ErrInvalidRole        = errors.New("invalid_role")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrForbidden          = errors.New("forbidden")

	// ErrUpstream marks a failed payment-processor call; callers may retry.
	ErrUpstream = errors.New("payment_provider_unavailable")
)

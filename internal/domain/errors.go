package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountNotVerified = errors.New("account not verified")
	ErrBadRequest         = errors.New("bad request")
	ErrUnavailable        = errors.New("service unavailable")

	// Token service failures. A signature or claim failure is never collapsed
	// into a bare nil result; callers always see one of these.
	ErrMissingKey   = errors.New("signing key not configured")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// ErrNotificationFailed surfaces an outbound mail failure. Any state
	// persisted before the send (e.g. an OTP row) is kept, not rolled back.
	ErrNotificationFailed = errors.New("notification delivery failed")
)

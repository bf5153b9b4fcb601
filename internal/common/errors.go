// Package common defines shared sentinel errors used across FocusDeck
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnverified marks a login rejected because the account's email is
	// not verified yet and a fresh OTP has been sent. Callers branch to the
	// OTP entry flow instead of showing a generic failure.
	ErrUnverified = errors.New("account not verified")

	// Resource errors.
	ErrNotFound = errors.New("not found")
)

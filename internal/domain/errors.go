package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput wraps sign-up data the development API refuses.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is reported by the remote API on a rejected login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrSessionNotFound means no persisted session record exists yet.
	ErrSessionNotFound = errors.New("session record not found")
)

package domain

import "errors"

// Failure kinds surfaced by the core. The transport layer maps these to
// status codes; none of them is retried internally.
var (
	ErrNotFound           = errors.New("not found")
	ErrBookUnavailable    = errors.New("book not available")
	ErrConflict           = errors.New("conflict")
	ErrAlreadyReturned    = errors.New("loan already returned")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

package domain

import "errors"

// Error taxonomy surfaced to callers. The HTTP layer maps these onto
// problem+json responses; nothing is retried internally.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = errors.New("invalid input")
)

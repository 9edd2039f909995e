// Package apperrors defines the sentinel errors shared across the
// service and repository layers. Handlers map them onto HTTP status
// codes with errors.Is.
package apperrors

import "errors"

var (
	// ErrInvalidInput marks missing or malformed request data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks an absent user, product or order.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized marks a missing, expired or invalid credential.
	ErrUnauthorized = errors.New("unauthorized")
)

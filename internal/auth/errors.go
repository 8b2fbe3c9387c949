package auth

import "errors"

// Closed error taxonomy surfaced by the session manager. The HTTP boundary
// maps each kind to a fixed status class; nothing else escapes this set.
var (
	ErrEmailTaken   = errors.New("auth: email already registered")
	ErrNotFound     = errors.New("auth: not found")
	ErrUnauthorized = errors.New("auth: unauthorized")
	ErrTokenRevoked = errors.New("auth: refresh token revoked")
	ErrInvalidToken = errors.New("auth: invalid token")
	ErrInvalidInput = errors.New("auth: invalid input")
)

package auth

import (
	"fmt"
	"strings"
	"time"
)

// Role is the closed set of account roles. There is exactly one privileged
// role in this design.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// ParseRole normalizes and validates a role string from an untrusted source.
func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, raw)
	}
}

// User represents a registered account. The password hash never leaves the
// auth package.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TokenStatus is the refresh credential lifecycle state. The only transition
// is VALID -> INVALIDATED, applied at logout.
type TokenStatus string

const (
	StatusValid       TokenStatus = "VALID"
	StatusInvalidated TokenStatus = "INVALIDATED"
)

// RefreshToken is the persisted revocable session grant. There is at most one
// row per user; a new login replaces the previous row rather than stacking.
// The token value is immutable after creation, only Status transitions.
type RefreshToken struct {
	UserID    string
	Token     string
	Status    TokenStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokenPair bundles the short-lived access token with the long-lived refresh
// credential returned by signup, login and reissue.
type TokenPair struct {
	AccessToken     string    `json:"access_token"`
	RefreshToken    string    `json:"refresh_token"`
	AccessExpiresAt time.Time `json:"expires_at"`
}

// AuthUser is the request-scoped projection of a User produced by claim
// extraction. It carries no secret material.
type AuthUser struct {
	ID    string
	Email string
	Role  Role
}

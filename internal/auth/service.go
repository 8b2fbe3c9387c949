package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service orchestrates signup, login, logout and token reissue. It owns the
// refresh credential lifecycle; token signing and password hashing are
// delegated to the codec and to bcrypt.
type Service struct {
	store Store
	codec *Codec
	now   func() time.Time
}

// ServiceOption configures Service behavior.
type ServiceOption func(*Service)

// WithClock overrides the time source (useful for tests).
func WithClock(fn func() time.Time) ServiceOption {
	return func(s *Service) {
		if fn != nil {
			s.now = fn
		}
	}
}

// NewService constructs the session manager.
func NewService(store Store, codec *Codec, opts ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("auth: store is required")
	}
	if codec == nil {
		return nil, fmt.Errorf("auth: codec is required")
	}
	svc := &Service{
		store: store,
		codec: codec,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Signup registers a new account and issues its first token pair.
//
// The requested role is honored as-is: there is no privilege check at signup
// time. That trust boundary comes from the original system and is preserved
// deliberately; provisioning an admin therefore only requires knowing the
// signup endpoint.
func (s *Service) Signup(ctx context.Context, email, password string, role Role) (TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return TokenPair{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	users := s.store.Users(ctx)
	taken, err := users.ExistsByEmail(ctx, email)
	if err != nil {
		return TokenPair{}, err
	}
	if taken {
		return TokenPair{}, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return TokenPair{}, err
	}
	user := &User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := users.Create(ctx, user); err != nil {
		return TokenPair{}, err
	}

	return s.mintPair(ctx, user)
}

// Login authenticates by email and password and issues a fresh token pair,
// superseding any refresh credential from a previous login.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	user, err := s.store.Users(ctx).FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return TokenPair{}, err
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return TokenPair{}, fmt.Errorf("%w: wrong password", ErrUnauthorized)
	}
	return s.mintPair(ctx, user)
}

// Logout revokes the caller's refresh credential. The transition to
// INVALIDATED is applied unconditionally once the record is found, so a
// second logout succeeds and leaves the status INVALIDATED.
func (s *Service) Logout(ctx context.Context, identity AuthUser) error {
	tokens := s.store.RefreshTokens(ctx)
	if _, err := tokens.FindByUser(ctx, identity.ID); err != nil {
		return err
	}
	return tokens.UpdateStatus(ctx, identity.ID, StatusInvalidated)
}

// Reissue validates a presented refresh credential and mints a new token
// pair for its owner. A revoked credential fails with ErrTokenRevoked; the
// old credential is superseded by the new one, not explicitly invalidated.
func (s *Service) Reissue(ctx context.Context, refreshToken string) (TokenPair, error) {
	record, err := s.store.RefreshTokens(ctx).FindByToken(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}
	if record.Status == StatusInvalidated {
		return TokenPair{}, ErrTokenRevoked
	}
	user, err := s.store.Users(ctx).Find(ctx, record.UserID)
	if err != nil {
		return TokenPair{}, err
	}
	return s.mintPair(ctx, user)
}

// GetUser resolves a principal by id.
func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	return s.store.Users(ctx).Find(ctx, userID)
}

// ChangePassword verifies the old password and stores a hash of the new one.
// Reusing the current password is rejected.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", ErrInvalidInput)
	}
	user, err := s.store.Users(ctx).Find(ctx, userID)
	if err != nil {
		return err
	}
	if err := VerifyPassword(user.PasswordHash, oldPassword); err != nil {
		return fmt.Errorf("%w: wrong password", ErrUnauthorized)
	}
	if err := VerifyPassword(user.PasswordHash, newPassword); err == nil {
		return fmt.Errorf("%w: new password must differ from the current one", ErrInvalidInput)
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.store.Users(ctx).UpdatePassword(ctx, userID, hash)
}

// ChangeRole updates a principal's role. Authorization happens at the HTTP
// boundary; this is the privileged provisioning path.
func (s *Service) ChangeRole(ctx context.Context, userID string, role Role) error {
	if _, err := s.store.Users(ctx).Find(ctx, userID); err != nil {
		return err
	}
	return s.store.Users(ctx).UpdateRole(ctx, userID, role)
}

// DeleteUser removes an account after confirming its password.
func (s *Service) DeleteUser(ctx context.Context, userID, password string) error {
	user, err := s.store.Users(ctx).Find(ctx, userID)
	if err != nil {
		return err
	}
	if err := VerifyPassword(user.PasswordHash, password); err != nil {
		return fmt.Errorf("%w: wrong password", ErrUnauthorized)
	}
	return s.store.Users(ctx).Delete(ctx, userID)
}

// mintPair signs an access token and stores a fresh refresh credential,
// replacing any previous one for the user.
func (s *Service) mintPair(ctx context.Context, user *User) (TokenPair, error) {
	access, exp, err := s.codec.Create(user.ID, user.Email, user.Role)
	if err != nil {
		return TokenPair{}, err
	}
	record := &RefreshToken{
		UserID: user.ID,
		Token:  uuid.NewString(),
		Status: StatusValid,
	}
	if err := s.store.RefreshTokens(ctx).Save(ctx, record); err != nil {
		return TokenPair{}, err
	}
	return TokenPair{
		AccessToken:     access,
		RefreshToken:    record.Token,
		AccessExpiresAt: exp,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}

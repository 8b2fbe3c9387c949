package auth

import "context"

// Store describes persistence operations required by the auth subsystem.
type Store interface {
	Users(ctx context.Context) UserStore
	RefreshTokens(ctx context.Context) RefreshTokenStore
}

// UserStore is the identity directory: registered principals looked up by id
// or unique email.
type UserStore interface {
	Create(ctx context.Context, u *User) error
	Find(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	UpdateRole(ctx context.Context, userID string, role Role) error
	Delete(ctx context.Context, userID string) error
}

// RefreshTokenStore is the system of record for credential revocation.
// Save replaces any existing row for the same user; UpdateStatus must be
// atomic at single-record granularity.
type RefreshTokenStore interface {
	Save(ctx context.Context, tok *RefreshToken) error
	FindByToken(ctx context.Context, token string) (*RefreshToken, error)
	FindByUser(ctx context.Context, userID string) (*RefreshToken, error)
	UpdateStatus(ctx context.Context, userID string, status TokenStatus) error
}

package auth

import (
	"context"
	"database/sql"

	"tasklane.org/internal/ids"
)

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Users(ctx context.Context) UserStore { return &pgUserStore{db: s.db} }
func (s *PGStore) RefreshTokens(ctx context.Context) RefreshTokenStore {
	return &pgTokenStore{db: s.db}
}

// User store ---------------------------------------------------------------
type pgUserStore struct{ db *sql.DB }

func (s *pgUserStore) Create(ctx context.Context, u *User) error {
	if u.ID == "" {
		u.ID = ids.New()
	}
	return s.db.QueryRowContext(ctx,
		`insert into users(id, email, password_hash, role) values($1,$2,$3,$4)
		 returning created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, string(u.Role),
	).Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (s *pgUserStore) Find(ctx context.Context, id string) (*User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`select id, email, password_hash, role, created_at, updated_at from users where id=$1`, id))
}

func (s *pgUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`select id, email, password_hash, role, created_at, updated_at from users where email=$1`, email))
}

func (s *pgUserStore) scanUser(row *sql.Row) (*User, error) {
	var (
		u    User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.Role = Role(role)
	return &u, nil
}

func (s *pgUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`select exists(select 1 from users where email=$1)`, email).Scan(&exists)
	return exists, err
}

func (s *pgUserStore) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	return s.execOne(ctx,
		`update users set password_hash=$2, updated_at=now() where id=$1`, userID, passwordHash)
}

func (s *pgUserStore) UpdateRole(ctx context.Context, userID string, role Role) error {
	return s.execOne(ctx,
		`update users set role=$2, updated_at=now() where id=$1`, userID, string(role))
}

func (s *pgUserStore) Delete(ctx context.Context, userID string) error {
	return s.execOne(ctx, `delete from users where id=$1`, userID)
}

func (s *pgUserStore) execOne(ctx context.Context, query string, args ...any) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Refresh token store ------------------------------------------------------
//
// Replace-on-write table keyed by user id: a new login supersedes the prior
// credential via upsert, status mutation is a single-row update.
type pgTokenStore struct{ db *sql.DB }

func (s *pgTokenStore) Save(ctx context.Context, tok *RefreshToken) error {
	return s.db.QueryRowContext(ctx,
		`insert into refresh_tokens(user_id, token, status) values($1,$2,$3)
		 on conflict (user_id) do update
		 set token = excluded.token, status = excluded.status, updated_at = now()
		 returning created_at, updated_at`,
		tok.UserID, tok.Token, string(tok.Status),
	).Scan(&tok.CreatedAt, &tok.UpdatedAt)
}

func (s *pgTokenStore) FindByToken(ctx context.Context, token string) (*RefreshToken, error) {
	return s.scanToken(s.db.QueryRowContext(ctx,
		`select user_id, token, status, created_at, updated_at from refresh_tokens where token=$1`, token))
}

func (s *pgTokenStore) FindByUser(ctx context.Context, userID string) (*RefreshToken, error) {
	return s.scanToken(s.db.QueryRowContext(ctx,
		`select user_id, token, status, created_at, updated_at from refresh_tokens where user_id=$1`, userID))
}

func (s *pgTokenStore) scanToken(row *sql.Row) (*RefreshToken, error) {
	var (
		rec    RefreshToken
		status string
	)
	if err := row.Scan(&rec.UserID, &rec.Token, &status, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	rec.Status = TokenStatus(status)
	return &rec, nil
}

func (s *pgTokenStore) UpdateStatus(ctx context.Context, userID string, status TokenStatus) error {
	res, err := s.db.ExecContext(ctx,
		`update refresh_tokens set status=$2, updated_at=now() where user_id=$1`,
		userID, string(status))
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

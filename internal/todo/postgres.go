package todo

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

func (s *PGStore) CreateTodo(ctx context.Context, t *Todo) error {
	if t.ID == "" {
		t.ID = ids.New()
	}
	return s.db.QueryRowContext(ctx,
		`insert into todos(id, user_id, title, contents) values($1,$2,$3,$4)
		 returning created_at, updated_at`,
		t.ID, t.UserID, t.Title, t.Contents,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
}

func (s *PGStore) GetTodo(ctx context.Context, id string) (*Todo, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, user_id, title, contents, created_at, updated_at from todos where id=$1`, id)
	var t Todo
	if err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Contents, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *PGStore) ListTodos(ctx context.Context, offset, limit int) ([]Todo, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `select count(*) from todos`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx,
		`select id, user_id, title, contents, created_at, updated_at
		 from todos order by updated_at desc, id desc limit $1 offset $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []Todo
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Contents, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, 0, err
		}
		items = append(items, t)
	}
	return items, total, rows.Err()
}

func (s *PGStore) UpdateTodo(ctx context.Context, t *Todo) error {
	return s.execOne(ctx,
		`update todos set title=$2, contents=$3, updated_at=now() where id=$1`,
		t.ID, t.Title, t.Contents)
}

func (s *PGStore) DeleteTodo(ctx context.Context, id string) error {
	return s.execOne(ctx, `delete from todos where id=$1`, id)
}

func (s *PGStore) CreateComment(ctx context.Context, c *Comment) error {
	if c.ID == "" {
		c.ID = ids.New()
	}
	return s.db.QueryRowContext(ctx,
		`insert into comments(id, todo_id, user_id, contents) values($1,$2,$3,$4)
		 returning created_at, updated_at`,
		c.ID, c.TodoID, c.UserID, c.Contents,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (s *PGStore) GetComment(ctx context.Context, id string) (*Comment, error) {
	row := s.db.QueryRowContext(ctx,
		`select id, todo_id, user_id, contents, created_at, updated_at from comments where id=$1`, id)
	var c Comment
	if err := row.Scan(&c.ID, &c.TodoID, &c.UserID, &c.Contents, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *PGStore) ListComments(ctx context.Context, todoID string) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, todo_id, user_id, contents, created_at, updated_at
		 from comments where todo_id=$1 order by created_at asc`, todoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.TodoID, &c.UserID, &c.Contents, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *PGStore) UpdateComment(ctx context.Context, c *Comment) error {
	return s.execOne(ctx,
		`update comments set contents=$2, updated_at=now() where id=$1`, c.ID, c.Contents)
}

func (s *PGStore) DeleteComment(ctx context.Context, id string) error {
	return s.execOne(ctx, `delete from comments where id=$1`, id)
}

func (s *PGStore) execOne(ctx context.Context, query string, args ...any) error {
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

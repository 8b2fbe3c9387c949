package todo

import (
	"context"
	"fmt"
	"strings"

	"tasklane.org/internal/auth"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Service implements todo and comment operations with ownership checks.
// Authorization against roles happens at the HTTP boundary; this layer only
// enforces authorship of mutations.
type Service struct {
	store Store
}

// NewService constructs the todo service.
func NewService(store Store) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("todo: store is required")
	}
	return &Service{store: store}, nil
}

// CreateTodo saves a new todo owned by the caller.
func (s *Service) CreateTodo(ctx context.Context, actor auth.AuthUser, title, contents string) (*Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	t := &Todo{
		UserID:   actor.ID,
		Title:    title,
		Contents: contents,
	}
	if err := s.store.CreateTodo(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// GetTodo returns a single todo.
func (s *Service) GetTodo(ctx context.Context, id string) (*Todo, error) {
	return s.store.GetTodo(ctx, id)
}

// ListTodos returns one page ordered by modification time descending.
// Pages are 1-based.
func (s *Service) ListTodos(ctx context.Context, page, size int) (Page, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	items, total, err := s.store.ListTodos(ctx, (page-1)*size, size)
	if err != nil {
		return Page{}, err
	}
	return Page{Items: items, Page: page, Size: size, Total: total}, nil
}

// UpdateTodo applies partial changes; only the author may update. Empty
// fields keep their previous value.
func (s *Service) UpdateTodo(ctx context.Context, actor auth.AuthUser, id, title, contents string) (*Todo, error) {
	t, err := s.store.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != actor.ID {
		return nil, ErrNotOwner
	}
	if strings.TrimSpace(title) != "" {
		t.Title = strings.TrimSpace(title)
	}
	if contents != "" {
		t.Contents = contents
	}
	if err := s.store.UpdateTodo(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// DeleteTodo removes a todo; only the author may delete through this path.
func (s *Service) DeleteTodo(ctx context.Context, actor auth.AuthUser, id string) error {
	t, err := s.store.GetTodo(ctx, id)
	if err != nil {
		return err
	}
	if t.UserID != actor.ID {
		return ErrNotOwner
	}
	return s.store.DeleteTodo(ctx, id)
}

// AdminDeleteTodo removes any todo regardless of author. The caller must have
// passed the role gate.
func (s *Service) AdminDeleteTodo(ctx context.Context, id string) error {
	if _, err := s.store.GetTodo(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteTodo(ctx, id)
}

// CreateComment attaches a comment to an existing todo.
func (s *Service) CreateComment(ctx context.Context, actor auth.AuthUser, todoID, contents string) (*Comment, error) {
	contents = strings.TrimSpace(contents)
	if contents == "" {
		return nil, fmt.Errorf("%w: contents are required", ErrInvalidInput)
	}
	if _, err := s.store.GetTodo(ctx, todoID); err != nil {
		return nil, err
	}
	c := &Comment{
		TodoID:   todoID,
		UserID:   actor.ID,
		Contents: contents,
	}
	if err := s.store.CreateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListComments returns all comments for a todo in creation order.
func (s *Service) ListComments(ctx context.Context, todoID string) ([]Comment, error) {
	if _, err := s.store.GetTodo(ctx, todoID); err != nil {
		return nil, err
	}
	return s.store.ListComments(ctx, todoID)
}

// UpdateComment replaces a comment's contents; only the author may update.
func (s *Service) UpdateComment(ctx context.Context, actor auth.AuthUser, id, contents string) (*Comment, error) {
	contents = strings.TrimSpace(contents)
	if contents == "" {
		return nil, fmt.Errorf("%w: contents are required", ErrInvalidInput)
	}
	c, err := s.store.GetComment(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != actor.ID {
		return nil, ErrNotOwner
	}
	c.Contents = contents
	if err := s.store.UpdateComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteComment removes a comment; only the author may delete through this path.
func (s *Service) DeleteComment(ctx context.Context, actor auth.AuthUser, id string) error {
	c, err := s.store.GetComment(ctx, id)
	if err != nil {
		return err
	}
	if c.UserID != actor.ID {
		return ErrNotOwner
	}
	return s.store.DeleteComment(ctx, id)
}

// AdminDeleteComment removes any comment regardless of author.
func (s *Service) AdminDeleteComment(ctx context.Context, id string) error {
	if _, err := s.store.GetComment(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteComment(ctx, id)
}

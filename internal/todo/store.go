package todo

import "context"

// Store describes persistence operations for todos and comments.
type Store interface {
	CreateTodo(ctx context.Context, t *Todo) error
	GetTodo(ctx context.Context, id string) (*Todo, error)
	ListTodos(ctx context.Context, offset, limit int) ([]Todo, int, error)
	UpdateTodo(ctx context.Context, t *Todo) error
	DeleteTodo(ctx context.Context, id string) error

	CreateComment(ctx context.Context, c *Comment) error
	GetComment(ctx context.Context, id string) (*Comment, error)
	ListComments(ctx context.Context, todoID string) ([]Comment, error)
	UpdateComment(ctx context.Context, c *Comment) error
	DeleteComment(ctx context.Context, id string) error
}

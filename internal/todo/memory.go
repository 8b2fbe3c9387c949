package todo

import (
	"context"
	"sort"
	"sync"
	"time"

	"tasklane.org/internal/ids"
)

// MemStore implements Store with in-process concurrency safety. Used by tests
// and by dev mode when no database DSN is configured.
type MemStore struct {
	mu       sync.RWMutex
	todos    map[string]*Todo
	comments map[string]*Comment
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		todos:    make(map[string]*Todo),
		comments: make(map[string]*Comment),
	}
}

func (s *MemStore) CreateTodo(ctx context.Context, t *Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == "" {
		t.ID = ids.New()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	clone := *t
	s.todos[t.ID] = &clone
	return nil
}

func (s *MemStore) GetTodo(ctx context.Context, id string) (*Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.todos[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *t
	return &out, nil
}

func (s *MemStore) ListTodos(ctx context.Context, offset, limit int) ([]Todo, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]Todo, 0, len(s.todos))
	for _, t := range s.todos {
		all = append(all, *t)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].UpdatedAt.Equal(all[j].UpdatedAt) {
			return all[i].UpdatedAt.After(all[j].UpdatedAt)
		}
		return all[i].ID > all[j].ID
	})
	total := len(all)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (s *MemStore) UpdateTodo(ctx context.Context, t *Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.todos[t.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Title = t.Title
	stored.Contents = t.Contents
	stored.UpdatedAt = time.Now().UTC()
	t.UpdatedAt = stored.UpdatedAt
	return nil
}

func (s *MemStore) DeleteTodo(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	for cid, c := range s.comments {
		if c.TodoID == id {
			delete(s.comments, cid)
		}
	}
	return nil
}

func (s *MemStore) CreateComment(ctx context.Context, c *Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = ids.New()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	clone := *c
	s.comments[c.ID] = &clone
	return nil
}

func (s *MemStore) GetComment(ctx context.Context, id string) (*Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.comments[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *c
	return &out, nil
}

func (s *MemStore) ListComments(ctx context.Context, todoID string) ([]Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Comment
	for _, c := range s.comments {
		if c.TodoID == todoID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) UpdateComment(ctx context.Context, c *Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.comments[c.ID]
	if !ok {
		return ErrNotFound
	}
	stored.Contents = c.Contents
	stored.UpdatedAt = time.Now().UTC()
	c.UpdatedAt = stored.UpdatedAt
	return nil
}

func (s *MemStore) DeleteComment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.comments[id]; !ok {
		return ErrNotFound
	}
	delete(s.comments, id)
	return nil
}

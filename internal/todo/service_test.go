package todo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"tasklane.org/internal/auth"
)

var (
	alice = auth.AuthUser{ID: "user-alice", Email: "alice@a.com", Role: auth.RoleUser}
	bob   = auth.AuthUser{ID: "user-bob", Email: "bob@b.com", Role: auth.RoleUser}
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(NewMemStore())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCreateAndGetTodo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, alice, "write report", "quarterly numbers")
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}
	if created.ID == "" || created.UserID != alice.ID {
		t.Fatalf("unexpected todo: %+v", created)
	}

	got, err := svc.GetTodo(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTodo: %v", err)
	}
	if got.Title != "write report" {
		t.Fatalf("unexpected title: %s", got.Title)
	}

	if _, err := svc.CreateTodo(ctx, alice, "  ", "x"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank title, got %v", err)
	}
}

func TestListTodosPagination(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if _, err := svc.CreateTodo(ctx, alice, fmt.Sprintf("task %02d", i), ""); err != nil {
			t.Fatalf("CreateTodo: %v", err)
		}
	}

	page, err := svc.ListTodos(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(page.Items) != 10 || page.Total != 25 {
		t.Fatalf("unexpected page: %d items, total %d", len(page.Items), page.Total)
	}

	last, err := svc.ListTodos(ctx, 3, 10)
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(last.Items) != 5 {
		t.Fatalf("expected 5 items on last page, got %d", len(last.Items))
	}

	empty, err := svc.ListTodos(ctx, 4, 10)
	if err != nil {
		t.Fatalf("ListTodos: %v", err)
	}
	if len(empty.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(empty.Items))
	}
}

func TestUpdateTodoOwnership(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateTodo(ctx, alice, "original", "body")
	if err != nil {
		t.Fatalf("CreateTodo: %v", err)
	}

	if _, err := svc.UpdateTodo(ctx, bob, created.ID, "hijacked", ""); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}

	updated, err := svc.UpdateTodo(ctx, alice, created.ID, "renamed", "")
	if err != nil {
		t.Fatalf("UpdateTodo: %v", err)
	}
	if updated.Title != "renamed" || updated.Contents != "body" {
		t.Fatalf("partial update broken: %+v", updated)
	}
}

func TestDeleteTodo(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, alice, "temp", "")
	if err := svc.DeleteTodo(ctx, bob, created.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := svc.DeleteTodo(ctx, alice, created.ID); err != nil {
		t.Fatalf("DeleteTodo: %v", err)
	}
	if _, err := svc.GetTodo(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdminDeleteBypassesOwnership(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, alice, "temp", "")
	if err := svc.AdminDeleteTodo(ctx, created.ID); err != nil {
		t.Fatalf("AdminDeleteTodo: %v", err)
	}
	if err := svc.AdminDeleteTodo(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestComments(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, _ := svc.CreateTodo(ctx, alice, "with comments", "")

	if _, err := svc.CreateComment(ctx, bob, "missing-todo", "hi"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing todo, got %v", err)
	}

	c, err := svc.CreateComment(ctx, bob, created.ID, "looks good")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	list, err := svc.ListComments(ctx, created.ID)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(list) != 1 || list[0].Contents != "looks good" {
		t.Fatalf("unexpected comments: %+v", list)
	}

	if _, err := svc.UpdateComment(ctx, alice, c.ID, "edited"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.UpdateComment(ctx, bob, c.ID, "edited"); err != nil {
		t.Fatalf("UpdateComment: %v", err)
	}

	if err := svc.DeleteComment(ctx, alice, c.ID); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if err := svc.DeleteComment(ctx, bob, c.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
}

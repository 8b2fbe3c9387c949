package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tasklane.org/internal/auth"
)

func TestRequireRoleAllowsMatch(t *testing.T) {
	called := false
	h := RequireRole(auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/todos/abc", nil)
	ctx := auth.ContextWithUser(req.Context(), auth.AuthUser{ID: "u1", Email: "a@a.com", Role: auth.RoleAdmin})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))

	if !called {
		t.Fatal("expected the wrapped handler to run")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRequireRoleDeniesMismatch(t *testing.T) {
	h := RequireRole(auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a denied role")
	}))

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/todos/abc", nil)
	ctx := auth.ContextWithUser(req.Context(), auth.AuthUser{ID: "u1", Email: "a@a.com", Role: auth.RoleUser})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") == "" {
		t.Fatal("expected WWW-Authenticate header on denial")
	}
}

func TestRequireRoleDeniesMissingIdentity(t *testing.T) {
	h := RequireRole(auth.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without an identity")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/v1/admin/todos/abc", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

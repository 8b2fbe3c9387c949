package obs

import "testing"

func TestCanonicalPath(t *testing.T) {
	cases := map[string]string{
		"":                               "/",
		"/metrics":                       "/metrics",
		"/v1/todos/01J5ABC":              "/v1/todos/:id",
		"/v1/todos/01J5ABC/comments":     "/v1/todos/:id/comments",
		"/v1/comments/01J5XYZ":           "/v1/comments/:id",
		"/v1/admin/users/01J5DEF/role":   "/v1/admin/users/:id/role",
		"/v1/admin/todos/01J5GHI":        "/v1/admin/todos/:id",
		"/v1/admin/comments/01J5JKL":     "/v1/admin/comments/:id",
		"/v1/auth/login":                 "/v1/auth/login",
		"/v1/todos":                      "/v1/todos",
		"/v1/todos?page=2&size=10":       "/v1/todos",
		"/v1/todos/01J5ABC/unexpected":   "/v1/todos/01J5ABC/unexpected",
	}
	for input, expected := range cases {
		if got := CanonicalPath(input); got != expected {
			t.Fatalf("CanonicalPath(%q)=%q, want %q", input, got, expected)
		}
	}
}

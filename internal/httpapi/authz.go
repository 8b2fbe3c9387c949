package httpapi

import (
	"net/http"

	"tasklane.org/internal/audit"
	"tasklane.org/internal/auth"
)

// RequireRole gates a handler behind a single-role equality check. The
// identity is read from request context (populated by withAuth); an audit
// line is written before the check. Denials surface a 401 with the
// structured error body.
func RequireRole(role auth.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := auth.UserFromContext(r.Context())
			if !ok {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, r, http.StatusUnauthorized, "authentication required")
				return
			}

			_ = audit.LogEvent(r.Context(), "authz.role_check", map[string]any{
				"path":          r.URL.Path,
				"required_role": string(role),
			})

			if user.Role != role {
				w.Header().Set("WWW-Authenticate", "Bearer")
				writeError(w, r, http.StatusUnauthorized, "non-admin access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

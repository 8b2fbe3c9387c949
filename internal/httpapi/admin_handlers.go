package httpapi

import (
	"net/http"
	"strings"

	"tasklane.org/internal/audit"
	"tasklane.org/internal/auth"
)

type changeRoleRequest struct {
	Role string `json:"role"`
}

// handleAdmin dispatches the privileged surface. RequireRole has already run;
// everything below assumes an admin identity in context.
func (a *API) handleAdmin(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/admin/")
	segments := strings.Split(path, "/")

	switch {
	case len(segments) == 3 && segments[0] == "users" && segments[2] == "role" && segments[1] != "":
		a.adminChangeRole(w, r, segments[1])
	case len(segments) == 2 && segments[0] == "todos" && segments[1] != "":
		a.adminDeleteTodo(w, r, segments[1])
	case len(segments) == 2 && segments[0] == "comments" && segments[1] != "":
		a.adminDeleteComment(w, r, segments[1])
	default:
		writeError(w, r, http.StatusNotFound, "resource not found")
	}
}

func (a *API) adminChangeRole(w http.ResponseWriter, r *http.Request, userID string) {
	if r.Method != http.MethodPatch {
		methodNotAllowed(w, r, http.MethodPatch)
		return
	}
	var req changeRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := a.auth.ChangeRole(r.Context(), userID, role); err != nil {
		handleAuthError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "admin.user.change_role", map[string]any{
		"target_user_id": userID,
		"role":           string(role),
	})
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) adminDeleteTodo(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, r, http.MethodDelete)
		return
	}
	if err := a.todos.AdminDeleteTodo(r.Context(), id); err != nil {
		handleTodoError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "admin.todo.delete", map[string]any{"todo_id": id})
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) adminDeleteComment(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w, r, http.MethodDelete)
		return
	}
	if err := a.todos.AdminDeleteComment(r.Context(), id); err != nil {
		handleTodoError(w, r, err)
		return
	}
	_ = audit.LogEvent(r.Context(), "admin.comment.delete", map[string]any{"comment_id": id})
	w.WriteHeader(http.StatusNoContent)
}

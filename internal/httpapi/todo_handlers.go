package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

type todoRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

type commentRequest struct {
	Contents string `json:"contents"`
}

func (a *API) handleTodosCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		a.createTodo(w, r)
	case http.MethodGet:
		a.listTodos(w, r)
	default:
		methodNotAllowed(w, r, http.MethodPost, http.MethodGet)
	}
}

func (a *API) handleTodoResource(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/v1/todos/")
	if path == "" {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	if strings.HasSuffix(path, "/comments") {
		id := strings.TrimSuffix(strings.TrimSuffix(path, "/comments"), "/")
		if id == "" || strings.Contains(id, "/") {
			writeError(w, r, http.StatusNotFound, "resource not found")
			return
		}
		a.handleTodoComments(w, r, id)
		return
	}

	if strings.Contains(path, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		a.getTodo(w, r, path)
	case http.MethodPut:
		a.updateTodo(w, r, path)
	case http.MethodDelete:
		a.deleteTodo(w, r, path)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}

func (a *API) createTodo(w http.ResponseWriter, r *http.Request) {
	user, ok := identity(w, r)
	if !ok {
		return
	}
	var req todoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	created, err := a.todos.CreateTodo(r.Context(), user, req.Title, req.Contents)
	if err != nil {
		handleTodoError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/todos/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) listTodos(w http.ResponseWriter, r *http.Request) {
	if _, ok := identity(w, r); !ok {
		return
	}
	page := queryInt(r, "page", 1)
	size := queryInt(r, "size", 10)
	result, err := a.todos.ListTodos(r.Context(), page, size)
	if err != nil {
		handleTodoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) getTodo(w http.ResponseWriter, r *http.Request, id string) {
	if _, ok := identity(w, r); !ok {
		return
	}
	t, err := a.todos.GetTodo(r.Context(), id)
	if err != nil {
		handleTodoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (a *API) updateTodo(w http.ResponseWriter, r *http.Request, id string) {
	user, ok := identity(w, r)
	if !ok {
		return
	}
	var req todoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	updated, err := a.todos.UpdateTodo(r.Context(), user, id, req.Title, req.Contents)
	if err != nil {
		handleTodoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) deleteTodo(w http.ResponseWriter, r *http.Request, id string) {
	user, ok := identity(w, r)
	if !ok {
		return
	}
	if err := a.todos.DeleteTodo(r.Context(), user, id); err != nil {
		handleTodoError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) handleTodoComments(w http.ResponseWriter, r *http.Request, todoID string) {
	switch r.Method {
	case http.MethodPost:
		user, ok := identity(w, r)
		if !ok {
			return
		}
		var req commentRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		created, err := a.todos.CreateComment(r.Context(), user, todoID, req.Contents)
		if err != nil {
			handleTodoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	case http.MethodGet:
		if _, ok := identity(w, r); !ok {
			return
		}
		list, err := a.todos.ListComments(r.Context(), todoID)
		if err != nil {
			handleTodoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	default:
		methodNotAllowed(w, r, http.MethodPost, http.MethodGet)
	}
}

func (a *API) handleCommentResource(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/v1/comments/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusNotFound, "resource not found")
		return
	}
	user, ok := identity(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req commentRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		updated, err := a.todos.UpdateComment(r.Context(), user, id, req.Contents)
		if err != nil {
			handleTodoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	case http.MethodDelete:
		if err := a.todos.DeleteComment(r.Context(), user, id); err != nil {
			handleTodoError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		methodNotAllowed(w, r, http.MethodPut, http.MethodDelete)
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 1 {
		return fallback
	}
	return val
}

package todo

import "time"

// Todo is a task owned by one user.
type Todo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Comment is attached to a todo.
type Comment struct {
	ID        string    `json:"id"`
	TodoID    string    `json:"todo_id"`
	UserID    string    `json:"user_id"`
	Contents  string    `json:"contents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Page carries one page of todos ordered by modification time descending.
type Page struct {
	Items []Todo `json:"items"`
	Page  int    `json:"page"`
	Size  int    `json:"size"`
	Total int    `json:"total"`
}

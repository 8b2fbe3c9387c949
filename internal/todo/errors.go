package todo

import "errors"

var (
	ErrNotFound     = errors.New("todo: not found")
	ErrNotOwner     = errors.New("todo: not the author")
	ErrInvalidInput = errors.New("todo: invalid input")
)

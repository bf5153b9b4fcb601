package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mkorolev/focusdeck/internal/client/models"
)

// todoQuery translates a TodoFilter into query parameters. A Status of
// "completed"/"pending" maps to the boolean completed parameter; any other
// value omits it.
func todoQuery(f models.TodoFilter) url.Values {
	q := url.Values{}
	switch f.Status {
	case "completed":
		q.Set("completed", "true")
	case "pending":
		q.Set("completed", "false")
	}
	if f.Priority != "" {
		q.Set("priority", f.Priority)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	return q
}

// ListTodos returns the user's todos, optionally filtered.
func (c *HTTPClient) ListTodos(ctx context.Context, token string, f models.TodoFilter) ([]models.Todo, error) {
	var todos []models.Todo
	err := c.do(ctx, http.MethodGet, "/todos/", token, todoQuery(f), nil, &todos)
	return todos, err
}

// CreateTodo creates a todo and returns the server's copy.
func (c *HTTPClient) CreateTodo(ctx context.Context, token string, in models.TodoCreate) (models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, http.MethodPost, "/todos/", token, nil, in, &todo)
	return todo, err
}

// UpdateTodo applies a partial update and returns the server's copy.
func (c *HTTPClient) UpdateTodo(ctx context.Context, token string, id int, in models.TodoUpdate) (models.Todo, error) {
	var todo models.Todo
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/todos/%d", id), token, nil, in, &todo)
	return todo, err
}

// DeleteTodo removes a todo.
func (c *HTTPClient) DeleteTodo(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/todos/%d", id), token, nil, nil, nil)
}

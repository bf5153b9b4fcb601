package services

import (
	"context"
	"slices"
	"sync"

	"github.com/mkorolev/focusdeck/internal/client/models"
	"github.com/mkorolev/focusdeck/internal/common"
	"github.com/mkorolev/focusdeck/internal/logging"
)

type todoAPI interface {
	ListTodos(ctx context.Context, token string, f models.TodoFilter) ([]models.Todo, error)
	CreateTodo(ctx context.Context, token string, in models.TodoCreate) (models.Todo, error)
	UpdateTodo(ctx context.Context, token string, id int, in models.TodoUpdate) (models.Todo, error)
	DeleteTodo(ctx context.Context, token string, id int) error
}

// TodoService owns the todo collection plus its derived category set: the
// distinct non-empty categories present across the loaded todos, recomputed
// after every mutation so the two can never drift apart.
//
// Overlapping fetches follow last-request-wins: each fetch takes a
// generation number and only the latest generation may commit its response.
// Mutations are serialized by a per-service lock.
type TodoService struct {
	api   todoAPI
	token string
	log   logging.Logger

	opMu sync.Mutex // serializes create/update/delete

	mu         sync.Mutex
	filter     models.TodoFilter
	gen        uint64
	todos      []models.Todo
	categories []string
	loading    bool
	lastErr    string
}

// NewTodoService builds a service for one screen mount. token may be empty
// for an unauthenticated screen; fetches are then no-ops.
func NewTodoService(api todoAPI, token string, filter models.TodoFilter, log logging.Logger) *TodoService {
	return &TodoService{api: api, token: token, filter: filter, log: log}
}

// Fetch loads the collection with the current filter. Without a token it
// does nothing: prior state and error are left untouched. A fetch that was
// superseded by a newer one discards its response.
func (s *TodoService) Fetch(ctx context.Context) error {
	if s.token == "" {
		return nil
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	filter := s.filter
	s.loading = true
	s.mu.Unlock()

	todos, err := s.api.ListTodos(ctx, s.token, filter)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil // a newer fetch owns the state now
	}
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return err
	}
	s.todos = todos
	s.categories = distinctCategories(todos)
	s.lastErr = ""
	return nil
}

// SetFilter replaces the filter and refetches, mirroring a screen changing
// its filter controls.
func (s *TodoService) SetFilter(ctx context.Context, f models.TodoFilter) error {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	return s.Fetch(ctx)
}

// Create posts a new todo and prepends the server's copy to the collection.
func (s *TodoService) Create(ctx context.Context, in models.TodoCreate) (models.Todo, error) {
	if s.token == "" {
		return models.Todo{}, common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	todo, err := s.api.CreateTodo(ctx, s.token, in)
	if err != nil {
		s.setErr(err)
		return models.Todo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = append([]models.Todo{todo}, s.todos...)
	s.categories = distinctCategories(s.todos)
	return todo, nil
}

// Update applies a partial update and replaces the matching local todo.
// The identifier is pinned to the requested id, guarding against a response
// that omits or alters it.
func (s *TodoService) Update(ctx context.Context, id int, in models.TodoUpdate) (models.Todo, error) {
	if s.token == "" {
		return models.Todo{}, common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	updated, err := s.api.UpdateTodo(ctx, s.token, id, in)
	if err != nil {
		s.setErr(err)
		return models.Todo{}, err
	}
	updated.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		if s.todos[i].ID == id {
			s.todos[i] = updated
			break
		}
	}
	s.categories = distinctCategories(s.todos)
	return updated, nil
}

// Delete removes a todo; its category leaves the derived set when no other
// remaining todo references it.
func (s *TodoService) Delete(ctx context.Context, id int) error {
	if s.token == "" {
		return common.ErrUnauthorized
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.api.DeleteTodo(ctx, s.token, id); err != nil {
		s.setErr(err)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.todos = slices.DeleteFunc(s.todos, func(t models.Todo) bool { return t.ID == id })
	s.categories = distinctCategories(s.todos)
	return nil
}

// Todos returns a copy of the current collection, most recently created first.
func (s *TodoService) Todos() []models.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.todos)
}

// Categories returns a copy of the derived category set in first-seen order.
func (s *TodoService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

// Loading reports whether a fetch is in flight.
func (s *TodoService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, or "" after a clean fetch.
func (s *TodoService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *TodoService) setErr(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
}

func distinctCategories(todos []models.Todo) []string {
	seen := make(map[string]struct{}, len(todos))
	out := make([]string, 0, len(todos))
	for _, t := range todos {
		if t.Category == "" {
			continue
		}
		if _, ok := seen[t.Category]; ok {
			continue
		}
		seen[t.Category] = struct{}{}
		out = append(out, t.Category)
	}
	return out
}

package models

import "time"

// Todo is a single task owned by the current user. An empty Category means
// the task is uncategorized.
type Todo struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	OwnerID     int        `json:"owner_id"`
}

// TodoCreate is the create-request payload.
type TodoCreate struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority,omitempty"`
	Category    string     `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TodoUpdate carries only the fields to change; nil fields are left as-is
// by the server.
type TodoUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
	Priority    *string    `json:"priority,omitempty"`
	Category    *string    `json:"category,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// TodoFilter selects a subset of the todo list.
//
// Status accepts "completed" or "pending", which map to the boolean
// `completed` query parameter; any other value omits the parameter.
type TodoFilter struct {
	Status   string
	Priority string
	Search   string
	Category string
}

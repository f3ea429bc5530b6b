package api

import (
	"github.com/taskboard-io/taskboard/internal/domain"
)

// Common request/response structures

// LoginRequest defines the payload for the login endpoint. The username
// field carries the account email.
type LoginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateUserRequest defines the payload for the user registration endpoint.
type CreateUserRequest struct {
	Email     string `json:"email"     validate:"required,email"`
	FirstName string `json:"firstName" validate:"omitempty,max=255"`
	LastName  string `json:"lastName"  validate:"omitempty,max=255"`
	Password  string `json:"password"  validate:"required,min=3,max=72"`
}

// UpdateUserRequest defines the payload for partial user updates. Absent
// fields are left untouched; explicit nulls are rejected for email and
// password and clear the name fields.
type UpdateUserRequest struct {
	Email     domain.Patch[string] `json:"email"`
	FirstName domain.Patch[string] `json:"firstName"`
	LastName  domain.Patch[string] `json:"lastName"`
	Password  domain.Patch[string] `json:"password"`
}

// CreateTaskStatusRequest defines the payload for creating a task status.
type CreateTaskStatusRequest struct {
	Name string `json:"name" validate:"required,min=1"`
	Slug string `json:"slug" validate:"required,min=1"`
}

// UpdateTaskStatusRequest defines the payload for partial task status updates.
type UpdateTaskStatusRequest struct {
	Name domain.Patch[string] `json:"name"`
	Slug domain.Patch[string] `json:"slug"`
}

// CreateLabelRequest defines the payload for creating a label.
type CreateLabelRequest struct {
	Name string `json:"name" validate:"required,min=3,max=1000"`
}

// UpdateLabelRequest defines the payload for partial label updates.
type UpdateLabelRequest struct {
	Name domain.Patch[string] `json:"name"`
}

// CreateTaskRequest defines the payload for creating a task. Status is the
// slug of an existing task status; taskLabelIds reference existing labels.
type CreateTaskRequest struct {
	Title      string  `json:"title"  validate:"required,min=1"`
	Index      *int    `json:"index"`
	Content    string  `json:"content"`
	Status     string  `json:"status" validate:"required,min=1"`
	AssigneeID *int64  `json:"assignee_id"`
	LabelIDs   []int64 `json:"taskLabelIds"`
}

// UpdateTaskRequest defines the payload for partial task updates. Every
// field is tri-state: absent keeps the stored value, null clears it where
// the column is optional, and a value replaces it.
type UpdateTaskRequest struct {
	Title      domain.Patch[string]  `json:"title"`
	Index      domain.Patch[int]     `json:"index"`
	Content    domain.Patch[string]  `json:"content"`
	Status     domain.Patch[string]  `json:"status"`
	AssigneeID domain.Patch[int64]   `json:"assignee_id"`
	LabelIDs   domain.Patch[[]int64] `json:"taskLabelIds"`
}

package service

import (
	"time"

	"github.com/taskboard-io/taskboard/internal/domain"
)

// External views of the entities. Views carry id references and the status
// slug instead of nested records, and never include credential material.

// TaskView is the external representation of a task.
type TaskView struct {
	ID         int64     `json:"id"`
	Index      *int      `json:"index,omitempty"`
	Title      string    `json:"title"`
	Content    string    `json:"content,omitempty"`
	Status     string    `json:"status"`
	AssigneeID *int64    `json:"assignee_id,omitempty"`
	LabelIDs   []int64   `json:"taskLabelIds,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LabelView is the external representation of a label.
type LabelView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// TaskStatusView is the external representation of a task status.
type TaskStatusView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserView is the external representation of a user. The password hash is
// never part of any view.
type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewTaskView maps a task and the slug of its resolved status to a view.
func NewTaskView(task *domain.Task, statusSlug string) TaskView {
	return TaskView{
		ID:         task.ID,
		Index:      task.Index,
		Title:      task.Name,
		Content:    task.Description,
		Status:     statusSlug,
		AssigneeID: task.AssigneeID,
		LabelIDs:   task.LabelIDs,
		CreatedAt:  task.CreatedAt,
	}
}

// NewLabelView maps a label to its view.
func NewLabelView(label *domain.Label) LabelView {
	return LabelView{
		ID:        label.ID,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
	}
}

// NewTaskStatusView maps a task status to its view.
func NewTaskStatusView(status *domain.TaskStatus) TaskStatusView {
	return TaskStatusView{
		ID:        status.ID,
		Name:      status.Name,
		Slug:      status.Slug,
		CreatedAt: status.CreatedAt,
	}
}

// NewUserView maps a user to its view.
func NewUserView(user *domain.User) UserView {
	return UserView{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		CreatedAt: user.CreatedAt,
	}
}

package domain

import (
	"errors"
	"strings"
	"time"
)

// Common task validation errors
var (
	ErrEmptyTaskName   = errors.New("task name cannot be empty")
	ErrMissingStatusID = errors.New("task must reference a task status")
)

// Task represents a single work item. It stores id references to its
// status, optional assignee, and labels; the referenced records are
// resolved through the store when a view is materialized.
type Task struct {
	ID          int64
	Name        string
	Index       *int
	Description string
	StatusID    int64
	AssigneeID  *int64
	LabelIDs    []int64
	CreatedAt   time.Time
}

// NewTask creates a new Task with the given fields and stamps the creation
// time. The caller must have already resolved StatusID, AssigneeID, and
// LabelIDs against existing records. Returns an error if validation fails.
func NewTask(name string, index *int, description string, statusID int64, assigneeID *int64, labelIDs []int64) (*Task, error) {
	task := &Task{
		Name:        name,
		Index:       index,
		Description: description,
		StatusID:    statusID,
		AssigneeID:  assigneeID,
		LabelIDs:    labelIDs,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return ErrEmptyTaskName
	}

	if t.StatusID == 0 {
		return ErrMissingStatusID
	}

	return nil
}

// HasLabel reports whether the task references the given label.
func (t *Task) HasLabel(labelID int64) bool {
	for _, id := range t.LabelIDs {
		if id == labelID {
			return true
		}
	}
	return false
}

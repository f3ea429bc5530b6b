package domain

import (
	"errors"
	"strings"
	"time"
)

// Common task status validation errors
var (
	ErrEmptyStatusName = errors.New("task status name cannot be empty")
	ErrEmptyStatusSlug = errors.New("task status slug cannot be empty")
	ErrInvalidSlug     = errors.New("task status slug may contain only lowercase letters, digits, and underscores")
)

// TaskStatus represents a workflow state a task can be in. The slug is the
// stable identifier used by clients and task payloads in place of the
// numeric id.
type TaskStatus struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
}

// NewTaskStatus creates a new TaskStatus and stamps the creation time.
// Returns an error if validation fails.
func NewTaskStatus(name, slug string) (*TaskStatus, error) {
	status := &TaskStatus{
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	return status, nil
}

// Validate checks if the TaskStatus has valid data.
func (s *TaskStatus) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyStatusName
	}

	if s.Slug == "" {
		return ErrEmptyStatusSlug
	}

	for _, r := range s.Slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return ErrInvalidSlug
		}
	}

	return nil
}

package domain

import (
	"errors"
	"strings"
	"time"
)

// Label name length bounds, matching the persisted column constraint.
const (
	LabelNameMinLen = 3
	LabelNameMaxLen = 1000
)

// Common label validation errors
var (
	ErrEmptyLabelName    = errors.New("label name cannot be blank")
	ErrLabelNameTooShort = errors.New("label name must be at least 3 characters long")
	ErrLabelNameTooLong  = errors.New("label name must be at most 1000 characters long")
)

// Label represents a tag that can be attached to any number of tasks.
type Label struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// NewLabel creates a new Label and stamps the creation time.
// Returns an error if validation fails.
func NewLabel(name string) (*Label, error) {
	label := &Label{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := label.Validate(); err != nil {
		return nil, err
	}

	return label, nil
}

// Validate checks if the Label has valid data.
func (l *Label) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyLabelName
	}

	if len(l.Name) < LabelNameMinLen {
		return ErrLabelNameTooShort
	}

	if len(l.Name) > LabelNameMaxLen {
		return ErrLabelNameTooLong
	}

	return nil
}

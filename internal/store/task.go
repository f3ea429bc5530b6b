package store

import (
	"context"
	"database/sql"

	"github.com/taskboard-io/taskboard/internal/domain"
)

// TaskFilter describes the optional criteria for a filtered task listing.
// Nil fields impose no constraint; non-nil fields are ANDed together.
type TaskFilter struct {
	// TitleCont matches tasks whose name contains the string,
	// case-insensitively.
	TitleCont *string

	// AssigneeID matches tasks assigned to the given user.
	AssigneeID *int64

	// StatusSlug matches tasks whose status has the given slug.
	StatusSlug *string

	// LabelID matches tasks carrying the given label.
	LabelID *int64
}

// Empty reports whether no criterion is set.
func (f TaskFilter) Empty() bool {
	return f.TitleCont == nil && f.AssigneeID == nil && f.StatusSlug == nil && f.LabelID == nil
}

// TaskStore defines the interface for task data persistence.
// Tasks carry label id sets; implementations maintain the task_labels
// join rows together with the task row.
type TaskStore interface {
	// Create saves a new task and its label associations, assigning its ID.
	Create(ctx context.Context, task *domain.Task) error

	// List retrieves all tasks ordered by id, label ids included.
	List(ctx context.Context) ([]*domain.Task, error)

	// ListFiltered retrieves the tasks matching every set criterion in the
	// filter. A task appears at most once in the result even when matched
	// through the label join.
	ListFiltered(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID, label ids included.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Update modifies an existing task and replaces its label associations.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task and its label associations by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// ExistsByAssignee reports whether any task references the given user
	// as assignee. Used by the user-delete referential guard.
	ExistsByAssignee(ctx context.Context, userID int64) (bool, error)

	// ExistsByLabel reports whether any task carries the given label.
	// Used by the label-delete referential guard.
	ExistsByLabel(ctx context.Context, labelID int64) (bool, error)

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}

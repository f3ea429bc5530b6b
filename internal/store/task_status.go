package store

import (
	"context"
	"database/sql"

	"github.com/taskboard-io/taskboard/internal/domain"
)

// TaskStatusStore defines the interface for task status persistence.
type TaskStatusStore interface {
	// Create saves a new task status and assigns its ID.
	// Returns ErrSlugExists if the slug is already taken.
	Create(ctx context.Context, status *domain.TaskStatus) error

	// List retrieves all task statuses ordered by id.
	List(ctx context.Context) ([]*domain.TaskStatus, error)

	// GetByID retrieves a task status by its unique ID.
	// Returns ErrTaskStatusNotFound if the status does not exist.
	GetByID(ctx context.Context, id int64) (*domain.TaskStatus, error)

	// GetBySlug retrieves a task status by its slug.
	// Returns ErrTaskStatusNotFound if the status does not exist.
	GetBySlug(ctx context.Context, slug string) (*domain.TaskStatus, error)

	// Update modifies an existing task status.
	// Returns ErrTaskStatusNotFound if the status does not exist.
	// Returns ErrSlugExists if updating to a slug that already exists.
	Update(ctx context.Context, status *domain.TaskStatus) error

	// Delete removes a task status by ID.
	// Returns ErrTaskStatusNotFound if the status does not exist.
	// Returns ErrReferenced if tasks still reference the status.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new TaskStatusStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStatusStore
}

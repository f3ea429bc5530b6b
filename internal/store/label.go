package store

import (
	"context"
	"database/sql"

	"github.com/taskboard-io/taskboard/internal/domain"
)

// LabelStore defines the interface for label data persistence.
type LabelStore interface {
	// Create saves a new label and assigns its ID.
	// Returns ErrDuplicate if a label with the same name already exists.
	Create(ctx context.Context, label *domain.Label) error

	// List retrieves all labels ordered by id.
	List(ctx context.Context) ([]*domain.Label, error)

	// GetByID retrieves a label by its unique ID.
	// Returns ErrLabelNotFound if the label does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Label, error)

	// GetByName retrieves a label by its name.
	// Returns ErrLabelNotFound if the label does not exist.
	GetByName(ctx context.Context, name string) (*domain.Label, error)

	// GetByIDs retrieves the labels for the given id set. Returns
	// ErrLabelNotFound if any id has no matching label.
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Label, error)

	// Update modifies an existing label.
	// Returns ErrLabelNotFound if the label does not exist.
	Update(ctx context.Context, label *domain.Label) error

	// Delete removes a label by ID.
	// Returns ErrLabelNotFound if the label does not exist.
	// Returns ErrReferenced if tasks still carry the label.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new LabelStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) LabelStore
}

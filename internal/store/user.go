package store

import (
	"context"
	"database/sql"

	"github.com/taskboard-io/taskboard/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// List retrieves all users ordered by id.
	List(ctx context.Context) ([]*domain.User, error)

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user's details. The caller provides a
	// complete user object including HashedPassword.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrReferenced if tasks still reference the user as assignee.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	// The transaction is created and managed by the caller (typically a service).
	WithTx(tx *sql.Tx) UserStore
}

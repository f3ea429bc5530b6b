package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrTaskNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same email).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored, or when a write violates a database constraint.
	// Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrReferenced is returned when a delete would break referential
	// integrity because other records still point at the entity.
	ErrReferenced = errors.New("entity is referenced by other entities")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)

	// ErrTaskStatusNotFound indicates that the requested task status does not exist in the store.
	ErrTaskStatusNotFound = fmt.Errorf("%w: task status", ErrNotFound)

	// ErrLabelNotFound indicates that the requested label does not exist in the store.
	ErrLabelNotFound = fmt.Errorf("%w: label", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrSlugExists indicates that a task status with the given slug already exists.
	ErrSlugExists = fmt.Errorf("%w: slug", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// Entity-specific not found errors all wrap ErrNotFound, so a single
// errors.Is covers them.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

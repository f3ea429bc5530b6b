// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and stores
// (defined in internal/store) to fulfill application features.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes in one place.
var (
	// ErrForbidden indicates the acting principal is not permitted to mutate
	// the target resource. API layer maps this to HTTP 403 Forbidden.
	ErrForbidden = errors.New("operation not permitted for this principal")

	// ErrLabelInUse indicates a label cannot be deleted because tasks still
	// reference it. API layer maps this to HTTP 409 Conflict.
	ErrLabelInUse = errors.New("cannot delete label that is associated with tasks")

	// ErrUserHasTasks indicates a user cannot be deleted because tasks still
	// name them as assignee. API layer maps this to HTTP 409 Conflict.
	ErrUserHasTasks = errors.New("cannot delete user because they are assigned to one or more tasks")
)

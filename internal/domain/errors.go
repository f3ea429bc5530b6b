package domain

import "errors"

// Errors shared across entities. Entity-specific validation sentinels live
// next to their entity.
var (
	// ErrValidation is the base error for entity validation failures.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned for malformed or non-positive identifiers.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrUnauthorized is returned when the acting principal may not
	// modify the resource.
	ErrUnauthorized = errors.New("unauthorized operation")
)

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/service"
	"github.com/taskboard-io/taskboard/internal/service/auth"
	"github.com/taskboard-io/taskboard/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden

	// Not found errors. The entity-specific sentinels all wrap
	// store.ErrNotFound, so a single check covers them.
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrReferenced),
		errors.Is(err, service.ErrLabelInUse),
		errors.Is(err, service.ErrUserHasTasks):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	// Authorization errors
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, domain.ErrUnauthorized):
		return "You do not have permission to modify this resource"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, store.ErrTaskStatusNotFound):
		return "Task status not found"

	case errors.Is(err, store.ErrLabelNotFound):
		return "Label not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrSlugExists):
		return "Task status slug already exists"

	case errors.Is(err, service.ErrLabelInUse):
		return "Label is assigned to at least one task"

	case errors.Is(err, service.ErrUserHasTasks):
		return "User has assigned tasks"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, store.ErrReferenced):
		return "Resource is referenced by other records"

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	case isDomainValidationError(err),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail):
		return err.Error()

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError maps a service-layer error to its HTTP status and safe
// message and writes the response, logging the underlying error.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

// isDomainValidationError reports whether err is one of the field-level
// validation sentinels raised by domain entity Validate methods. Their
// messages are written for end users and safe to return verbatim.
func isDomainValidationError(err error) bool {
	validationErrs := []error{
		domain.ErrEmptyEmail,
		domain.ErrEmptyPassword,
		domain.ErrPasswordTooShort,
		domain.ErrPasswordTooLong,
		domain.ErrEmptyHashedPassword,
		domain.ErrEmptyTaskName,
		domain.ErrMissingStatusID,
		domain.ErrEmptyStatusName,
		domain.ErrEmptyStatusSlug,
		domain.ErrInvalidSlug,
		domain.ErrEmptyLabelName,
		domain.ErrLabelNameTooShort,
		domain.ErrLabelNameTooLong,
	}
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Check if this is likely a validator package error message
	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'LoginRequest.Username' Error:Field validation for 'Username' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

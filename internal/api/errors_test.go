package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskboard-io/taskboard/internal/domain"
	"github.com/taskboard-io/taskboard/internal/service"
	"github.com/taskboard-io/taskboard/internal/service/auth"
	"github.com/taskboard-io/taskboard/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"forbidden", service.ErrForbidden, http.StatusForbidden},
		{"wrapped forbidden", fmt.Errorf("update task: %w", service.ErrForbidden), http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"status not found", store.ErrTaskStatusNotFound, http.StatusNotFound},
		{"label not found", store.ErrLabelNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"slug exists", store.ErrSlugExists, http.StatusConflict},
		{"label in use", service.ErrLabelInUse, http.StatusConflict},
		{"user has tasks", service.ErrUserHasTasks, http.StatusConflict},
		{"referenced", store.ErrReferenced, http.StatusConflict},
		{"empty task name", domain.ErrEmptyTaskName, http.StatusBadRequest},
		{"invalid slug", domain.ErrInvalidSlug, http.StatusBadRequest},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"label name too long", domain.ErrLabelNameTooLong, http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid credentials"},
		{"forbidden", service.ErrForbidden, "You do not have permission to modify this resource"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"email exists", store.ErrEmailExists, "Email already exists"},
		{"label in use", service.ErrLabelInUse, "Label is assigned to at least one task"},
		{"user has tasks", service.ErrUserHasTasks, "User has assigned tasks"},
		{"internal details hidden", errors.New("pq: connection refused on 10.0.0.3"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}

	// Domain validation sentinels are user-facing and pass through verbatim.
	assert.Equal(t, domain.ErrEmptyTaskName.Error(), GetSafeErrorMessage(domain.ErrEmptyTaskName))
	assert.Equal(t, domain.ErrInvalidSlug.Error(), GetSafeErrorMessage(domain.ErrInvalidSlug))
}

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/domain"
)

// getPrincipalEmail extracts the authenticated email from the request
// context. The email is placed there by the authentication middleware.
func getPrincipalEmail(r *http.Request) (string, bool) {
	return shared.PrincipalEmail(r.Context())
}

// getPathID extracts a numeric id from the URL path parameters.
// It parses and validates the id, handling common error cases.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// handlePrincipalAndPathID is a composite helper that extracts both the
// authenticated email from context and an id from the path parameters.
// It writes an error response if either extraction fails.
func handlePrincipalAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
) (string, int64, bool) {
	email, ok := getPrincipalEmail(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return "", 0, false
	}

	id, err := getPathID(r, paramName)
	if err != nil {
		HandleServiceError(w, r, err)
		return "", 0, false
	}

	return email, id, true
}

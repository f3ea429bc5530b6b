package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/service"
	"github.com/taskboard-io/taskboard/internal/service/auth"
	"github.com/taskboard-io/taskboard/internal/store"
)

// AuthHandler handles the login endpoint.
type AuthHandler struct {
	userService      service.UserService
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userService service.UserService,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		userService:      userService,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Login handles POST /api/login. The username field carries the account
// email. On success the response body is the bare token string.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.GetByEmail(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Do not reveal whether the account exists.
			shared.RespondWithError(w, r, http.StatusUnauthorized, GetSafeErrorMessage(auth.ErrInvalidCredentials))
			return
		}
		slog.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, GetSafeErrorMessage(auth.ErrInvalidCredentials))
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		slog.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	// The token is returned as a plain string body rather than wrapped in
	// a JSON object. API clients send it back verbatim as a Bearer token.
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(token)); err != nil {
		slog.Error("failed to write token response", "error", err)
	}
}

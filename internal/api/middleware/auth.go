package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taskboard-io/taskboard/internal/api/shared"
	"github.com/taskboard-io/taskboard/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates JWT tokens from the Authorization header and
// adds the principal's email to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err == nil {
			var claims *auth.Claims
			claims, err = m.jwtService.ValidateToken(r.Context(), token)
			if err == nil {
				ctx := shared.WithPrincipalEmail(r.Context(), claims.Email)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		switch {
		case errors.Is(err, auth.ErrMissingToken):
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
		case errors.Is(err, auth.ErrExpiredToken):
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
		case errors.Is(err, auth.ErrTokenNotYetValid):
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token not yet valid")
		case errors.Is(err, auth.ErrInvalidToken):
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
		default:
			slog.Error("failed to validate token", "error", err)
			shared.RespondWithError(
				w,
				r,
				http.StatusInternalServerError,
				"Authentication error",
			)
		}
	})
}

// bearerToken pulls the token out of the Authorization header. A missing
// header yields ErrMissingToken; anything other than "Bearer <token>"
// yields ErrInvalidToken.
func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", auth.ErrMissingToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("%w: authorization header is not a bearer token", auth.ErrInvalidToken)
	}

	return parts[1], nil
}

// GetPrincipalEmail extracts the authenticated email from the request context.
// Returns the email and a boolean indicating if it was found.
func GetPrincipalEmail(r *http.Request) (string, bool) {
	return shared.PrincipalEmail(r.Context())
}

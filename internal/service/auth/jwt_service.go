package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing JWT authentication tokens.
// The token's subject claim carries the principal's email, which is the
// identity every authorization check compares against.
type JWTService interface {
	// GenerateToken creates a signed JWT access token for the given principal.
	// Returns the token string or an error if token generation fails.
	GenerateToken(ctx context.Context, email string) (string, error)

	// ValidateToken validates the provided access token string and extracts
	// the claims. Returns the claims if the token is valid, or an error if
	// validation fails (expired, invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the custom claims structure for the JWT tokens.
type Claims struct {
	// Email is the principal's login identifier, taken from the subject claim.
	Email string `json:"sub,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

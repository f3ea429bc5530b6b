package auth

import "errors"

// Authentication errors. The API layer maps all of them to 401.
var (
	// ErrInvalidToken covers malformed tokens, bad signatures, and
	// unexpected signing algorithms.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken is returned when the exp claim is in the past.
	ErrExpiredToken = errors.New("authentication token has expired")

	// ErrTokenNotYetValid is returned when the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("authentication token not yet valid")

	// ErrMissingToken is returned when a token was expected but absent.
	ErrMissingToken = errors.New("authentication token is missing")

	// ErrInvalidCredentials indicates login failed. The message stays
	// identical for unknown users and wrong passwords so the response never
	// reveals whether an account exists.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

package mocks

import "errors"

// MockPasswordVerifier implements auth.PasswordHasher and
// auth.PasswordVerifier for testing without paying the bcrypt cost.
type MockPasswordVerifier struct {
	// ShouldSucceed controls whether Compare reports a match.
	ShouldSucceed bool

	// HashErr, when set, is returned from Hash.
	HashErr error
}

// Hash implements the auth.PasswordHasher interface. It returns a marker
// string derived from the password so tests can assert it was called.
func (m *MockPasswordVerifier) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordVerifier interface
func (m *MockPasswordVerifier) Compare(hashedPassword, password string) error {
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}

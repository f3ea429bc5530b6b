package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-at-least-32-chars"

func newTestService(t *testing.T, lifetimeMinutes int) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(testSecret, lifetimeMinutes)
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	_, err := NewJWTService("tooshort", 60)
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t, 60)
	ctx := context.Background()

	token, err := svc.GenerateToken(ctx, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID, "token should carry a unique jti")
	assert.WithinDuration(t, time.Now().Add(60*time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestService(t, 60)
	ctx := context.Background()

	// Issue a token in the past, beyond lifetime plus clock skew
	issuedAt := time.Now().Add(-2 * time.Hour)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(ctx, "user@example.com")
	require.NoError(t, err)

	svc.timeFunc = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWithinClockSkew(t *testing.T) {
	svc := newTestService(t, 60)
	ctx := context.Background()

	// Expired one minute ago, inside the two minute skew allowance
	issuedAt := time.Now().Add(-61 * time.Minute)
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.GenerateToken(ctx, "user@example.com")
	require.NoError(t, err)

	svc.timeFunc = time.Now
	_, err = svc.ValidateToken(ctx, token)
	assert.NoError(t, err)
}

func TestValidateTokenWrongKey(t *testing.T) {
	svc := newTestService(t, 60)
	other := newTestService(t, 60)
	other.signingKey = []byte("another-secret-that-is-32-chars-long!")
	ctx := context.Background()

	token, err := other.GenerateToken(ctx, "user@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsUnsignedAlgorithm(t *testing.T) {
	svc := newTestService(t, 60)
	ctx := context.Background()

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := newTestService(t, 60)

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenMissingSubject(t *testing.T) {
	svc := newTestService(t, 60)
	ctx := context.Background()

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := noSubject.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

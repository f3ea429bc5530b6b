package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHashAndCompare(t *testing.T) {
	v := NewBcryptVerifier()

	hash, err := v.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, v.Compare(hash, "secret123"))
	assert.Error(t, v.Compare(hash, "wrong-password"))
}

func TestBcryptHashesAreSalted(t *testing.T) {
	v := NewBcryptVerifier()

	first, err := v.Hash("secret123")
	require.NoError(t, err)
	second, err := v.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

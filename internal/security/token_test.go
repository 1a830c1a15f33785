package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := NewTokenManager(testSecret, time.Hour)

	token, err := tm.Generate("librarian")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "librarian", claims.Username)
	assert.Equal(t, "library-api", claims.Issuer)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := NewTokenManager(testSecret, -time.Minute)

	token, err := tm.Generate("librarian")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).Generate("librarian")
	require.NoError(t, err)

	_, err = NewTokenManager("another-secret-another-secret-00", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	_, err := NewTokenManager(testSecret, time.Hour).Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

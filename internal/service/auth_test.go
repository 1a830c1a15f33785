package service

import (
	"context"
	"testing"
	"time"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	svc := NewAuthService("librarian", string(hash), tokens)

	token, err := svc.Login(context.Background(), "librarian", "secret")
	require.NoError(t, err)

	claims, err := tokens.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "librarian", claims.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	svc := NewAuthService("librarian", string(hash), tokens)

	_, err = svc.Login(context.Background(), "librarian", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	tokens := security.NewTokenManager("0123456789abcdef0123456789abcdef", time.Hour)
	svc := NewAuthService("librarian", "irrelevant", tokens)

	_, err := svc.Login(context.Background(), "intruder", "secret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

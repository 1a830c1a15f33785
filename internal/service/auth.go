package service

import (
	"context"

	"github.com/AbdelrahmanBayoumi/library-api/internal/domain"
	"github.com/AbdelrahmanBayoumi/library-api/internal/security"

	"golang.org/x/crypto/bcrypt"
)

// authService authenticates the librarian account configured for this
// deployment and issues session tokens for it.
type authService struct {
	username     string
	passwordHash string
	tokens       security.TokenManager
}

func NewAuthService(username, passwordHash string, tokens security.TokenManager) AuthService {
	return &authService{
		username:     username,
		passwordHash: passwordHash,
		tokens:       tokens,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.username {
		return "", domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokens.Generate(username)
}

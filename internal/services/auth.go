package services

import (
	"context"
	"time"

	"eventlist/internal/domain"
)

const organizerSubject = "organizer"

type authService struct {
	hasher       domain.PasswordHasher
	issuer       domain.TokenIssuer
	passwordHash string
	passwordSalt string
	tokenExpiry  time.Duration
}

// NewAuthService creates an AuthService that verifies the configured organizer
// password and mints bearer tokens for the mutating API.
func NewAuthService(hasher domain.PasswordHasher, issuer domain.TokenIssuer, passwordHash, passwordSalt string, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		hasher:       hasher,
		issuer:       issuer,
		passwordHash: passwordHash,
		passwordSalt: passwordSalt,
		tokenExpiry:  tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if s.passwordHash == "" || password == "" {
		return "", domain.ErrBadCredentials
	}
	if err := s.hasher.Compare(s.passwordHash, s.passwordSalt, password); err != nil {
		return "", domain.ErrBadCredentials
	}
	token, err := s.issuer.Issue(organizerSubject, s.tokenExpiry)
	if err != nil {
		return "", err
	}
	return token, nil
}

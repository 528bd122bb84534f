package domain

import (
	"context"
	"errors"
	"time"
)

// ErrBadCredentials is returned when the organizer password does not match.
var ErrBadCredentials = errors.New("invalid credentials")

// PasswordHasher defines the contract for hashing and verifying the organizer
// password used to mint API tokens.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (string, error)
	Compare(hash, salt, password string) error
}

// TokenIssuer mints bearer tokens for the organizer API.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthService exchanges the organizer password for a bearer token.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
}

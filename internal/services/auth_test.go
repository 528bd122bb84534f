package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"eventlist/internal/domain"
)

type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return "hash:" + salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != "hash:"+salt+":"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type fakeIssuer struct {
	err error
}

func (f fakeIssuer) Issue(subject string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-for-" + subject, nil
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash := "hash:salt:letmein"

	t.Run("correct password yields token", func(t *testing.T) {
		svc := NewAuthService(fakeHasher{}, fakeIssuer{}, hash, "salt", time.Hour)
		token, err := svc.Login(ctx, "letmein")
		require.NoError(t, err)
		require.Equal(t, "token-for-organizer", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := NewAuthService(fakeHasher{}, fakeIssuer{}, hash, "salt", time.Hour)
		_, err := svc.Login(ctx, "wrong")
		require.ErrorIs(t, err, domain.ErrBadCredentials)
	})

	t.Run("unconfigured hash rejects everything", func(t *testing.T) {
		svc := NewAuthService(fakeHasher{}, fakeIssuer{}, "", "", time.Hour)
		_, err := svc.Login(ctx, "anything")
		require.ErrorIs(t, err, domain.ErrBadCredentials)
	})

	t.Run("issuer failure propagates", func(t *testing.T) {
		svc := NewAuthService(fakeHasher{}, fakeIssuer{err: fmt.Errorf("no key")}, hash, "salt", time.Hour)
		_, err := svc.Login(ctx, "letmein")
		require.Error(t, err)
	})
}

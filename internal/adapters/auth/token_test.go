package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("test-secret")

	token, err := codec.Issue("organizer", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "organizer", subject)
}

func TestJWTCodec_RejectsBadTokens(t *testing.T) {
	codec := NewJWTCodec("test-secret")

	t.Run("garbage", func(t *testing.T) {
		_, err := codec.Verify("not-a-token")
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTCodec("other-secret")
		token, err := other.Issue("organizer", time.Hour)
		require.NoError(t, err)
		_, err = codec.Verify(token)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := codec.Issue("organizer", -time.Minute)
		require.NoError(t, err)
		_, err = codec.Verify(token)
		require.Error(t, err)
	})
}

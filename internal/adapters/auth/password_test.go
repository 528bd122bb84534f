package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(4) // low cost keeps the test fast

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	require.Len(t, salt, 64)

	hash, err := hasher.Hash(salt, "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.NoError(t, hasher.Compare(hash, salt, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hash, salt, "wrong password"))
	assert.Error(t, hasher.Compare(hash, "other-salt", "correct horse battery staple"))
}

func TestBcryptHasher_SaltsDiffer(t *testing.T) {
	hasher := NewBcryptHasher(4)
	a, err := hasher.GenerateSalt()
	require.NoError(t, err)
	b, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

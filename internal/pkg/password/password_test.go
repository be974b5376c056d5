package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(4) // minimum cost keeps the test fast

	digest, err := h.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, h.Verify("secret123", digest))
	assert.False(t, h.Verify("wrong", digest))
}

func TestHash_SaltedDigestsDiffer(t *testing.T) {
	h := NewHasher(4)

	d1, err := h.Hash("secret123")
	require.NoError(t, err)
	d2, err := h.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
}

func TestVerify_MalformedDigest(t *testing.T) {
	h := NewHasher(0)
	assert.False(t, h.Verify("secret123", "not-a-bcrypt-digest"))
}

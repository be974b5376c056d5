package jwtinfra

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talent-api/internal/config"
	"github.com/talent-api/internal/domain"
)

// newTestProvider generates a fresh RSA key pair on disk and loads it.
func newTestProvider(t *testing.T, expiry time.Duration) *Provider {
	t.Helper()
	privKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "private.pem")
	pubPath := filepath.Join(dir, "public.pem")

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privKey)})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0600))

	pubBytes, err := x509.MarshalPKIXPublicKey(&privKey.PublicKey)
	require.NoError(t, err)
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0600))

	p, err := NewProvider(&config.Config{
		JWTPrivateKeyPath: privPath,
		JWTPublicKeyPath:  pubPath,
		JWTExpiry:         expiry,
	})
	require.NoError(t, err)
	return p
}

func TestSignAndVerify_RoundTrip(t *testing.T) {
	p := newTestProvider(t, time.Hour)

	token, err := p.Sign("alice@example.com", "u1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "u1", claims.UserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerify_Expired(t *testing.T) {
	p := newTestProvider(t, -time.Minute)

	token, err := p.Sign("alice@example.com", "u1")
	require.NoError(t, err)

	_, err = p.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTokenExpired))
	assert.False(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerify_Tampered(t *testing.T) {
	p := newTestProvider(t, time.Hour)

	token, err := p.Sign("alice@example.com", "u1")
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	tampered := token[:len(token)-2] + "xx"
	_, err = p.Verify(tampered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestVerify_WrongKeyPair(t *testing.T) {
	signer := newTestProvider(t, time.Hour)
	verifier := newTestProvider(t, time.Hour)

	token, err := signer.Sign("alice@example.com", "u1")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

func TestUnconfigured_MissingKey(t *testing.T) {
	p := NewUnconfigured()

	_, err := p.Sign("alice@example.com", "u1")
	assert.True(t, errors.Is(err, domain.ErrMissingKey))

	_, err = p.Verify("whatever")
	assert.True(t, errors.Is(err, domain.ErrMissingKey))
}

func TestDecode_NoVerification(t *testing.T) {
	p := newTestProvider(t, time.Hour)

	token, err := p.Sign("alice@example.com", "u1")
	require.NoError(t, err)

	// Decode works without the public key and ignores the signature.
	claims, err := NewUnconfigured().Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email)

	_, err = p.Decode("not-a-jwt")
	assert.True(t, errors.Is(err, domain.ErrInvalidToken))
}

package jwtinfra

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/talent-api/internal/config"
	"github.com/talent-api/internal/domain"
)

// Claims holds the JWT payload fields.
type Claims struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Provider signs and verifies RS256 JWTs. Tokens are stateless: a token is
// valid exactly when its signature verifies against the public key and its
// expiry has not elapsed. There is no revocation list, so disabling a user
// does not invalidate tokens issued earlier.
type Provider struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	expiry     time.Duration
}

// NewProvider loads the PEM keypair named in cfg. A missing or unparsable
// key file is a construction error; callers that tolerate a keyless start
// pass the nil provider handling down to Sign/Verify via NewUnconfigured.
func NewProvider(cfg *config.Config) (*Provider, error) {
	privBytes, err := os.ReadFile(cfg.JWTPrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read private key: %w", err)
	}
	privKey, err := jwt.ParseRSAPrivateKeyFromPEM(privBytes)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}

	pubBytes, err := os.ReadFile(cfg.JWTPublicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("read public key: %w", err)
	}
	pubKey, err := jwt.ParseRSAPublicKeyFromPEM(pubBytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	return &Provider{privateKey: privKey, publicKey: pubKey, expiry: cfg.JWTExpiry}, nil
}

// NewUnconfigured returns a Provider with no keys. Every Sign and Verify
// call fails with domain.ErrMissingKey instead of a nil-pointer panic.
func NewUnconfigured() *Provider {
	return &Provider{}
}

func (p *Provider) Sign(email, userID string) (string, error) {
	if p.privateKey == nil {
		return "", domain.ErrMissingKey
	}
	now := time.Now()
	claims := Claims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(p.privateKey)
}

// Verify checks the signature and expiry and returns the claims. Failures
// are typed: domain.ErrTokenExpired for elapsed expiry, domain.ErrInvalidToken
// for everything else, domain.ErrMissingKey when no public key is loaded.
func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	if p.publicKey == nil {
		return nil, domain.ErrMissingKey
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", domain.ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Decode parses claims without verifying the signature. Response enrichment
// only; never treat the result as authenticated.
func (p *Provider) Decode(tokenStr string) (*Claims, error) {
	var claims Claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenStr, &claims); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	return &claims, nil
}

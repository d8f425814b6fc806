package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that fails
// verification, whether malformed, wrongly signed, or missing its id claim.
var ErrInvalidToken = errors.New("invalid token")

// Verifier defines the interface for token verification.
type Verifier interface {
	// Verify checks the token's signature and returns the embedded user ID.
	Verify(token string) (string, error)
}

// Service issues and verifies HS256-signed bearer tokens carrying a single
// "id" claim. The signing secret is injected once at construction and never
// read from the environment afterwards.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token service with the provided secret and token
// lifetime. A ttl of zero issues tokens with no expiration claim.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a signed token embedding the user's ID.
// When the service has a non-zero ttl an exp claim is added; verification
// accepts both shapes, so enabling expiry later does not break old callers.
func (s *Service) Issue(userID string) (string, error) {
	claims := jwt.MapClaims{
		"id": userID,
	}
	if s.ttl > 0 {
		claims["exp"] = time.Now().Add(s.ttl).Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify checks the token signature against the service secret and extracts
// the embedded user ID. Any failure, including a token signed with a
// different algorithm, yields ErrInvalidToken.
func (s *Service) Verify(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; this also rejects the "none" algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}
	return id, nil
}

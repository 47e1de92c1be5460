// Package auth issues and verifies the JWT tokens carried in the
// Authorization header, and provides the middleware that attaches the
// authenticated identity to the request context.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretLength is the minimum accepted JWT secret length in bytes.
// HS256 derives its strength from the key; short keys are rejected at
// startup rather than silently weakening every token.
const MinSecretLength = 32

// ErrInvalidToken indicates a missing, malformed, expired or tampered token.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller extracted from a verified token.
type Identity struct {
	UserID   int64
	Username string
}

// TokenManager signs and verifies HS256 tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a token manager with the given secret and token
// lifetime.
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: secret, ttl: ttl}
}

// ValidateSecret checks a JWT secret before the server starts serving.
func ValidateSecret(secret string) error {
	if secret == "" {
		return errors.New("JWT secret is not set")
	}
	if len(secret) < MinSecretLength {
		return fmt.Errorf("JWT secret must be at least %d bytes, got %d", MinSecretLength, len(secret))
	}
	return nil
}

// Issue creates a signed token for the user.
// The subject claim carries the user ID; username travels as a custom claim
// so handlers can log the caller without a database round trip.
func (m *TokenManager) Issue(userID int64, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.FormatInt(userID, 10),
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string and returns the identity it
// carries. Returns ErrInvalidToken for any verification failure; callers
// never learn which check failed.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return nil, ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil || userID <= 0 {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &Identity{UserID: userID, Username: username}, nil
}

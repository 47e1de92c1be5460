// Package auth provides password hashing and password policy enforcement.
// This service is framework-agnostic and can be used with any HTTP framework or CLI.
package auth

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"conduit/internal/domain/entity"
)

// ErrPasswordMismatch indicates that the supplied password does not match
// the stored hash.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordPolicy defines password strength requirements.
type PasswordPolicy struct {
	MinLength     int
	WeakPasswords []string
}

// DefaultPasswordPolicy returns the policy applied when no security
// configuration file is present.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     8,
		WeakPasswords: []string{"password", "12345678", "qwerty123"},
	}
}

// PasswordService hashes and verifies account passwords with bcrypt and
// enforces the configured password policy.
type PasswordService struct {
	policy PasswordPolicy
	cost   int
}

// NewPasswordService creates a password service with the given policy.
func NewPasswordService(policy PasswordPolicy) *PasswordService {
	return &PasswordService{policy: policy, cost: bcrypt.DefaultCost}
}

// Validate checks a plaintext password against the policy.
// Returns a ValidationError describing the first violated rule.
func (s *PasswordService) Validate(plain string) error {
	if len(plain) < s.policy.MinLength {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", s.policy.MinLength),
		}
	}
	lowered := strings.ToLower(plain)
	for _, weak := range s.policy.WeakPasswords {
		if lowered == strings.ToLower(weak) {
			return &entity.ValidationError{Field: "password", Message: "is too common"}
		}
	}
	return nil
}

// Hash derives a bcrypt hash from the plaintext password.
func (s *PasswordService) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare checks the plaintext password against a stored hash.
// Returns ErrPasswordMismatch when they do not match.
func (s *PasswordService) Compare(hash, plain string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}

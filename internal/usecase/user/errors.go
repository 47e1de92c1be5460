// Package user provides use cases for account registration, authentication
// and profile maintenance.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates that the email/password pair does not
	// identify an account. Login never reveals which of the two was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

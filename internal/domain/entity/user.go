// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as User, Article, Comment and Tag,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// User represents a registered account.
// PasswordHash holds the bcrypt digest of the password; the clear-text
// password never leaves the auth service.
type User struct {
	ID           int64
	Email        string
	Username     string
	PasswordHash string
	Bio          string
	Image        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

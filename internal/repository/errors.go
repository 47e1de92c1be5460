// Package repository defines the persistence interfaces used by the use case
// layer, together with the filter and projection types shared between the
// services and the database adapters.
package repository

import "errors"

// Sentinel errors surfaced by repository implementations when a database
// unique constraint rejects a write. The use case layer translates these
// into field-level validation errors or retries (slug deduplication).
var (
	ErrDuplicateEmail    = errors.New("email already taken")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrDuplicateSlug     = errors.New("slug already taken")
)

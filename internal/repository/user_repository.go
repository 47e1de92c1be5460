package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

// UserRepository persists accounts and the directional follow relation.
//
// Lookup methods return (nil, nil) when no row matches; callers translate
// that into their own not-found errors.
type UserRepository interface {
	// Create inserts a new user and fills in the generated ID and timestamps.
	// Returns ErrDuplicateEmail or ErrDuplicateUsername when the respective
	// unique constraint rejects the insert.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update rewrites the mutable profile columns (email, username,
	// password_hash, bio, image) and bumps updated_at.
	Update(ctx context.Context, user *entity.User) error

	// Follow records followerID following followedID. Inserting an existing
	// pair is a no-op; the unique pair constraint makes the operation
	// idempotent under concurrency.
	Follow(ctx context.Context, followerID, followedID int64) error
	// Unfollow removes the pair; removing an absent pair is a no-op.
	Unfollow(ctx context.Context, followerID, followedID int64) error
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)

	// CountUsers returns the total number of accounts, used for metrics.
	CountUsers(ctx context.Context) (int64, error)
}

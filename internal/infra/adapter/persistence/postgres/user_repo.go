package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// mapUniqueViolation translates a unique-constraint violation into the
// matching repository sentinel. Returns nil when err is not a 23505.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return repository.ErrDuplicateEmail
	case "users_username_key":
		return repository.ErrDuplicateUsername
	case "articles_slug_key":
		return repository.ErrDuplicateSlug
	}
	return nil
}

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (email, username, password_hash, bio, image)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash, user.Bio, user.Image,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if sentinel := mapUniqueViolation(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.getBy(ctx, "id = $1", id)
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.getBy(ctx, "email = $1", email)
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.getBy(ctx, "username = $1", username)
}

func (repo *UserRepo) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `
SELECT id, email, username, password_hash, bio, image, created_at, updated_at
FROM users
WHERE ` + where + `
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.Username, &user.PasswordHash,
			&user.Bio, &user.Image, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getBy: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE users SET
       email         = $1,
       username      = $2,
       password_hash = $3,
       bio           = $4,
       image         = $5,
       updated_at    = now()
WHERE id = $6
RETURNING updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.PasswordHash,
		user.Bio, user.Image, user.ID,
	).Scan(&user.UpdatedAt)
	if err == sql.ErrNoRows {
		return fmt.Errorf("Update: no rows affected")
	}
	if err != nil {
		if sentinel := mapUniqueViolation(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *UserRepo) Follow(ctx context.Context, followerID, followedID int64) error {
	const query = `
INSERT INTO follows (follower_id, followed_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, query, followerID, followedID); err != nil {
		return fmt.Errorf("Follow: %w", err)
	}
	return nil
}

func (repo *UserRepo) Unfollow(ctx context.Context, followerID, followedID int64) error {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`
	if _, err := repo.db.ExecContext(ctx, query, followerID, followedID); err != nil {
		return fmt.Errorf("Unfollow: %w", err)
	}
	return nil
}

func (repo *UserRepo) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`
	var following bool
	err := repo.db.QueryRowContext(ctx, query, followerID, followedID).Scan(&following)
	if err != nil {
		return false, fmt.Errorf("IsFollowing: %w", err)
	}
	return following, nil
}

// CountUsers returns the total number of registered users.
func (repo *UserRepo) CountUsers(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return count, nil
}

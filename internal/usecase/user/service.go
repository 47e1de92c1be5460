package user

import (
	"context"
	"errors"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

// PasswordService abstracts password hashing and policy enforcement.
// Implemented by service/auth.PasswordService.
type PasswordService interface {
	Validate(plain string) error
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// RegisterInput represents the input parameters for registering a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput represents the input parameters for authenticating an account.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateInput represents the input parameters for updating an account.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID       int64
	Email    *string
	Username *string
	Password *string
	Bio      *string
	Image    *string
}

// Service provides account management use cases.
// It handles business logic for user operations and delegates persistence to the repository.
type Service struct {
	Repo      repository.UserRepository
	Passwords PasswordService
}

// Register creates a new account with a hashed password.
// Returns a ValidationError for malformed fields, policy violations and
// already-taken email or username.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := entity.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := s.Passwords.Validate(in.Password); err != nil {
		return nil, err
	}

	hash, err := s.Passwords.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	account := &entity.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: hash,
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		if taken := takenError(err); taken != nil {
			return nil, taken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return account, nil
}

// Login authenticates an email/password pair.
// Returns ErrInvalidCredentials when the email is unknown or the password
// does not match; the two cases are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, in LoginInput) (*entity.User, error) {
	account, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.Passwords.Compare(account.PasswordHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Get retrieves an account by its ID.
// Returns ErrUserNotFound if the account does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	account, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}
	return account, nil
}

// Update modifies an account with the provided input.
// Only non-nil fields in the input will be updated.
// Returns ErrUserNotFound if the account does not exist.
// Returns a ValidationError if any updated field is invalid.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	account, err := s.Repo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if account == nil {
		return nil, ErrUserNotFound
	}

	if in.Email != nil {
		if err := entity.ValidateEmail(*in.Email); err != nil {
			return nil, err
		}
		account.Email = *in.Email
	}
	if in.Username != nil {
		if err := entity.ValidateUsername(*in.Username); err != nil {
			return nil, err
		}
		account.Username = *in.Username
	}
	if in.Password != nil {
		if err := s.Passwords.Validate(*in.Password); err != nil {
			return nil, err
		}
		hash, err := s.Passwords.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("update: %w", err)
		}
		account.PasswordHash = hash
	}
	if in.Bio != nil {
		account.Bio = *in.Bio
	}
	if in.Image != nil {
		if err := entity.ValidateImageURL(*in.Image); err != nil {
			return nil, err
		}
		account.Image = *in.Image
	}

	if err := s.Repo.Update(ctx, account); err != nil {
		if taken := takenError(err); taken != nil {
			return nil, taken
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return account, nil
}

// takenError maps repository duplicate sentinels to field-level validation
// errors. Returns nil for any other error.
func takenError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDuplicateEmail):
		return &entity.ValidationError{Field: "email", Message: "has already been taken"}
	case errors.Is(err, repository.ErrDuplicateUsername):
		return &entity.ValidationError{Field: "username", Message: "has already been taken"}
	}
	return nil
}

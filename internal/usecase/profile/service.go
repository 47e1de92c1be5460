package profile

import (
	"context"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

// Profile is the public view of an account, relative to the viewer.
type Profile struct {
	Username  string
	Bio       string
	Image     string
	Following bool
}

// Service provides profile and follow use cases.
type Service struct {
	Repo repository.UserRepository
}

// Get retrieves the profile for a username.
// viewerID 0 means anonymous; Following is then always false.
// Returns ErrProfileNotFound if no account has the username.
func (s *Service) Get(ctx context.Context, username string, viewerID int64) (*Profile, error) {
	account, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if account == nil {
		return nil, ErrProfileNotFound
	}

	following := false
	if viewerID != 0 {
		following, err = s.Repo.IsFollowing(ctx, viewerID, account.ID)
		if err != nil {
			return nil, fmt.Errorf("get profile: %w", err)
		}
	}
	return s.view(account, following), nil
}

// Follow records the viewer following the username and returns the updated
// profile. Following an already-followed profile is a no-op.
// Returns a ValidationError when the viewer targets their own account.
func (s *Service) Follow(ctx context.Context, viewerID int64, username string) (*Profile, error) {
	account, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("follow: %w", err)
	}
	if account == nil {
		return nil, ErrProfileNotFound
	}
	if account.ID == viewerID {
		return nil, &entity.ValidationError{Field: "username", Message: "cannot follow yourself"}
	}

	if err := s.Repo.Follow(ctx, viewerID, account.ID); err != nil {
		return nil, fmt.Errorf("follow: %w", err)
	}
	return s.view(account, true), nil
}

// Unfollow removes the follow relation and returns the updated profile.
// Unfollowing a profile that was not followed is a no-op.
func (s *Service) Unfollow(ctx context.Context, viewerID int64, username string) (*Profile, error) {
	account, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("unfollow: %w", err)
	}
	if account == nil {
		return nil, ErrProfileNotFound
	}

	if err := s.Repo.Unfollow(ctx, viewerID, account.ID); err != nil {
		return nil, fmt.Errorf("unfollow: %w", err)
	}
	return s.view(account, false), nil
}

func (s *Service) view(account *entity.User, following bool) *Profile {
	return &Profile{
		Username:  account.Username,
		Bio:       account.Bio,
		Image:     account.Image,
		Following: following,
	}
}

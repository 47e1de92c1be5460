package user_test

import (
	"context"
	"errors"
	"time"

	"conduit/internal/domain/entity"
	"conduit/internal/handler/http/auth"
	"conduit/internal/repository"
	userUC "conduit/internal/usecase/user"
)

// ──────────────────────────────────────────────
// テスト用スタブ
// ──────────────────────────────────────────────

type stubUserRepo struct {
	users  map[int64]*entity.User
	nextID int64

	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[int64]*entity.User{}, nextID: 1}
}

func (s *stubUserRepo) add(u entity.User) *entity.User {
	if u.ID == 0 {
		u.ID = s.nextID
		s.nextID++
	} else if u.ID >= s.nextID {
		s.nextID = u.ID + 1
	}
	u.CreatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	u.UpdatedAt = u.CreatedAt
	s.users[u.ID] = &u
	return s.users[u.ID]
}

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	created := s.add(*u)
	*u = *created
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) Update(_ context.Context, u *entity.User) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.users[u.ID] = u
	return nil
}

// 以下は未使用だが、インターフェース満たすために実装
func (s *stubUserRepo) Follow(_ context.Context, _, _ int64) error   { return nil }
func (s *stubUserRepo) Unfollow(_ context.Context, _, _ int64) error { return nil }
func (s *stubUserRepo) IsFollowing(_ context.Context, _, _ int64) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) CountUsers(_ context.Context) (int64, error) { return 0, nil }

type stubPasswords struct{}

func (stubPasswords) Validate(plain string) error {
	if len(plain) < 8 {
		return &entity.ValidationError{Field: "password", Message: "is too short (minimum is 8 characters)"}
	}
	return nil
}

func (stubPasswords) Hash(plain string) (string, error) { return "hashed:" + plain, nil }

func (stubPasswords) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("password mismatch")
	}
	return nil
}

func newService(repo *stubUserRepo) *userUC.Service {
	return &userUC.Service{Repo: repo, Passwords: stubPasswords{}}
}

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
}

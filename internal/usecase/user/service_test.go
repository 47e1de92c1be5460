package user_test

import (
	"context"
	"errors"
	"testing"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
	userUC "conduit/internal/usecase/user"
)

/* ───────── スタブ実装 ───────── */

// 最小限のインメモリ UserRepository
type stubRepo struct {
	data    map[int64]*entity.User
	follows map[[2]int64]bool
	nextID  int64
	err     error // 強制的にエラーを返したいとき用
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.User{}, follows: map[[2]int64]bool{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	for _, existing := range s.data {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	u.ID = s.nextID
	s.nextID++
	s.data[u.ID] = u
	return nil
}
func (s *stubRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	return s.data[id], s.err
}
func (s *stubRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.data {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, u := range s.data {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (s *stubRepo) Update(_ context.Context, u *entity.User) error {
	if s.err != nil {
		return s.err
	}
	for id, existing := range s.data {
		if id == u.ID {
			continue
		}
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Username == u.Username {
			return repository.ErrDuplicateUsername
		}
	}
	s.data[u.ID] = u
	return nil
}
func (s *stubRepo) Follow(_ context.Context, followerID, followedID int64) error {
	if s.err != nil {
		return s.err
	}
	s.follows[[2]int64{followerID, followedID}] = true
	return nil
}
func (s *stubRepo) Unfollow(_ context.Context, followerID, followedID int64) error {
	if s.err != nil {
		return s.err
	}
	delete(s.follows, [2]int64{followerID, followedID})
	return nil
}
func (s *stubRepo) IsFollowing(_ context.Context, followerID, followedID int64) (bool, error) {
	return s.follows[[2]int64{followerID, followedID}], s.err
}
func (s *stubRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(s.data)), s.err
}

// 平文のまま保存する PasswordService スタブ
type stubPasswords struct{}

func (stubPasswords) Validate(plain string) error {
	if len(plain) < 8 {
		return &entity.ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}
	return nil
}
func (stubPasswords) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (stubPasswords) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

func newService(repo *stubRepo) *userUC.Service {
	return &userUC.Service{Repo: repo, Passwords: stubPasswords{}}
}

/* ───────── Register ───────── */

func TestService_Register(t *testing.T) {
	svc := newService(newStub())

	got, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "jake", Email: "jake@jake.jake", Password: "c0rrect-horse",
	})
	if err != nil {
		t.Fatalf("Register err=%v", err)
	}
	if got.ID == 0 || got.PasswordHash != "hashed:c0rrect-horse" {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestService_Register_Validation(t *testing.T) {
	svc := newService(newStub())

	tests := []struct {
		name  string
		in    userUC.RegisterInput
		field string
	}{
		{"empty username", userUC.RegisterInput{Email: "a@b.io", Password: "c0rrect-horse"}, "username"},
		{"bad email", userUC.RegisterInput{Username: "jake", Email: "not-an-email", Password: "c0rrect-horse"}, "email"},
		{"short password", userUC.RegisterInput{Username: "jake", Email: "a@b.io", Password: "short"}, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			var vErr *entity.ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tt.field {
				t.Fatalf("err=%v, want ValidationError on %s", err, tt.field)
			}
		})
	}
}

func TestService_Register_TakenEmail(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	if _, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "jake", Email: "jake@jake.jake", Password: "c0rrect-horse",
	}); err != nil {
		t.Fatalf("first Register err=%v", err)
	}

	_, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "other", Email: "jake@jake.jake", Password: "c0rrect-horse",
	})
	var vErr *entity.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "email" {
		t.Fatalf("err=%v, want ValidationError on email", err)
	}
}

/* ───────── Login ───────── */

func TestService_Login(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	if _, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "jake", Email: "jake@jake.jake", Password: "c0rrect-horse",
	}); err != nil {
		t.Fatalf("Register err=%v", err)
	}

	got, err := svc.Login(context.Background(), userUC.LoginInput{
		Email: "jake@jake.jake", Password: "c0rrect-horse",
	})
	if err != nil || got.Username != "jake" {
		t.Fatalf("Login err=%v got=%+v", err, got)
	}
}

func TestService_Login_InvalidCredentials(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	if _, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "jake", Email: "jake@jake.jake", Password: "c0rrect-horse",
	}); err != nil {
		t.Fatalf("Register err=%v", err)
	}

	// 未登録メールとパスワード誤りは同じエラー
	cases := []userUC.LoginInput{
		{Email: "ghost@x.io", Password: "c0rrect-horse"},
		{Email: "jake@jake.jake", Password: "wrong-password"},
	}
	for _, in := range cases {
		if _, err := svc.Login(context.Background(), in); !errors.Is(err, userUC.ErrInvalidCredentials) {
			t.Fatalf("Login(%+v) err=%v, want ErrInvalidCredentials", in, err)
		}
	}
}

/* ───────── Get / Update ───────── */

func TestService_Get_NotFound(t *testing.T) {
	svc := newService(newStub())
	if _, err := svc.Get(context.Background(), 99); !errors.Is(err, userUC.ErrUserNotFound) {
		t.Fatalf("Get err=%v, want ErrUserNotFound", err)
	}
}

func TestService_Update_Partial(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	account, err := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "jake", Email: "jake@jake.jake", Password: "c0rrect-horse",
	})
	if err != nil {
		t.Fatalf("Register err=%v", err)
	}

	bio := "I like to skateboard"
	got, err := svc.Update(context.Background(), userUC.UpdateInput{ID: account.ID, Bio: &bio})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if got.Bio != bio || got.Username != "jake" || got.Email != "jake@jake.jake" {
		t.Fatalf("unexpected account after update: %+v", got)
	}
}

func TestService_Update_Password(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	account, _ := svc.Register(context.Background(), userUC.RegisterInput{
		Username: "jake", Email: "jake@jake.jake", Password: "c0rrect-horse",
	})

	next := "n3w-secret-phrase"
	if _, err := svc.Update(context.Background(), userUC.UpdateInput{ID: account.ID, Password: &next}); err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if _, err := svc.Login(context.Background(), userUC.LoginInput{
		Email: "jake@jake.jake", Password: next,
	}); err != nil {
		t.Fatalf("Login with new password err=%v", err)
	}
}

package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"conduit/internal/domain/entity"
	pg "conduit/internal/infra/adapter/persistence/postgres"
	"conduit/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

/* ─────────────────────────── ヘルパ ─────────────────────────── */

func userRow(u *entity.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "username", "password_hash",
		"bio", "image", "created_at", "updated_at",
	}).AddRow(
		u.ID, u.Email, u.Username, u.PasswordHash,
		u.Bio, u.Image, u.CreatedAt, u.UpdatedAt,
	)
}

/* ─────────────────────────── 1. Create ─────────────────────────── */

func TestUserRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("jake@jake.jake", "jake", "hash", "", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	repo := pg.NewUserRepo(db)
	user := &entity.User{Email: "jake@jake.jake", Username: "jake", PasswordHash: "hash"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if user.ID != 1 {
		t.Fatalf("ID = %d, want 1", user.ID)
	}
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	repo := pg.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{Email: "dup@x.io", Username: "dup"})
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("err=%v, want ErrDuplicateEmail", err)
	}
}

func TestUserRepo_Create_DuplicateUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	repo := pg.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{Email: "a@x.io", Username: "dup"})
	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Fatalf("err=%v, want ErrDuplicateUsername", err)
	}
}

/* ─────────────────────────── 2. Get ─────────────────────────── */

func TestUserRepo_GetByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.User{
		ID: 1, Email: "jake@jake.jake", Username: "jake", PasswordHash: "hash",
		Bio: "I work at statefarm", Image: "https://i/jake.jpg",
		CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery("FROM users").
		WithArgs("jake@jake.jake").
		WillReturnRows(userRow(want))

	repo := pg.NewUserRepo(db)
	got, err := repo.GetByEmail(context.Background(), "jake@jake.jake")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := pg.NewUserRepo(db)
	got, err := repo.GetByUsername(context.Background(), "ghost")
	if err != nil || got != nil {
		t.Fatalf("GetByUsername err=%v got=%v", err, got)
	}
}

/* ─────────────────────────── 3. Update ─────────────────────────── */

func TestUserRepo_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("UPDATE users").
		WithArgs("new@x.io", "jake", "hash", "bio", "img", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(time.Now()))

	repo := pg.NewUserRepo(db)
	err := repo.Update(context.Background(), &entity.User{
		ID: 1, Email: "new@x.io", Username: "jake", PasswordHash: "hash",
		Bio: "bio", Image: "img",
	})
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
}

/* ─────────────────────────── 4. Follow ─────────────────────────── */

func TestUserRepo_Follow_Idempotent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO follows")).
		WithArgs(int64(7), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewUserRepo(db)
	if err := repo.Follow(context.Background(), 7, 2); err != nil {
		t.Fatalf("Follow err=%v", err)
	}
}

func TestUserRepo_IsFollowing(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	repo := pg.NewUserRepo(db)
	got, err := repo.IsFollowing(context.Background(), 7, 2)
	if err != nil || !got {
		t.Fatalf("IsFollowing err=%v got=%v", err, got)
	}
}

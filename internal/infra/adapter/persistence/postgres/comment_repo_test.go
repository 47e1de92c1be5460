package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"conduit/internal/domain/entity"
	pg "conduit/internal/infra/adapter/persistence/postgres"
)

func TestCommentRepo_ListByArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("FROM comments c").
		WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "article_id", "author_id", "body", "created_at", "updated_at",
			"u_id", "username", "bio", "image", "author_followed",
		}).AddRow(int64(3), int64(1), int64(2), "Great post", now, now,
			int64(2), "anna", "", "", true))

	repo := pg.NewCommentRepo(db)
	got, err := repo.ListByArticle(context.Background(), 1, 7)
	if err != nil || len(got) != 1 {
		t.Fatalf("ListByArticle err=%v len=%d", err, len(got))
	}
	if got[0].Comment.Body != "Great post" || !got[0].AuthorFollowed {
		t.Fatalf("unexpected row: %+v", got[0])
	}
}

func TestCommentRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM comments").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := pg.NewCommentRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("Get err=%v got=%v", err, got)
	}
}

func TestCommentRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comments")).
		WithArgs(int64(1), int64(7), "Nice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(3), now, now))

	repo := pg.NewCommentRepo(db)
	comment := &entity.Comment{ArticleID: 1, AuthorID: 7, Body: "Nice"}
	if err := repo.Create(context.Background(), comment); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if comment.ID != 3 {
		t.Fatalf("ID = %d, want 3", comment.ID)
	}
}

func TestCommentRepo_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("DELETE FROM comments").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewCommentRepo(db)
	if err := repo.Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
}

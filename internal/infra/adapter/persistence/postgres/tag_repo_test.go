package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	pg "conduit/internal/infra/adapter/persistence/postgres"
)

func TestTagRepo_ListInUse(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM tags t").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("dragons").
			AddRow("go"))

	repo := pg.NewTagRepo(db)
	got, err := repo.ListInUse(context.Background())
	if err != nil {
		t.Fatalf("ListInUse err=%v", err)
	}
	if diff := cmp.Diff([]string{"dragons", "go"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestTagRepo_CountTags(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	repo := pg.NewTagRepo(db)
	got, err := repo.CountTags(context.Background())
	if err != nil || got != 2 {
		t.Fatalf("CountTags err=%v got=%d", err, got)
	}
}

package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conduit/internal/repository"
)

type TagRepo struct {
	db *sql.DB
}

func NewTagRepo(db *sql.DB) repository.TagRepository {
	return &TagRepo{db: db}
}

func (repo *TagRepo) ListInUse(ctx context.Context) ([]string, error) {
	const query = `
SELECT DISTINCT t.name
FROM tags t
INNER JOIN article_tags at ON at.tag_id = t.id
ORDER BY t.name`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ListInUse: %w", err)
	}
	defer func() { _ = rows.Close() }()

	names := make([]string, 0, 50)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("ListInUse: Scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// CountTags returns the total number of tag rows in the database.
func (repo *TagRepo) CountTags(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM tags`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountTags: %w", err)
	}
	return count, nil
}

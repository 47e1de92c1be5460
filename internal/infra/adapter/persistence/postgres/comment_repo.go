package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

type CommentRepo struct {
	db *sql.DB
}

func NewCommentRepo(db *sql.DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID, viewerID int64) ([]repository.CommentWithAuthor, error) {
	const query = `
SELECT c.id, c.article_id, c.author_id, c.body, c.created_at, c.updated_at,
       u.id, u.username, u.bio, u.image,
       EXISTS (SELECT 1 FROM follows fo WHERE fo.followed_id = c.author_id AND fo.follower_id = $2) AS author_followed
FROM comments c
INNER JOIN users u ON u.id = c.author_id
WHERE c.article_id = $1
ORDER BY c.created_at DESC, c.id DESC`
	rows, err := repo.db.QueryContext(ctx, query, articleID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("ListByArticle: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.CommentWithAuthor, 0, 20)
	for rows.Next() {
		var comment entity.Comment
		var author entity.User
		var followed bool
		if err := rows.Scan(&comment.ID, &comment.ArticleID, &comment.AuthorID,
			&comment.Body, &comment.CreatedAt, &comment.UpdatedAt,
			&author.ID, &author.Username, &author.Bio, &author.Image, &followed); err != nil {
			return nil, fmt.Errorf("ListByArticle: Scan: %w", err)
		}
		result = append(result, repository.CommentWithAuthor{
			Comment:        &comment,
			Author:         &author,
			AuthorFollowed: followed,
		})
	}
	return result, rows.Err()
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	const query = `
SELECT id, article_id, author_id, body, created_at, updated_at
FROM comments
WHERE id = $1
LIMIT 1`
	var comment entity.Comment
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&comment.ID, &comment.ArticleID, &comment.AuthorID,
			&comment.Body, &comment.CreatedAt, &comment.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &comment, nil
}

func (repo *CommentRepo) Create(ctx context.Context, comment *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author_id, body)
VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		comment.ArticleID, comment.AuthorID, comment.Body,
	).Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM comments WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

// CountComments returns the total number of comments in the database.
func (repo *CommentRepo) CountComments(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM comments`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountComments: %w", err)
	}
	return count, nil
}

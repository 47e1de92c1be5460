package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
)

// articleMetaColumns is the shared projection for every article read path.
// Author profile, tag names, favorite count and the viewer flags are loaded
// in the same query so list endpoints stay at one round trip per request.
// Tag names contain no commas, so the comma join is unambiguous.
const articleMetaColumns = `
a.id, a.author_id, a.slug, a.title, a.description, a.body, a.created_at, a.updated_at,
u.id, u.username, u.bio, u.image,
COALESCE((SELECT array_to_string(array_agg(t.name ORDER BY t.name), ',')
          FROM article_tags at
          JOIN tags t ON t.id = at.tag_id
          WHERE at.article_id = a.id), '') AS tag_list,
(SELECT COUNT(*) FROM favorites f WHERE f.article_id = a.id) AS favorites_count,
EXISTS (SELECT 1 FROM favorites f WHERE f.article_id = a.id AND f.user_id = %s) AS favorited,
EXISTS (SELECT 1 FROM follows fo WHERE fo.followed_id = a.author_id AND fo.follower_id = %s) AS author_followed`

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func scanArticleWithMeta(rows interface{ Scan(...any) error }) (repository.ArticleWithMeta, error) {
	var (
		article entity.Article
		author  entity.User
		tagList string
		meta    repository.ArticleWithMeta
	)
	err := rows.Scan(&article.ID, &article.AuthorID, &article.Slug, &article.Title,
		&article.Description, &article.Body, &article.CreatedAt, &article.UpdatedAt,
		&author.ID, &author.Username, &author.Bio, &author.Image,
		&tagList, &meta.FavoritesCount, &meta.Favorited, &meta.AuthorFollowed)
	if err != nil {
		return meta, err
	}
	meta.Article = &article
	meta.Author = &author
	meta.Tags = splitTagList(tagList)
	return meta, nil
}

func splitTagList(tagList string) []string {
	if tagList == "" {
		return []string{}
	}
	return strings.Split(tagList, ",")
}

func (repo *ArticleRepo) List(ctx context.Context, filters repository.ArticleListFilters, viewerID int64) ([]repository.ArticleWithMeta, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a")

	paramIndex := len(args) + 1
	viewer := fmt.Sprintf("$%d", paramIndex)
	args = append(args, viewerID, filters.Limit, filters.Offset)

	query := fmt.Sprintf(`
SELECT `+articleMetaColumns+`
FROM articles a
INNER JOIN users u ON u.id = a.author_id
%s
ORDER BY a.created_at DESC, a.id DESC
LIMIT $%d OFFSET $%d`, viewer, viewer, whereClause, paramIndex+1, paramIndex+2)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithMeta, 0, filters.Limit)
	for rows.Next() {
		meta, err := scanArticleWithMeta(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		result = append(result, meta)
	}
	return result, rows.Err()
}

// Count returns the total number of articles matching the filters.
// Uses ArticleQueryBuilder so the filter semantics stay identical to List.
func (repo *ArticleRepo) Count(ctx context.Context, filters repository.ArticleListFilters) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, "a")

	query := "SELECT COUNT(*) FROM articles a " + whereClause

	var count int64
	err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Feed(ctx context.Context, viewerID int64, limit, offset int) ([]repository.ArticleWithMeta, error) {
	query := fmt.Sprintf(`
SELECT `+articleMetaColumns+`
FROM articles a
INNER JOIN users u ON u.id = a.author_id
WHERE a.author_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)
ORDER BY a.created_at DESC, a.id DESC
LIMIT $2 OFFSET $3`, "$1", "$1")

	rows, err := repo.db.QueryContext(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("Feed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	result := make([]repository.ArticleWithMeta, 0, limit)
	for rows.Next() {
		meta, err := scanArticleWithMeta(rows)
		if err != nil {
			return nil, fmt.Errorf("Feed: Scan: %w", err)
		}
		result = append(result, meta)
	}
	return result, rows.Err()
}

func (repo *ArticleRepo) CountFeed(ctx context.Context, viewerID int64) (int64, error) {
	const query = `
SELECT COUNT(*) FROM articles a
WHERE a.author_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)`
	var count int64
	err := repo.db.QueryRowContext(ctx, query, viewerID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountFeed: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string, viewerID int64) (*repository.ArticleWithMeta, error) {
	query := fmt.Sprintf(`
SELECT `+articleMetaColumns+`
FROM articles a
INNER JOIN users u ON u.id = a.author_id
WHERE a.slug = $2
LIMIT 1`, "$1", "$1")

	row := repo.db.QueryRowContext(ctx, query, viewerID, slug)
	meta, err := scanArticleWithMeta(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return &meta, nil
}

// Create inserts the article and upserts its tags in one transaction.
// Tag upserts use ON CONFLICT DO NOTHING so concurrent inserts of the same
// tag name cannot fail; the link insert resolves the tag id afterwards.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article, tags []string) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Create: BeginTx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const insertArticle = `
INSERT INTO articles (author_id, slug, title, description, body)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at, updated_at`
	err = tx.QueryRowContext(ctx, insertArticle,
		article.AuthorID, article.Slug, article.Title, article.Description, article.Body,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
	if err != nil {
		if sentinel := mapUniqueViolation(err); sentinel != nil {
			return sentinel
		}
		return fmt.Errorf("Create: %w", err)
	}

	const upsertTag = `INSERT INTO tags (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`
	const linkTag = `
INSERT INTO article_tags (article_id, tag_id)
SELECT $1, id FROM tags WHERE name = $2
ON CONFLICT DO NOTHING`
	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx, upsertTag, tag); err != nil {
			return fmt.Errorf("Create: upsert tag: %w", err)
		}
		if _, err := tx.ExecContext(ctx, linkTag, article.ID, tag); err != nil {
			return fmt.Errorf("Create: link tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Create: Commit: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       slug        = $1,
       title       = $2,
       description = $3,
       body        = $4,
       updated_at  = now()
WHERE id = $5
RETURNING updated_at`
	err := repo.db.QueryRowContext(ctx, query,
		article.Slug, article.Title, article.Description, article.Body, article.ID,
	).Scan(&article.UpdatedAt)
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

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Favorite(ctx context.Context, userID, articleID int64) error {
	const query = `
INSERT INTO favorites (user_id, article_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`
	if _, err := repo.db.ExecContext(ctx, query, userID, articleID); err != nil {
		return fmt.Errorf("Favorite: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Unfavorite(ctx context.Context, userID, articleID int64) error {
	const query = `DELETE FROM favorites WHERE user_id = $1 AND article_id = $2`
	if _, err := repo.db.ExecContext(ctx, query, userID, articleID); err != nil {
		return fmt.Errorf("Unfavorite: %w", err)
	}
	return nil
}

// CountArticles returns the total number of articles in the database.
func (repo *ArticleRepo) CountArticles(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("CountArticles: %w", err)
	}
	return count, nil
}

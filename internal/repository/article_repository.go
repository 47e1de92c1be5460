package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

// ArticleListFilters contains the optional, conjunctive filters for article
// listings. Empty string means the filter is not applied.
type ArticleListFilters struct {
	Tag         string // articles whose tag set contains this name
	Author      string // articles authored by this username
	FavoritedBy string // articles favorited by this username
	Limit       int
	Offset      int
}

// ArticleWithMeta is the joined projection of an article used by every read
// path: the article row plus its author profile, tag names, favorite count
// and the two viewer-relative flags. Loading it in a single query keeps the
// list endpoints free of N+1 access patterns.
type ArticleWithMeta struct {
	Article        *entity.Article
	Author         *entity.User
	Tags           []string
	Favorited      bool
	FavoritesCount int64
	AuthorFollowed bool
}

// ArticleRepository persists articles together with their tag and favorite
// associations.
//
// viewerID identifies the requesting user for the Favorited/AuthorFollowed
// flags; 0 means anonymous (both flags false).
type ArticleRepository interface {
	// List returns articles matching the filters, newest first.
	List(ctx context.Context, filters ArticleListFilters, viewerID int64) ([]ArticleWithMeta, error)
	// Count returns the total number of articles matching the filters,
	// ignoring Limit and Offset.
	Count(ctx context.Context, filters ArticleListFilters) (int64, error)

	// Feed returns articles authored by users the viewer follows, newest first.
	Feed(ctx context.Context, viewerID int64, limit, offset int) ([]ArticleWithMeta, error)
	CountFeed(ctx context.Context, viewerID int64) (int64, error)

	// GetBySlug returns (nil, nil) when no article has the slug.
	GetBySlug(ctx context.Context, slug string, viewerID int64) (*ArticleWithMeta, error)

	// Create inserts the article and upserts its tags in one transaction,
	// filling in the generated ID and timestamps. Returns ErrDuplicateSlug
	// when the slug unique constraint rejects the insert.
	Create(ctx context.Context, article *entity.Article, tags []string) error
	// Update rewrites slug, title, description and body and bumps
	// updated_at. Returns ErrDuplicateSlug on a slug collision.
	Update(ctx context.Context, article *entity.Article) error
	// Delete removes the article; comments, favorites and tag links are
	// removed by the schema's cascade rules.
	Delete(ctx context.Context, id int64) error

	// Favorite records userID favoriting articleID; favoriting twice is a
	// no-op. Unfavorite removes the row; removing an absent row is a no-op.
	Favorite(ctx context.Context, userID, articleID int64) error
	Unfavorite(ctx context.Context, userID, articleID int64) error

	// CountArticles returns the total number of articles, used for metrics.
	CountArticles(ctx context.Context) (int64, error)
}

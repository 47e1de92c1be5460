package article

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"conduit/internal/domain/entity"
	"conduit/internal/pkg/slugs"
	"conduit/internal/repository"
)

// maxSlugAttempts bounds the numeric-suffix retry loop when a generated
// slug collides with an existing article.
const maxSlugAttempts = 50

// ListInput represents the filters and pagination for the global listing.
type ListInput struct {
	Tag         string
	Author      string
	FavoritedBy string
	Limit       int
	Offset      int
}

// CreateInput represents the input parameters for publishing a new article.
type CreateInput struct {
	Title       string
	Description string
	Body        string
	Tags        []string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	Title       *string
	Description *string
	Body        *string
}

// ListResult represents one page of articles together with the total count
// of matches, ignoring pagination.
type ListResult struct {
	Articles []repository.ArticleWithMeta
	Total    int64
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo  repository.ArticleRepository
	Users repository.UserRepository
}

// List retrieves one page of the global article listing, newest first.
// viewerID 0 means anonymous.
func (s *Service) List(ctx context.Context, in ListInput, viewerID int64) (*ListResult, error) {
	filters := repository.ArticleListFilters{
		Tag:         in.Tag,
		Author:      in.Author,
		FavoritedBy: in.FavoritedBy,
		Limit:       in.Limit,
		Offset:      in.Offset,
	}

	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.List(ctx, filters, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &ListResult{Articles: articles, Total: total}, nil
}

// Feed retrieves one page of articles authored by users the viewer follows,
// newest first.
func (s *Service) Feed(ctx context.Context, viewerID int64, limit, offset int) (*ListResult, error) {
	total, err := s.Repo.CountFeed(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("count feed: %w", err)
	}

	articles, err := s.Repo.Feed(ctx, viewerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}

	return &ListResult{Articles: articles, Total: total}, nil
}

// Get retrieves a single article by its slug.
// Returns ErrArticleNotFound if no article has the slug.
func (s *Service) Get(ctx context.Context, slug string, viewerID int64) (*repository.ArticleWithMeta, error) {
	meta, err := s.Repo.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if meta == nil {
		return nil, ErrArticleNotFound
	}
	return meta, nil
}

// Create publishes a new article authored by authorID.
// The slug is derived from the title; on a collision a numeric suffix is
// appended and the insert retried, so concurrent publishes of the same
// title both succeed.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, authorID int64, in CreateInput) (*repository.ArticleWithMeta, error) {
	if err := entity.ValidateTitle(in.Title); err != nil {
		return nil, err
	}
	if in.Body == "" {
		return nil, &entity.ValidationError{Field: "body", Message: "is required"}
	}
	tags, err := normalizeTags(in.Tags)
	if err != nil {
		return nil, err
	}

	author, err := s.Users.GetByID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, fmt.Errorf("get author: user %d not found", authorID)
	}

	art := &entity.Article{
		AuthorID:    authorID,
		Title:       in.Title,
		Description: in.Description,
		Body:        in.Body,
	}

	base := slugs.Make(in.Title)
	// 記号だけのタイトルはスラグが空になるので拒否する
	if base == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "must contain at least one letter or digit"}
	}
	art.Slug = base
	for attempt := 2; ; attempt++ {
		err := s.Repo.Create(ctx, art, tags)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("create article: %w", err)
		}
		if attempt > maxSlugAttempts {
			return nil, fmt.Errorf("create article: could not derive unique slug for %q", in.Title)
		}
		art.Slug = slugs.WithSuffix(base, attempt)
	}

	return &repository.ArticleWithMeta{
		Article: art,
		Author:  author,
		Tags:    tags,
	}, nil
}

// Update modifies an existing article with the provided input.
// Only non-nil fields in the input will be updated. A title change derives
// a fresh slug; description and body edits keep the slug stable.
// Returns ErrArticleNotFound if no article has the slug.
// Returns ErrNotArticleAuthor if the acting user does not own the article.
func (s *Service) Update(ctx context.Context, viewerID int64, slug string, in UpdateInput) (*repository.ArticleWithMeta, error) {
	meta, err := s.Repo.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if meta == nil {
		return nil, ErrArticleNotFound
	}
	if meta.Article.AuthorID != viewerID {
		return nil, ErrNotArticleAuthor
	}

	art := meta.Article
	base := art.Slug
	if in.Title != nil && *in.Title != art.Title {
		if err := entity.ValidateTitle(*in.Title); err != nil {
			return nil, err
		}
		base = slugs.Make(*in.Title)
		if base == "" {
			return nil, &entity.ValidationError{Field: "title", Message: "must contain at least one letter or digit"}
		}
		art.Title = *in.Title
		art.Slug = base
	}
	if in.Description != nil {
		art.Description = *in.Description
	}
	if in.Body != nil {
		if *in.Body == "" {
			return nil, &entity.ValidationError{Field: "body", Message: "cannot be empty"}
		}
		art.Body = *in.Body
	}

	for attempt := 2; ; attempt++ {
		err := s.Repo.Update(ctx, art)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateSlug) {
			return nil, fmt.Errorf("update article: %w", err)
		}
		if attempt > maxSlugAttempts {
			return nil, fmt.Errorf("update article: could not derive unique slug for %q", art.Title)
		}
		art.Slug = slugs.WithSuffix(base, attempt)
	}

	return meta, nil
}

// Delete removes an article by its slug. Comments, favorites and tag links
// go with it.
// Returns ErrArticleNotFound if no article has the slug.
// Returns ErrNotArticleAuthor if the acting user does not own the article.
func (s *Service) Delete(ctx context.Context, viewerID int64, slug string) error {
	meta, err := s.Repo.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if meta == nil {
		return ErrArticleNotFound
	}
	if meta.Article.AuthorID != viewerID {
		return ErrNotArticleAuthor
	}

	if err := s.Repo.Delete(ctx, meta.Article.ID); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Favorite records the viewer favoriting the article and returns it with
// refreshed counts. Favoriting twice is a no-op.
func (s *Service) Favorite(ctx context.Context, viewerID int64, slug string) (*repository.ArticleWithMeta, error) {
	return s.setFavorite(ctx, viewerID, slug, s.Repo.Favorite)
}

// Unfavorite removes the viewer's favorite and returns the article with
// refreshed counts. Unfavoriting an article that was not favorited is a
// no-op.
func (s *Service) Unfavorite(ctx context.Context, viewerID int64, slug string) (*repository.ArticleWithMeta, error) {
	return s.setFavorite(ctx, viewerID, slug, s.Repo.Unfavorite)
}

func (s *Service) setFavorite(ctx context.Context, viewerID int64, slug string, op func(context.Context, int64, int64) error) (*repository.ArticleWithMeta, error) {
	meta, err := s.Repo.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if meta == nil {
		return nil, ErrArticleNotFound
	}

	if err := op(ctx, viewerID, meta.Article.ID); err != nil {
		return nil, fmt.Errorf("set favorite: %w", err)
	}

	// 反映後の件数とフラグを読み直す
	meta, err = s.Repo.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if meta == nil {
		return nil, ErrArticleNotFound
	}
	return meta, nil
}

// normalizeTags validates, deduplicates and sorts the tag list so stored
// tag sets match the alphabetical order of the read path.
func normalizeTags(tags []string) ([]string, error) {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if err := entity.ValidateTagName(tag); err != nil {
			return nil, err
		}
		if seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	sort.Strings(out)
	return out, nil
}

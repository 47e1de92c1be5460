package comment

import (
	"context"
	"fmt"

	"conduit/internal/domain/entity"
	"conduit/internal/repository"
	"conduit/internal/usecase/article"
)

// Service provides comment use cases. Comments are always addressed through
// their article's slug, so the article repository resolves the slug first.
type Service struct {
	Repo     repository.CommentRepository
	Articles repository.ArticleRepository
	Users    repository.UserRepository
}

// List retrieves the comments on an article, newest first.
// viewerID 0 means anonymous.
// Returns article.ErrArticleNotFound if no article has the slug.
func (s *Service) List(ctx context.Context, slug string, viewerID int64) ([]repository.CommentWithAuthor, error) {
	art, err := s.Articles.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, article.ErrArticleNotFound
	}

	comments, err := s.Repo.ListByArticle(ctx, art.Article.ID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create adds a comment to the article identified by slug.
// Returns a ValidationError when the body is empty.
// Returns article.ErrArticleNotFound if no article has the slug.
func (s *Service) Create(ctx context.Context, viewerID int64, slug, body string) (*repository.CommentWithAuthor, error) {
	if body == "" {
		return nil, &entity.ValidationError{Field: "body", Message: "is required"}
	}

	art, err := s.Articles.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, article.ErrArticleNotFound
	}

	author, err := s.Users.GetByID(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, fmt.Errorf("get author: user %d not found", viewerID)
	}

	cmt := &entity.Comment{
		ArticleID: art.Article.ID,
		AuthorID:  viewerID,
		Body:      body,
	}
	if err := s.Repo.Create(ctx, cmt); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return &repository.CommentWithAuthor{Comment: cmt, Author: author}, nil
}

// Delete removes a comment from the article identified by slug.
// The comment must belong to that article; a valid comment ID under the
// wrong slug is treated as not found.
// Returns ErrNotCommentAuthor if the acting user does not own the comment.
func (s *Service) Delete(ctx context.Context, viewerID int64, slug string, commentID int64) error {
	art, err := s.Articles.GetBySlug(ctx, slug, viewerID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return article.ErrArticleNotFound
	}

	cmt, err := s.Repo.Get(ctx, commentID)
	if err != nil {
		return fmt.Errorf("get comment: %w", err)
	}
	if cmt == nil || cmt.ArticleID != art.Article.ID {
		return ErrCommentNotFound
	}
	if cmt.AuthorID != viewerID {
		return ErrNotCommentAuthor
	}

	if err := s.Repo.Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

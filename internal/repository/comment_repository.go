package repository

import (
	"context"

	"conduit/internal/domain/entity"
)

// CommentWithAuthor pairs a comment with its author profile and the
// viewer-relative following flag, loaded in a single joined query.
type CommentWithAuthor struct {
	Comment        *entity.Comment
	Author         *entity.User
	AuthorFollowed bool
}

// CommentRepository persists article comments.
type CommentRepository interface {
	// ListByArticle returns the article's comments, newest first.
	// viewerID 0 means anonymous.
	ListByArticle(ctx context.Context, articleID, viewerID int64) ([]CommentWithAuthor, error)
	// Get returns (nil, nil) when no comment has the id.
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	// Create inserts the comment and fills in the generated ID and timestamps.
	Create(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id int64) error

	// CountComments returns the total number of comments, used for metrics.
	CountComments(ctx context.Context) (int64, error)
}

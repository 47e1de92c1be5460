package entity

import "time"

// Comment represents a reader comment attached to an article.
// Comments are deleted together with their article.
type Comment struct {
	ID        int64
	ArticleID int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

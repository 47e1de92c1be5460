package entity

import "time"

// Article represents a published post in the system.
// The slug is derived from the title and is unique across all articles;
// it is the public identifier used in URLs.
type Article struct {
	ID          int64
	AuthorID    int64
	Slug        string
	Title       string
	Description string
	Body        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

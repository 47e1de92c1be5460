// Package article provides use cases for publishing, listing and curating
// articles, including the personal feed and favorites.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that no article has the requested slug.
	ErrArticleNotFound = errors.New("article not found")

	// ErrNotArticleAuthor indicates that the acting user does not own the
	// article. Update and Delete are restricted to the author.
	ErrNotArticleAuthor = errors.New("not the article author")
)

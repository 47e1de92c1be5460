// Package comment provides use cases for commenting on articles.
package comment

import "errors"

// Sentinel errors for comment use case operations.
var (
	// ErrCommentNotFound indicates that the article has no comment with the
	// requested ID.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrNotCommentAuthor indicates that the acting user does not own the
	// comment. Deletion is restricted to the author.
	ErrNotCommentAuthor = errors.New("not the comment author")
)

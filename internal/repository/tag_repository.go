package repository

import "context"

// TagRepository reads the tag dictionary. Tag rows are written through
// ArticleRepository.Create as part of the article transaction.
type TagRepository interface {
	// ListInUse returns the distinct names of tags attached to at least one
	// article, in alphabetical order.
	ListInUse(ctx context.Context) ([]string, error)

	// CountTags returns the total number of tag rows, used for metrics.
	CountTags(ctx context.Context) (int64, error)
}

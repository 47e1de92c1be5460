// Package tag provides the tag dictionary use case.
package tag

import (
	"context"
	"fmt"

	"conduit/internal/repository"
)

// Service provides read access to the tag dictionary.
type Service struct {
	Repo repository.TagRepository
}

// List retrieves the names of tags attached to at least one article,
// in alphabetical order. A tag whose last article was deleted no longer
// appears.
func (s *Service) List(ctx context.Context) ([]string, error) {
	tags, err := s.Repo.ListInUse(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

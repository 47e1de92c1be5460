// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"conduit/internal/repository"
)

// ArticleQueryBuilder builds WHERE clauses for the global article listing.
// This builder is shared between COUNT and SELECT queries to eliminate duplication.
// It uses numbered placeholders ($1, $2, etc.) and keeps every filter as an
// explicit subquery so the main query stays a single round trip.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildWhereClause builds WHERE clause and arguments for the article listing
// filters (tag, author username, favorited-by username). All filters combine
// with AND. Returns an empty clause when no filters are set.
func (qb *ArticleQueryBuilder) BuildWhereClause(filters repository.ArticleListFilters, tableAlias string) (clause string, args []interface{}) {
	var conditions []string
	paramIndex := 1

	idCol := "id"
	authorCol := "author_id"
	if tableAlias != "" {
		idCol = tableAlias + ".id"
		authorCol = tableAlias + ".author_id"
	}

	if filters.Tag != "" {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM article_tags at
         JOIN tags t ON t.id = at.tag_id
         WHERE at.article_id = %s AND t.name = $%d)`, idCol, paramIndex))
		args = append(args, filters.Tag)
		paramIndex++
	}

	if filters.Author != "" {
		conditions = append(conditions, fmt.Sprintf(
			`%s = (SELECT id FROM users WHERE username = $%d)`, authorCol, paramIndex))
		args = append(args, filters.Author)
		paramIndex++
	}

	if filters.FavoritedBy != "" {
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS (SELECT 1 FROM favorites f
         JOIN users fu ON fu.id = f.user_id
         WHERE f.article_id = %s AND fu.username = $%d)`, idCol, paramIndex))
		args = append(args, filters.FavoritedBy)
	}

	if len(conditions) == 0 {
		return "", args
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

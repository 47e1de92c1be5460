// Package slugs derives URL-safe article identifiers from titles.
package slugs

import (
	"fmt"

	"github.com/gosimple/slug"
)

// Make converts a title into a lowercase, URL-safe slug
// ("Hello World" -> "hello-world").
func Make(title string) string {
	return slug.Make(title)
}

// WithSuffix appends a numeric disambiguation suffix to a base slug
// ("hello-world", 2 -> "hello-world-2"). Used when the base slug collides
// with an existing article.
func WithSuffix(base string, n int) string {
	return fmt.Sprintf("%s-%d", base, n)
}

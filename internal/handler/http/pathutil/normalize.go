package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
// Pre-compiled at initialization so normalization stays cheap per request.
var pathPatterns = []*PathPattern{
	// Article routes addressed by slug
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/comments/\d+$`), Template: "/api/articles/:slug/comments/:id"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/comments$`), Template: "/api/articles/:slug/comments"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+/favorite$`), Template: "/api/articles/:slug/favorite"},
	{Pattern: regexp.MustCompile(`^/api/articles/feed$`), Template: "/api/articles/feed"},
	{Pattern: regexp.MustCompile(`^/api/articles/[^/]+$`), Template: "/api/articles/:slug"},

	// Profile routes addressed by username
	{Pattern: regexp.MustCompile(`^/api/profiles/[^/]+/follow$`), Template: "/api/profiles/:username/follow"},
	{Pattern: regexp.MustCompile(`^/api/profiles/[^/]+$`), Template: "/api/profiles/:username"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with slugs or IDs (e.g., /api/articles/how-to-train-your-dragon)
// to template format (e.g., /api/articles/:slug). Static paths remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/articles/my-first-post")          // "/api/articles/:slug"
//	NormalizePath("/api/articles/feed")                   // "/api/articles/feed"
//	NormalizePath("/api/articles/my-post/comments/4")     // "/api/articles/:slug/comments/:id"
//	NormalizePath("/api/profiles/jake")                   // "/api/profiles/:username"
//	NormalizePath("/api/tags")                            // "/api/tags" (unchanged)
//	NormalizePath("/health")                              // "/health" (unchanged)
func NormalizePath(path string) string {
	// Strip query parameters if present
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	// No match found, return original path. Static paths like /health,
	// /metrics and /api/tags pass through unchanged.
	return path
}

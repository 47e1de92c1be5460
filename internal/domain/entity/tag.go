package entity

// Tag represents a label attached to articles. Tag names are unique;
// tags are created lazily when first referenced by an article and are
// never deleted, so orphan tags may exist.
type Tag struct {
	ID   int64
	Name string
}

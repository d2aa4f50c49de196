package document

import "github.com/goliatone/go-slug"

// NormalizeSlug rewrites a candidate value into a URL-safe slug using the
// shared slug rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether value already satisfies the slug rules. It is
// the check behind both the field validator and the collection index.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

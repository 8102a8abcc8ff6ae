package model

import "strings"

// EqualID compares two blog identifiers.
// Wishlist entries and URL parameters carry raw strings while records use
// the store's native identifier, so both sides are normalized before the
// comparison instead of assuming incidental equality.
func EqualID(a, b string) bool {
	return normalizeID(a) == normalizeID(b)
}

// NormalizeID returns the canonical form of a raw identifier.
func NormalizeID(id string) string {
	return normalizeID(id)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

package model

import "strings"

// Dietary categories offered by the client. Stored values are compared
// after NormalizeDietary, so "Vegetarian" and " vegetarian" are the same
// category.
const (
	DietaryNone          = "none"
	DietaryVegetarian    = "vegetarian"
	DietaryNonVegetarian = "non-vegetarian"
)

// NormalizeDietary returns the canonical form of a dietary category or filter
func NormalizeDietary(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// IsNoDietaryFilter reports whether a filter value means "do not filter"
func IsNoDietaryFilter(v string) bool {
	n := NormalizeDietary(v)
	return n == "" || n == DietaryNone
}

// IsKnownDietary reports whether v is one of the categories offered by the client
func IsKnownDietary(v string) bool {
	switch NormalizeDietary(v) {
	case DietaryNone, DietaryVegetarian, DietaryNonVegetarian:
		return true
	}
	return false
}

// ABOUTME: Pure client-side filtering for resource lists
// ABOUTME: Free-text search plus categorical predicates, order-preserving and stateless

package view

import "strings"

// Predicate reports whether an item passes one categorical filter.
type Predicate[T any] func(T) bool

// Apply returns the items matching the free-text search and every
// predicate. Filtering is a pure function of its inputs: the original
// relative order is preserved, the input slice is never modified, and
// applying the same arguments twice yields the same subset.
//
// The search term matches case-insensitively as a substring of any of the
// item's search fields; an empty term matches everything.
func Apply[T any](items []T, search string, searchFields func(T) []string, predicates ...Predicate[T]) []T {
	search = strings.ToLower(strings.TrimSpace(search))

	filtered := make([]T, 0, len(items))
outer:
	for _, item := range items {
		for _, pred := range predicates {
			if !pred(item) {
				continue outer
			}
		}
		if search != "" && !matchesSearch(item, search, searchFields) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// matchesSearch reports whether any search field contains the lowercased term.
func matchesSearch[T any](item T, term string, searchFields func(T) []string) bool {
	if searchFields == nil {
		return false
	}
	for _, field := range searchFields(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// FieldEquals builds a categorical predicate comparing one string field
// against a selected value. An empty or "all" selection passes everything.
func FieldEquals[T any](get func(T) string, want string) Predicate[T] {
	if want == "" || want == "all" {
		return func(T) bool { return true }
	}
	return func(item T) bool { return get(item) == want }
}

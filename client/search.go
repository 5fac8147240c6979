package client

import "strings"

// Filter is the client-side search: a pure, case-insensitive substring
// match over the text fields of an already-fetched collection. An
// empty term returns the input unchanged; applying the same term twice
// yields the same result as once.
func Filter[T any](items []T, term string, fieldsOf func(T) []string) []T {
	if term == "" || fieldsOf == nil {
		return items
	}
	needle := strings.ToLower(term)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fieldsOf(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

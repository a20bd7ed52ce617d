package nav

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Titled is anything with a searchable title.
type Titled interface {
	ItemTitle() string
}

// Filter returns the items whose title contains search, ignoring case, in
// their original order. An empty search returns items unchanged.
func Filter[T Titled](items []T, search string) []T {
	if search == "" {
		return items
	}
	// Casers keep state; one per call.
	lower := cases.Lower(language.Und)
	needle := lower.String(search)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if strings.Contains(lower.String(it.ItemTitle()), needle) {
			out = append(out, it)
		}
	}
	return out
}

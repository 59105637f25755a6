// Package catalog implements the public product filter.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// All matches every item regardless of brand or product line.
const All = "All"

// Item is anything the public filter can match against.
type Item interface {
	FilterName() string
	FilterDescription() string
	FilterCategory() string
	FilterType() string
}

// Filter returns, in input order, the items that match category and query.
// A category matches when it is All (or empty) or equals the item's category
// or type exactly. A query matches when it is empty or is a case-insensitive
// substring of the item's name or description. The query is not trimmed.
// Matching uses Unicode case folding, which is looser than lower casing:
// "ß" matches "ss".
func Filter[T Item](items []T, category, query string) []T {
	fold := cases.Fold()
	q := fold.String(query)
	out := make([]T, 0, len(items))
	for _, it := range items {
		if !matchesCategory(it, category) {
			continue
		}
		if q != "" &&
			!strings.Contains(fold.String(it.FilterName()), q) &&
			!strings.Contains(fold.String(it.FilterDescription()), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesCategory(it Item, category string) bool {
	return category == "" || category == All ||
		it.FilterCategory() == category || it.FilterType() == category
}

// Package query implements the generic listing engine shared by every
// resource endpoint: optional text filters composed with AND, followed by an
// optional fixed-size page window. The engine only reads its input, never
// re-sorts it, and is safe to call from any number of goroutines.
package query

import "strings"

// PageSize is the fixed window size for paginated listings.
const PageSize = 10

// PageRequest selects between an unpaginated full scan and a 1-based page
// window. The two cases are an explicit variant rather than a nullable int so
// the full-scan branch stays an intentional code path.
type PageRequest struct {
	number int
}

// NoPage requests the full filtered source with no windowing.
func NoPage() PageRequest { return PageRequest{} }

// PageOf requests the n-th fixed-size window, 1-based. Values below 1 behave
// like NoPage.
func PageOf(n int) PageRequest { return PageRequest{number: n} }

// Paginated reports whether the request selects a window.
func (p PageRequest) Paginated() bool { return p.number > 0 }

// Number returns the 1-based page number; meaningful only when Paginated.
func (p PageRequest) Number() int { return p.number }

// Filter is a case-insensitive substring predicate over one text field of T.
// An empty Value matches everything, making unset query parameters no-ops.
type Filter[T any] struct {
	Value string
	Field func(T) string
}

func (f Filter[T]) matches(item T) bool {
	if f.Value == "" {
		return true
	}
	return strings.Contains(strings.ToLower(f.Field(item)), strings.ToLower(f.Value))
}

// List filters src (all filters must match) and then applies the page window
// when one is requested. Pages past the end of the filtered source yield an
// empty slice, never an error. Source order is preserved throughout.
func List[T any](src []T, page PageRequest, filters ...Filter[T]) []T {
	out := make([]T, 0, len(src))
	for _, item := range src {
		ok := true
		for _, f := range filters {
			if !f.matches(item) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	if !page.Paginated() {
		return out
	}
	lo := (page.Number() - 1) * PageSize
	if lo >= len(out) {
		return []T{}
	}
	hi := lo + PageSize
	if hi > len(out) {
		hi = len(out)
	}
	return out[lo:hi]
}

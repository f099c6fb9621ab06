// Copyright (c) 2026 Libris. All rights reserved.

package catalog

import "strings"

// normalize trims surrounding whitespace and lowercases.
//
// Every string comparison in the query pipeline — both the filter value and
// the record field — goes through this one function so the two sides always
// agree.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// predicate builds the record inclusion test for this filter: the logical
// AND of the active sub-predicates. Absent fields contribute nothing, so an
// empty filter matches everything.
func (f Filter) predicate() func(*Book) bool {
	var tests []func(*Book) bool

	if f.Author != "" {
		needle := normalize(f.Author)
		tests = append(tests, func(b *Book) bool {
			return strings.Contains(normalize(b.Author), needle)
		})
	}

	if f.Year != nil {
		year := *f.Year
		tests = append(tests, func(b *Book) bool {
			return b.Year == year
		})
	}

	if f.Search != "" {
		needle := normalize(f.Search)
		tests = append(tests, func(b *Book) bool {
			return strings.Contains(normalize(b.Title), needle)
		})
	}

	return func(b *Book) bool {
		for _, test := range tests {
			if !test(b) {
				return false
			}
		}
		return true
	}
}

// comparator builds the total order for this filter's sort spec, or nil when
// no sort is requested (the snapshot order is kept as-is).
//
// Descending order negates the comparator rather than reversing the sorted
// slice: combined with a stable sort, records comparing equal keep their
// snapshot order in both directions, so repeated queries against an
// unchanged store return identical orderings.
func (f Filter) comparator() func(a, b *Book) int {
	var compare func(a, b *Book) int

	switch f.SortBy {
	case SortByYear:
		compare = func(a, b *Book) int {
			switch {
			case a.Year < b.Year:
				return -1
			case a.Year > b.Year:
				return 1
			default:
				return 0
			}
		}
	case SortByAuthor:
		compare = func(a, b *Book) int {
			return strings.Compare(normalize(a.Author), normalize(b.Author))
		}
	default:
		return nil
	}

	if f.SortOrder == SortOrderDesc {
		ascending := compare
		compare = func(a, b *Book) int { return -ascending(a, b) }
	}

	return compare
}

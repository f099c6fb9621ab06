// Copyright (c) 2026 Libris. All rights reserved.

/*
Package catalog defines the book catalog domain: the Book record, the
filter/sort query model, the repository contract with its in-memory
implementation, and the HTTP handlers exposing the catalog API.

Core Responsibility:

  - Records: Create, look up, and delete book entries with store-assigned ids.
  - Discovery: Filter by author/year/title, sort, and paginate the collection.
  - Insight: Collection statistics (size, distinct authors).

This package acts as the source of truth for all catalog-related data models.
*/
package catalog

import "time"

// Book represents one catalog entry.
//
// The ID is assigned by the repository at creation time and is never reused,
// even after the record is deleted. All other fields are set at creation and
// not mutated in place; an update is modeled as delete+create.
type Book struct {
	ID     int      `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   int      `json:"year"`
	Tags   []string `json:"tags"`
}

// CreateBookInput carries the client-supplied fields for a new book.
type CreateBookInput struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Year   int      `json:"year"`
	Tags   []string `json:"tags"`
}

// Filter holds the parameters for one paginated catalog query.
//
// Author and Search match as case-insensitive substrings (against the
// author and title respectively); Year matches exactly. Absent fields
// do not constrain the result.
type Filter struct {
	Author    string
	Year      *int
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Stats summarizes the whole collection.
//
// UniqueAuthors counts distinct author strings by exact, case-sensitive
// identity. The author filter matches case-insensitively; the asymmetry is
// intentional and mirrors the shipped behavior.
type Stats struct {
	TotalBooks    int `json:"total_books"`
	UniqueAuthors int `json:"unique_authors"`
}

// # Sort Enums

const (
	SortByYear   = "year"
	SortByAuthor = "author"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// # Field Bounds

const (
	MaxTitleLen  = 500
	MaxAuthorLen = 200
	MinYear      = 1400
)

// MaxYear returns the upper bound for a publication year: the current
// calendar year.
func MaxYear() int {
	return time.Now().Year()
}

// Global field names for validation
const (
	FieldTitle     = "title"
	FieldAuthor    = "author"
	FieldYear      = "year"
	FieldSortBy    = "sort_by"
	FieldSortOrder = "sort_order"
)

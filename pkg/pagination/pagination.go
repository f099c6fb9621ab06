// Copyright (c) 2026 Libris. All rights reserved.

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters,
// how an ordered slice is cut into a single page, and how the resulting
// metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the zero-based index of the first item on the page.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewMeta constructs pagination metadata for a response.
//
// Total is the count of items before slicing, so HasNext reflects whether
// another page of results exists beyond the current one.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		// Equivalent to page*limit < total, but cannot overflow for huge pages.
		HasNext: page < totalPages,
		HasPrev: page > 1,
	}
}

// Page is one slice of an ordered result set plus its navigation metadata.
type Page[T any] struct {
	Items []T  `json:"items"`
	Meta  Meta `json:"meta"`
}

// Paginate cuts an already filtered and sorted slice into a single page.
//
// # Bounds
//
// The window [start, start+limit) is clamped to the slice bounds. A page past
// the end of the data is legal: it yields empty Items with Total unchanged
// and HasNext false, never an error. Items is never nil so list responses
// always marshal as a JSON array.
//
// Page and limit are assumed already validated by the HTTP boundary
// (see [FromRequest]); Paginate does not re-validate them.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)

	var start int
	switch {
	case page <= 1:
		start = 0
	case limit > 0 && page-1 > total/limit:
		// The window starts past the end. Checked by division because
		// (page-1)*limit overflows int for huge pages and would wrap
		// back into the data.
		start = total
	default:
		start = (page - 1) * limit
		if start > total {
			start = total
		}
	}

	end := start + limit
	if end > total || end < start {
		end = total
	}

	window := items[start:end]
	if window == nil {
		window = []T{}
	}

	return Page[T]{
		Items: window,
		Meta:  NewMeta(page, limit, total),
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}

// Copyright (c) 2026 Libris. All rights reserved.

package pagination_test

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamk/libris/pkg/pagination"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

/*
TestPaginate_PageWalk verifies the page-by-page slicing of a 10-item
sequence with limit 3, including the empty page past the end.
*/
func TestPaginate_PageWalk(t *testing.T) {
	items := sequence(10)

	tests := []struct {
		name      string
		page      int
		wantItems []int
		wantNext  bool
		wantPrev  bool
	}{
		{"first_page", 1, []int{1, 2, 3}, true, false},
		{"middle_page", 2, []int{4, 5, 6}, true, true},
		{"last_full_page", 3, []int{7, 8, 9}, true, true},
		{"last_partial_page", 4, []int{10}, false, true},
		{"past_the_end", 5, []int{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := pagination.Paginate(items, tt.page, 3)

			assert.Equal(t, tt.wantItems, page.Items)
			assert.Equal(t, 10, page.Meta.Total)
			assert.Equal(t, tt.page, page.Meta.Page)
			assert.Equal(t, 3, page.Meta.Limit)
			assert.Equal(t, tt.wantNext, page.Meta.HasNext)
			assert.Equal(t, tt.wantPrev, page.Meta.HasPrev)
		})
	}
}

/*
TestPaginate_Completeness checks that concatenating all pages reproduces
the input sequence exactly once, for several page sizes.
*/
func TestPaginate_Completeness(t *testing.T) {
	items := sequence(17)

	for _, limit := range []int{1, 3, 5, 17, 100} {
		var gathered []int
		page := 1
		for {
			result := pagination.Paginate(items, page, limit)
			if len(result.Items) == 0 {
				assert.False(t, result.Meta.HasNext)
				break
			}
			gathered = append(gathered, result.Items...)
			page++
		}
		assert.Equal(t, items, gathered, "limit %d", limit)
	}
}

/*
TestPaginate_Empty confirms an empty input yields an empty (non-nil) page.
*/
func TestPaginate_Empty(t *testing.T) {
	page := pagination.Paginate([]string{}, 1, 10)

	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.Meta.Total)
	assert.False(t, page.Meta.HasNext)
	assert.False(t, page.Meta.HasPrev)
}

/*
TestPaginate_HugePage pins the window math against integer overflow: a page
astronomically past the end must still yield empty items, not wrap around
into the data.
*/
func TestPaginate_HugePage(t *testing.T) {
	items := sequence(5)

	for _, page := range []int{184467440737095517, math.MaxInt/100 + 1, math.MaxInt} {
		result := pagination.Paginate(items, page, 100)

		assert.Empty(t, result.Items, "page %d", page)
		assert.Equal(t, 5, result.Meta.Total)
		assert.False(t, result.Meta.HasNext)
		assert.True(t, result.Meta.HasPrev)
	}
}

/*
TestNewMeta verifies total page counting and navigation flags.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"empty", 1, 10, 0, 0, false, false},
		{"exact_fit", 2, 5, 10, 2, false, true},
		{"partial_last", 1, 10, 11, 2, true, false},
		{"single_page", 1, 100, 42, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)

			assert.Equal(t, tt.wantPages, meta.TotalPages)
			assert.Equal(t, tt.wantNext, meta.HasNext)
			assert.Equal(t, tt.wantPrev, meta.HasPrev)
		})
	}
}

/*
TestFromRequest exercises the query parameter clamping rules.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "/books", 1, 10},
		{"explicit", "/books?page=3&limit=25", 3, 25},
		{"zero_page", "/books?page=0", 1, 10},
		{"negative_page", "/books?page=-2", 1, 10},
		{"limit_too_large", "/books?limit=500", 1, 10},
		{"garbage_values", "/books?page=abc&limit=xyz", 1, 10},
		{"max_limit", "/books?limit=100", 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset checks the page-to-offset conversion.
*/
func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 10}.Offset())
}

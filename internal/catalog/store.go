// Copyright (c) 2026 Libris. All rights reserved.

package catalog

import (
	"context"

	"github.com/phamk/libris/pkg/pagination"
)

// Repository is the storage contract for the book catalog.
//
// Absence is signaled with a boolean, never an error: every operation is
// total over validated input. The service layer translates absence into a
// transport-level not-found. The interface leaves room for a persistent
// variant later without changing the query pipeline's contract; today the
// in-memory implementation is the sole implementer.
type Repository interface {
	// CreateBook stores a new record and assigns the next id. The input is
	// assumed validated; creation never fails.
	CreateBook(ctx context.Context, input CreateBookInput) *Book

	// GetBook returns the record with the given id, or (nil, false).
	GetBook(ctx context.Context, id int) (*Book, bool)

	// DeleteBook removes the record and reports whether it was present.
	// The id counter is untouched: deleted ids are never reassigned.
	DeleteBook(ctx context.Context, id int) bool

	// ListBooks runs the filter → sort → paginate pipeline over a snapshot
	// of the collection.
	ListBooks(ctx context.Context, f Filter) pagination.Page[*Book]

	// AllBooks returns a snapshot of the collection. The snapshot is
	// deterministic for an unchanged store; no other ordering is promised.
	AllBooks(ctx context.Context) []*Book

	// Stats summarizes the collection.
	Stats(ctx context.Context) Stats

	// LoadInitial bulk-inserts pre-identified records and advances the id
	// counter past the highest loaded id. It must be called at most once,
	// before any CreateBook, to preserve the id-uniqueness guarantee.
	LoadInitial(books []*Book) error
}

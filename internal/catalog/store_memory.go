// Copyright (c) 2026 Libris. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"slices"
	"sync"

	"github.com/phamk/libris/pkg/pagination"
	"github.com/phamk/libris/pkg/slice"
)

// ErrAlreadyLoaded is returned when LoadInitial is called twice or after a
// record has been created. That is a wiring bug in the caller, not a runtime
// condition to recover from.
var ErrAlreadyLoaded = errors.New("catalog: initial load after store has been written")

// MemoryRepository is the in-memory [Repository] implementation.
//
// # Id Assignment
//
// Ids are one past the maximum id ever assigned, not count+1, so deletions
// never cause id reuse.
//
// # Ordering
//
// Insertion order is tracked explicitly because Go map iteration is
// randomized; snapshots must be deterministic for an unchanged store so that
// repeated queries return identical orderings.
//
// # Concurrency
//
// A single RWMutex serializes mutations against each other and against
// snapshots. CreateBook is a read-modify-write of the id counter, so handlers
// running in parallel goroutines need this guard.
type MemoryRepository struct {
	mu     sync.RWMutex
	books  map[int]*Book
	order  []int
	nextID int
	dirty  bool
}

// NewMemoryRepository creates an empty in-memory catalog store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		books:  make(map[int]*Book),
		nextID: 1,
	}
}

// LoadInitial bulk-inserts pre-identified records and sets the id counter to
// max(loaded ids)+1, or 1 for an empty seed.
func (r *MemoryRepository) LoadInitial(books []*Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.dirty || len(r.books) > 0 {
		return ErrAlreadyLoaded
	}

	for _, book := range books {
		r.books[book.ID] = book
		r.order = append(r.order, book.ID)
		if book.ID >= r.nextID {
			r.nextID = book.ID + 1
		}
	}

	return nil
}

// CreateBook stores a new record under the next id. Input is assumed
// validated by the service layer; creation never fails.
func (r *MemoryRepository) CreateBook(ctx context.Context, input CreateBookInput) *Book {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	if id < 1 {
		id = 1
	}
	r.nextID = id + 1
	r.dirty = true

	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	book := &Book{
		ID:     id,
		Title:  input.Title,
		Author: input.Author,
		Year:   input.Year,
		Tags:   tags,
	}

	r.books[id] = book
	r.order = append(r.order, id)

	return book
}

// GetBook returns the record with the given id, or (nil, false).
func (r *MemoryRepository) GetBook(ctx context.Context, id int) (*Book, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	return book, ok
}

// DeleteBook removes the record and reports whether it was present.
// The id counter is untouched: a deleted id is never reassigned.
func (r *MemoryRepository) DeleteBook(ctx context.Context, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return false
	}

	delete(r.books, id)
	r.dirty = true

	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}

	return true
}

// AllBooks returns an insertion-ordered snapshot of the collection.
func (r *MemoryRepository) AllBooks(ctx context.Context) []*Book {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slice.Map(r.order, func(id int) *Book { return r.books[id] })
}

// ListBooks runs the query pipeline: snapshot → filter → stable sort → paginate.
func (r *MemoryRepository) ListBooks(ctx context.Context, f Filter) pagination.Page[*Book] {
	snapshot := r.AllBooks(ctx)

	matched := slice.Filter(snapshot, f.predicate())

	if compare := f.comparator(); compare != nil {
		slices.SortStableFunc(matched, compare)
	}

	return pagination.Paginate(matched, f.Page, f.Limit)
}

// Stats summarizes the collection. Authors are counted by exact string
// identity; see [Stats].
func (r *MemoryRepository) Stats(ctx context.Context) Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	authors := make(map[string]struct{}, len(r.books))
	for _, book := range r.books {
		authors[book.Author] = struct{}{}
	}

	return Stats{
		TotalBooks:    len(r.books),
		UniqueAuthors: len(authors),
	}
}

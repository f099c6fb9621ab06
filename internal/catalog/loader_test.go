// Copyright (c) 2026 Libris. All rights reserved.

package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamk/libris/internal/catalog"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "books.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newLoader(path string) *catalog.Loader {
	return catalog.NewLoader(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestLoader_Load(t *testing.T) {
	path := writeSeedFile(t, `[
		{"title": "Clean Code", "author": "Robert C. Martin", "release_year": 2008, "tags": ["software"]},
		{"title": "Refactoring", "author": "Martin Fowler", "release_year": 1999}
	]`)

	books, err := newLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, 1, books[0].ID)
	assert.Equal(t, "Clean Code", books[0].Title)
	assert.Equal(t, 2008, books[0].Year)
	assert.Equal(t, []string{"software"}, books[0].Tags)

	assert.Equal(t, 2, books[1].ID)
	require.NotNil(t, books[1].Tags, "absent tags must load as an empty slice")
	assert.Empty(t, books[1].Tags)
}

func TestLoader_Load_SkipsInvalidEntries(t *testing.T) {
	path := writeSeedFile(t, `[
		{"title": "", "author": "Nameless", "release_year": 2000},
		{"title": "Kept", "author": "Author", "release_year": 2000},
		{"title": "Too Old", "author": "Author", "release_year": 1200}
	]`)

	books, err := newLoader(path).Load()
	require.NoError(t, err)

	// Invalid entries are dropped and ids renumber over the survivors.
	require.Len(t, books, 1)
	assert.Equal(t, 1, books[0].ID)
	assert.Equal(t, "Kept", books[0].Title)
}

func TestLoader_Load_TrimsFields(t *testing.T) {
	path := writeSeedFile(t, `[
		{"title": "  Padded  ", "author": "  Someone  ", "release_year": 2000}
	]`)

	books, err := newLoader(path).Load()
	require.NoError(t, err)
	require.Len(t, books, 1)

	assert.Equal(t, "Padded", books[0].Title)
	assert.Equal(t, "Someone", books[0].Author)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	books, err := newLoader(path).Load()

	assert.NoError(t, err)
	assert.Nil(t, books)
}

func TestLoader_Load_MalformedJSON(t *testing.T) {
	path := writeSeedFile(t, `{"not": "an array"`)

	_, err := newLoader(path).Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse seed file")
}

func TestLoader_Load_FeedsRepository(t *testing.T) {
	path := writeSeedFile(t, `[
		{"title": "One", "author": "A", "release_year": 2001},
		{"title": "Two", "author": "B", "release_year": 2002}
	]`)

	books, err := newLoader(path).Load()
	require.NoError(t, err)

	ctx := context.Background()
	repo := catalog.NewMemoryRepository()
	require.NoError(t, repo.LoadInitial(books))

	assert.Equal(t, 2, repo.Stats(ctx).TotalBooks)

	next := repo.CreateBook(ctx, catalog.CreateBookInput{Title: "Three", Author: "C", Year: 2003})
	assert.Equal(t, 3, next.ID)
}

// Copyright (c) 2026 Libris. All rights reserved.

package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// seedBook is the on-disk shape of one seed entry. The seed files use
// "release_year" where the API uses "year".
type seedBook struct {
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	ReleaseYear int      `json:"release_year"`
	Tags        []string `json:"tags"`
}

// Loader reads the initial catalog from a JSON seed file.
//
// Entries failing the creation constraints are skipped with a warning rather
// than aborting the load; ids are assigned sequentially from 1 over the
// surviving entries.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a seed loader for the given file path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: logger,
	}
}

// Load parses and validates the seed file.
//
// A missing file is not an error: the catalog simply starts empty. Malformed
// JSON is an error, since a present-but-broken seed file is worth surfacing.
func (loader *Loader) Load() ([]*Book, error) {
	raw, err := os.ReadFile(loader.path)
	if err != nil {
		if os.IsNotExist(err) {
			loader.logger.Warn("seed_file_missing", slog.String("path", loader.path))
			return nil, nil
		}
		return nil, fmt.Errorf("catalog: read seed file %s: %w", loader.path, err)
	}

	var entries []seedBook
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("catalog: parse seed file %s: %w", loader.path, err)
	}

	books := make([]*Book, 0, len(entries))
	for i, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		author := strings.TrimSpace(entry.Author)

		if err := validateBookFields(title, author, entry.ReleaseYear); err != nil {
			loader.logger.Warn("seed_entry_skipped",
				slog.Int("index", i),
				slog.String("reason", err.Error()),
			)
			continue
		}

		tags := entry.Tags
		if tags == nil {
			tags = []string{}
		}

		books = append(books, &Book{
			ID:     len(books) + 1,
			Title:  title,
			Author: author,
			Year:   entry.ReleaseYear,
			Tags:   tags,
		})
	}

	loader.logger.Info("seed_loaded",
		slog.String("path", loader.path),
		slog.Int("books", len(books)),
		slog.Int("skipped", len(entries)-len(books)),
	)
	return books, nil
}

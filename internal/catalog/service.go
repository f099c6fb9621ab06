// Copyright (c) 2026 Libris. All rights reserved.

package catalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phamk/libris/internal/platform/apperr"
	"github.com/phamk/libris/internal/platform/validate"
	"github.com/phamk/libris/pkg/pagination"
)

// Service wraps the repository with input validation, absence-to-error
// translation, and activity logging.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new catalog service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateBook validates and stores a new book.
func (service *Service) CreateBook(ctx context.Context, input CreateBookInput) (*Book, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Author = strings.TrimSpace(input.Author)

	if err := validateBookFields(input.Title, input.Author, input.Year); err != nil {
		return nil, err
	}

	book := service.repo.CreateBook(ctx, input)

	service.logger.Info("book_created",
		slog.Int("book_id", book.ID),
		slog.String("title", book.Title),
	)
	return book, nil
}

// GetBook returns a book by id, or a NOT_FOUND error.
func (service *Service) GetBook(ctx context.Context, id int) (*Book, error) {
	book, ok := service.repo.GetBook(ctx, id)
	if !ok {
		return nil, apperr.NotFound("Book")
	}
	return book, nil
}

// DeleteBook removes a book by id, or returns a NOT_FOUND error.
func (service *Service) DeleteBook(ctx context.Context, id int) error {
	if !service.repo.DeleteBook(ctx, id) {
		return apperr.NotFound("Book")
	}

	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

// ListBooks validates the filter enums and runs the query pipeline.
//
// Page and limit arrive already clamped by the HTTP boundary
// (pagination.FromRequest); the pipeline does not re-validate them.
func (service *Service) ListBooks(ctx context.Context, filter Filter) (pagination.Page[*Book], error) {
	validator := &validate.Validator{}

	if filter.SortBy != "" {
		validator.OneOf(FieldSortBy, filter.SortBy, SortByYear, SortByAuthor)
	}
	if filter.SortOrder != "" {
		validator.OneOf(FieldSortOrder, filter.SortOrder, SortOrderAsc, SortOrderDesc)
	}

	if err := validator.Err(); err != nil {
		return pagination.Page[*Book]{}, err
	}

	if filter.SortOrder == "" {
		filter.SortOrder = SortOrderAsc
	}

	return service.repo.ListBooks(ctx, filter), nil
}

// Stats summarizes the collection.
func (service *Service) Stats(ctx context.Context) Stats {
	return service.repo.Stats(ctx)
}

// validateBookFields checks the creation constraints shared by the API and
// the seed loader: non-empty bounded title/author, year within
// [MinYear, current year].
func validateBookFields(title, author string, year int) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, MaxTitleLen)
	validator.Required(FieldAuthor, author).MaxLen(FieldAuthor, author, MaxAuthorLen)
	validator.Range(FieldYear, year, MinYear, MaxYear())

	return validator.Err()
}

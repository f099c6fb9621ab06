// Copyright (c) 2026 Libris. All rights reserved.

package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phamk/libris/internal/platform/apperr"
	requestutil "github.com/phamk/libris/internal/platform/request"
	"github.com/phamk/libris/internal/platform/respond"
	"github.com/phamk/libris/pkg/pagination"
	"github.com/phamk/libris/pkg/query"
)

// Handler exposes the catalog over HTTP.
type Handler struct {
	service *Service
}

// NewHandler creates a new catalog HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for the /books resource.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listBooks)
	router.Post("/", handler.createBook)
	router.Get("/stats", handler.stats)
	router.Get("/{id}", handler.getBook)
	router.Delete("/{id}", handler.deleteBook)

	return router
}

// listBooks handles GET /books with filtering, sorting, and pagination.
func (handler *Handler) listBooks(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	params := request.URL.Query()

	year, err := yearParam(params.Get("year"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := Filter{
		Author:    params.Get("author"),
		Year:      year,
		Search:    params.Get("search"),
		SortBy:    params.Get("sort_by"),
		SortOrder: params.Get("sort_order"),
		Page:      paginationParams.Page,
		Limit:     paginationParams.Limit,
	}

	page, err := handler.service.ListBooks(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Items, page.Meta)
}

// createBook handles POST /books.
func (handler *Handler) createBook(writer http.ResponseWriter, request *http.Request) {
	var input CreateBookInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.CreateBook(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, book)
}

// getBook handles GET /books/{id}.
func (handler *Handler) getBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	book, err := handler.service.GetBook(request.Context(), bookID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, book)
}

// deleteBook handles DELETE /books/{id}.
func (handler *Handler) deleteBook(writer http.ResponseWriter, request *http.Request) {
	bookID, err := bookIDParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteBook(request.Context(), bookID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// stats handles GET /books/stats.
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.service.Stats(request.Context()))
}

// yearParam parses the optional year query parameter. Unlike page and limit,
// which fall back to their defaults, a present but non-numeric year is
// rejected: silently dropping the filter would return the whole catalog.
func yearParam(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}

	year := query.OptionalInt(raw)
	if year == nil {
		return nil, apperr.ValidationError("Year must be an integer")
	}
	return year, nil
}

// bookIDParam parses the {id} URL parameter as a positive integer.
func bookIDParam(request *http.Request) (int, error) {
	raw := requestutil.Param(request, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, apperr.ValidationError("Book id must be a positive integer")
	}
	return id, nil
}

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/bukuloka/storefront/internal/cart"
	"github.com/bukuloka/storefront/pkg/enums"
	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
	"github.com/bukuloka/storefront/pkg/logger"
	pkgpagination "github.com/bukuloka/storefront/pkg/pagination"
	"github.com/bukuloka/storefront/pkg/types"
	"github.com/bukuloka/storefront/pkg/validators"
)

// snapshotLimit is the page size used when fetching the checkout catalog
// snapshot, matching what the checkout page requests.
const snapshotLimit = 100

type backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}

// Service exposes the book catalog collaborator.
type Service struct {
	api  backend
	logg *logger.Logger
}

// NewService builds a catalog service backed by the API client.
func NewService(api backend, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("backend client required")
	}
	return &Service{api: api, logg: logg}, nil
}

// ListParams mirror the filters the storefront exposes over the book list.
type ListParams struct {
	Search    string
	Condition string
	GenreID   int64
	SortBy    string
	SortOrder string
	pkgpagination.Params
}

// ListResult carries one page of normalized books.
type ListResult struct {
	Books []types.Book
	Meta  pkgpagination.Meta
}

// List fetches a filtered page of books.
func (s *Service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	query := url.Values{}
	if search := strings.TrimSpace(params.Search); search != "" {
		query.Set("search", search)
	}
	if cond := strings.TrimSpace(params.Condition); cond != "" && cond != "ALL" {
		parsed, err := enums.ParseBookCondition(cond)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition filter")
		}
		query.Set("condition", parsed.String())
	}
	if params.GenreID != 0 {
		query.Set("genreId", strconv.FormatInt(params.GenreID, 10))
	}
	if sortBy := strings.TrimSpace(params.SortBy); sortBy != "" {
		if sortBy != "title" && sortBy != "publishDate" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported sort field %q", sortBy))
		}
		query.Set("sortBy", sortBy)
		order := strings.ToLower(strings.TrimSpace(params.SortOrder))
		if order == "" {
			order = "asc"
		}
		if order != "asc" && order != "desc" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported sort order %q", params.SortOrder))
		}
		query.Set("sortOrder", order)
	}
	params.Params.Apply(query)

	var envelope struct {
		Data []types.Book       `json:"data"`
		Meta pkgpagination.Meta `json:"meta"`
	}
	if err := s.api.Get(ctx, "/books", query, &envelope); err != nil {
		return nil, err
	}
	return &ListResult{Books: envelope.Data, Meta: envelope.Meta}, nil
}

// Snapshot fetches the catalog snapshot the checkout page works against. The
// result is immutable for the page's lifetime; there is no refresh.
func (s *Service) Snapshot(ctx context.Context) (*cart.Catalog, error) {
	result, err := s.List(ctx, ListParams{Params: pkgpagination.Params{Page: 1, Limit: snapshotLimit}})
	if err != nil {
		return nil, err
	}
	if s.logg != nil {
		s.logg.Debug(s.logg.WithField(ctx, "books", len(result.Books)), "catalog snapshot loaded")
	}
	return cart.NewCatalog(result.Books), nil
}

// Get fetches one book by id. A stale deep link surfaces as a NotFound error.
func (s *Service) Get(ctx context.Context, id int64) (*types.Book, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, fmt.Sprintf("/books/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	var book types.Book
	if err := types.DecodeEnveloped(raw, &book); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode book")
	}
	return &book, nil
}

// CreateBookInput is the payload for adding a book to the catalog.
type CreateBookInput struct {
	Title           string `json:"title" validate:"required"`
	Writer          string `json:"writer" validate:"required"`
	Publisher       string `json:"publisher" validate:"required"`
	Price           int64  `json:"price" validate:"gt=0"`
	Stock           int    `json:"stock" validate:"min=0"`
	GenreID         int64  `json:"genreId" validate:"required"`
	Condition       string `json:"condition" validate:"required,oneof=NEW LIKE_NEW GOOD FAIR"`
	PublicationYear int    `json:"publicationYear,omitempty"`
	PublishDate     string `json:"publishDate,omitempty"`
	Description     string `json:"description,omitempty"`
	ISBN            string `json:"isbn,omitempty"`
	CoverURL        string `json:"coverUrl,omitempty"`
}

// Create validates the payload locally and posts the new book.
func (s *Service) Create(ctx context.Context, input CreateBookInput) (*types.Book, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := s.api.Post(ctx, "/books", input, &raw); err != nil {
		return nil, err
	}
	var book types.Book
	if err := types.DecodeEnveloped(raw, &book); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode created book")
	}
	return &book, nil
}

// UpdateBookInput carries partial changes; nil fields are omitted from the
// request entirely.
type UpdateBookInput struct {
	Title           *string `json:"title,omitempty"`
	Writer          *string `json:"writer,omitempty"`
	Publisher       *string `json:"publisher,omitempty"`
	Price           *int64  `json:"price,omitempty"`
	Stock           *int    `json:"stock,omitempty"`
	GenreID         *int64  `json:"genreId,omitempty"`
	Condition       *string `json:"condition,omitempty"`
	PublicationYear *int    `json:"publicationYear,omitempty"`
	PublishDate     *string `json:"publishDate,omitempty"`
	Description     *string `json:"description,omitempty"`
	ISBN            *string `json:"isbn,omitempty"`
	CoverURL        *string `json:"coverUrl,omitempty"`
}

// Update patches an existing book.
func (s *Service) Update(ctx context.Context, id int64, input UpdateBookInput) (*types.Book, error) {
	if input.Condition != nil {
		if _, err := enums.ParseBookCondition(*input.Condition); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid condition")
		}
	}
	var raw json.RawMessage
	if err := s.api.Patch(ctx, fmt.Sprintf("/books/%d", id), input, &raw); err != nil {
		return nil, err
	}
	var book types.Book
	if err := types.DecodeEnveloped(raw, &book); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode updated book")
	}
	return &book, nil
}

// Delete removes a book from the catalog.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/books/%d", id))
}

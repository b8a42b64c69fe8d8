package genres

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
	"github.com/bukuloka/storefront/pkg/types"
	"github.com/bukuloka/storefront/pkg/validators"
)

type backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
	Patch(ctx context.Context, path string, body any, out any) error
	Delete(ctx context.Context, path string) error
}

// Service exposes genre management against the backend.
type Service struct {
	api backend
}

func NewService(api backend) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("backend client required")
	}
	return &Service{api: api}, nil
}

// List fetches all genres.
func (s *Service) List(ctx context.Context) ([]types.Genre, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/genre", nil, &raw); err != nil {
		return nil, err
	}
	var genres []types.Genre
	if err := types.DecodeEnveloped(raw, &genres); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode genres")
	}
	return genres, nil
}

// Get fetches one genre by id.
func (s *Service) Get(ctx context.Context, id int64) (*types.Genre, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, fmt.Sprintf("/genre/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	var genre types.Genre
	if err := types.DecodeEnveloped(raw, &genre); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode genre")
	}
	return &genre, nil
}

// FormInput is the create/update payload for a genre.
type FormInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Create validates and posts a new genre.
func (s *Service) Create(ctx context.Context, input FormInput) (*types.Genre, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := s.api.Post(ctx, "/genre", input, &raw); err != nil {
		return nil, err
	}
	var genre types.Genre
	if err := types.DecodeEnveloped(raw, &genre); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode created genre")
	}
	return &genre, nil
}

// Update patches an existing genre.
func (s *Service) Update(ctx context.Context, id int64, input FormInput) (*types.Genre, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := s.api.Patch(ctx, fmt.Sprintf("/genre/%d", id), input, &raw); err != nil {
		return nil, err
	}
	var genre types.Genre
	if err := types.DecodeEnveloped(raw, &genre); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode updated genre")
	}
	return &genre, nil
}

// Delete removes a genre.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/genre/%d", id))
}

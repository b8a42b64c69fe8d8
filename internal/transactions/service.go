package transactions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/bukuloka/storefront/internal/cart"
	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
	pkgpagination "github.com/bukuloka/storefront/pkg/pagination"
	"github.com/bukuloka/storefront/pkg/types"
)

type backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

// Service exposes the transactions collaborator.
type Service struct {
	api backend
}

func NewService(api backend) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("backend client required")
	}
	return &Service{api: api}, nil
}

// createPayload is the normalized order body. Item shape divergence across
// backend revisions is pinned to the camelCase contract here.
type createPayload struct {
	Items []cart.SubmissionItem `json:"items"`
}

// Create submits the order and returns the created transaction, which the
// caller navigates to on success.
func (s *Service) Create(ctx context.Context, items []cart.SubmissionItem) (*types.Transaction, error) {
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "select at least one book with a quantity above zero")
	}
	var raw json.RawMessage
	if err := s.api.Post(ctx, "/transactions", createPayload{Items: items}, &raw); err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := types.DecodeEnveloped(raw, &tx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode created transaction")
	}
	return &tx, nil
}

// ListResult carries one page of transactions.
type ListResult struct {
	Transactions []types.Transaction
	Meta         pkgpagination.Meta
}

// List fetches the transaction history.
func (s *Service) List(ctx context.Context, params pkgpagination.Params) (*ListResult, error) {
	query := url.Values{}
	params.Apply(query)

	var envelope struct {
		Data []types.Transaction `json:"data"`
		Meta pkgpagination.Meta  `json:"meta"`
	}
	if err := s.api.Get(ctx, "/transactions", query, &envelope); err != nil {
		return nil, err
	}
	return &ListResult{Transactions: envelope.Data, Meta: envelope.Meta}, nil
}

// Get fetches one transaction by id.
func (s *Service) Get(ctx context.Context, id int64) (*types.Transaction, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, fmt.Sprintf("/transactions/%d", id), nil, &raw); err != nil {
		return nil, err
	}
	var tx types.Transaction
	if err := types.DecodeEnveloped(raw, &tx); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode transaction")
	}
	return &tx, nil
}

package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/bukuloka/storefront/internal/cart"
	"github.com/bukuloka/storefront/pkg/enums"
	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
	"github.com/bukuloka/storefront/pkg/logger"
	"github.com/bukuloka/storefront/pkg/types"
	"go.uber.org/multierr"
)

type transactionCreator interface {
	Create(ctx context.Context, items []cart.SubmissionItem) (*types.Transaction, error)
}

// Service drives the checkout flow: editing → submitting → back to editing.
// A successful submission discards the cart; every failure path leaves it
// intact so the user can retry without re-entering data.
type Service struct {
	composer *cart.Composer
	tx       transactionCreator
	logg     *logger.Logger

	mu    sync.Mutex
	state enums.CheckoutState
}

// NewService wires the composer to the transaction backend.
func NewService(composer *cart.Composer, tx transactionCreator, logg *logger.Logger) (*Service, error) {
	if composer == nil {
		return nil, fmt.Errorf("cart composer required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction creator required")
	}
	return &Service{
		composer: composer,
		tx:       tx,
		logg:     logg,
		state:    enums.CheckoutStateEditing,
	}, nil
}

// Composer exposes the underlying composer for cart mutations.
func (s *Service) Composer() *cart.Composer {
	return s.composer
}

// State reports where the flow currently is.
func (s *Service) State() enums.CheckoutState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Validate runs the submission gate without calling the backend: the payload
// must be non-empty and no included item may exceed its book's stock. Both
// preconditions are checked independently and reported together.
func (s *Service) Validate() ([]cart.SubmissionItem, error) {
	items, err := cart.BuildSubmission(s.composer.Cart())

	var gateErr error
	if err != nil {
		gateErr = multierr.Append(gateErr, err)
	}
	if s.composer.Summary().HasStockViolation {
		gateErr = multierr.Append(gateErr, pkgerrors.New(
			pkgerrors.CodeStockViolation,
			"one or more items exceed available stock",
		))
	}
	if gateErr != nil {
		return nil, gateErr
	}
	return items, nil
}

// Submit validates the cart and posts the order. Only one submission may be
// in flight at a time; a second call while submitting is rejected rather than
// queued.
func (s *Service) Submit(ctx context.Context) (*types.Transaction, error) {
	s.mu.Lock()
	if s.state == enums.CheckoutStateSubmitting {
		s.mu.Unlock()
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "a submission is already in progress")
	}
	s.state = enums.CheckoutStateSubmitting
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = enums.CheckoutStateEditing
		s.mu.Unlock()
	}()

	items, err := s.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.tx.Create(ctx, items)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "transaction submission failed", err)
		}
		return nil, err
	}

	s.composer.Reset()
	if s.logg != nil {
		s.logg.Info(s.logg.WithField(ctx, "transaction_id", created.ID), "transaction created")
	}
	return created, nil
}

package tokenstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no token is persisted for a session key.
var ErrNotFound = errors.New("tokenstore: token not found")

// Store persists the bearer token for a session key. It is the only local
// state the storefront keeps between page views.
type Store interface {
	Get(ctx context.Context, sessionKey string) (string, error)
	Set(ctx context.Context, sessionKey, token string) error
	Clear(ctx context.Context, sessionKey string) error
}

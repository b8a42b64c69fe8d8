package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
	"github.com/bukuloka/storefront/pkg/logger"
	"github.com/bukuloka/storefront/pkg/tokenstore"
	"github.com/bukuloka/storefront/pkg/types"
	"github.com/bukuloka/storefront/pkg/validators"
)

type backend interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

// Session is the explicit auth state for one storefront session: the bearer
// token plus the resolved profile. It is passed around rather than held as
// ambient global state.
type Session struct {
	User  *types.User
	Token string
}

// Authenticated reports whether the session carries a token.
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// Service owns the session lifecycle: init from the persisted token, login,
// register, and logout.
type Service struct {
	api        backend
	tokens     tokenstore.Store
	sessionKey string
	logg       *logger.Logger
}

// NewService wires the auth collaborator to the token store.
func NewService(api backend, tokens tokenstore.Store, sessionKey string, logg *logger.Logger) (*Service, error) {
	if api == nil {
		return nil, fmt.Errorf("backend client required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token store required")
	}
	if sessionKey == "" {
		return nil, fmt.Errorf("session key required")
	}
	return &Service{api: api, tokens: tokens, sessionKey: sessionKey, logg: logg}, nil
}

// TokenSource returns a bearer token source reading the live token for this
// session, for wiring into the API client. It never fails a request over a
// missing token; requests simply go out anonymously.
func (s *Service) TokenSource() *StoreTokenSource {
	return NewStoreTokenSource(s.tokens, s.sessionKey)
}

// StoreTokenSource adapts the token store to the API client's TokenSource.
// It can be built before the auth service so a single client serves both
// anonymous and authenticated calls.
type StoreTokenSource struct {
	store      tokenstore.Store
	sessionKey string
}

func NewStoreTokenSource(store tokenstore.Store, sessionKey string) *StoreTokenSource {
	return &StoreTokenSource{store: store, sessionKey: sessionKey}
}

func (sts *StoreTokenSource) Token(ctx context.Context) (string, error) {
	token, err := sts.store.Get(ctx, sts.sessionKey)
	if errors.Is(err, tokenstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Init restores the session from the persisted token and verifies it with a
// profile fetch. A dead token is cleared and the session comes back
// anonymous; Init itself only fails on storage trouble.
func (s *Service) Init(ctx context.Context) (*Session, error) {
	token, err := s.tokens.Get(ctx, s.sessionKey)
	if errors.Is(err, tokenstore.ErrNotFound) {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read persisted token: %w", err)
	}

	user, err := s.Profile(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "persisted token rejected, clearing session")
		}
		if clearErr := s.tokens.Clear(ctx, s.sessionKey); clearErr != nil {
			return nil, fmt.Errorf("clear stale token: %w", clearErr)
		}
		return &Session{}, nil
	}
	return &Session{User: user, Token: token}, nil
}

// LoginInput is the credentials payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login exchanges credentials for a token, persists it, and resolves the
// profile. A failed profile fetch leaves the session logged in without a
// resolved user.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Session, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := s.api.Post(ctx, "/auth/login", input, &envelope); err != nil {
		return nil, err
	}
	if envelope.Data.Token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "login response carried no token")
	}
	if err := s.tokens.Set(ctx, s.sessionKey, envelope.Data.Token); err != nil {
		return nil, fmt.Errorf("persist token: %w", err)
	}

	session := &Session{Token: envelope.Data.Token}
	user, err := s.Profile(ctx)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "profile fetch after login failed")
		}
		return session, nil
	}
	session.User = user
	return session, nil
}

// RegisterInput is the signup payload.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates an account and returns the created profile. It does not
// log the session in; callers follow up with Login.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*types.User, error) {
	if err := validators.Struct(input); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := s.api.Post(ctx, "/auth/register", input, &raw); err != nil {
		return nil, err
	}
	var user types.User
	if err := types.DecodeEnveloped(raw, &user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode registered user")
	}
	return &user, nil
}

// Profile fetches the authenticated user.
func (s *Service) Profile(ctx context.Context) (*types.User, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/auth/profile", nil, &raw); err != nil {
		return nil, err
	}
	var user types.User
	if err := types.DecodeEnveloped(raw, &user); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode profile")
	}
	return &user, nil
}

// Logout clears the persisted token; the session object is discarded by the
// caller.
func (s *Service) Logout(ctx context.Context) error {
	return s.tokens.Clear(ctx, s.sessionKey)
}

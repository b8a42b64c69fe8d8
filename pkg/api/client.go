package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
	"github.com/bukuloka/storefront/pkg/metrics"
	"github.com/bukuloka/storefront/pkg/types"
)

const errorBodyReadLimit int64 = 4096

var errBaseURLRequired = errors.New("backend base url is required")

// TokenSource supplies the bearer token for outgoing requests. An empty token
// means the request goes out anonymously.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client wraps the storefront backend REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenSource
	metrics    *metrics.APIClientMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTokenSource attaches a bearer token source.
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) {
		c.tokens = tokens
	}
}

// WithMetrics attaches request metrics.
func WithMetrics(m *metrics.APIClientMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds a backend client for the given base URL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return client, nil
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Patch performs a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete performs a DELETE request, ignoring any response body.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "backend client not configured")
	}

	endpoint := fmt.Sprintf("%s %s", method, path)
	start := time.Now()
	err := c.execute(ctx, method, path, query, body, out)
	c.metrics.ObserveDuration(endpoint, time.Since(start))
	if err != nil {
		c.metrics.IncFailure(endpoint)
		return err
	}
	c.metrics.IncSuccess(endpoint)
	return nil
}

func (c *Client) execute(ctx context.Context, method, path string, query url.Values, body, out any) error {
	reqURL := c.buildURL(path)
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		reader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}

	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "read session token")
		}
		if token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode response")
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

	var envelope types.ErrorEnvelope
	_ = json.Unmarshal(raw, &envelope)
	message := envelope.BestMessage()

	cause := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		if message == "" {
			message = "authentication required"
		}
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, cause, message)
	case resp.StatusCode == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return pkgerrors.Wrap(pkgerrors.CodeNotFound, cause, message)
	case resp.StatusCode == http.StatusConflict:
		if message == "" {
			message = "conflict detected"
		}
		return pkgerrors.Wrap(pkgerrors.CodeConflict, cause, message)
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		if message == "" {
			message = "request rejected by backend"
		}
		return pkgerrors.Wrap(pkgerrors.CodeValidation, cause, message)
	default:
		if message == "" {
			message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, cause, message)
	}
}

func (c *Client) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

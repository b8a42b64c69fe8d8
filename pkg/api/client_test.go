package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (fn roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return fn(req)
}

type staticTokenSource string

func (s staticTokenSource) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{},
	}
}

func TestClientGetSendsBearerTokenAndQuery(t *testing.T) {
	var capturedURL string
	var capturedAuth string

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedURL = req.URL.String()
		capturedAuth = req.Header.Get("Authorization")
		return jsonResponse(http.StatusOK, `{"data":[]}`), nil
	})

	client, err := NewClient("http://backend.test/api/",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithTokenSource(staticTokenSource("tok-1")),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	query := url.Values{}
	query.Set("limit", "100")
	query.Set("page", "1")

	var out struct {
		Data []any `json:"data"`
	}
	if err := client.Get(context.Background(), "/books", query, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if capturedURL != "http://backend.test/api/books?limit=100&page=1" {
		t.Fatalf("unexpected URL %q", capturedURL)
	}
	if capturedAuth != "Bearer tok-1" {
		t.Fatalf("unexpected auth header %q", capturedAuth)
	}
}

func TestClientAnonymousWhenTokenEmpty(t *testing.T) {
	var capturedAuth string
	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		capturedAuth = req.Header.Get("Authorization")
		return jsonResponse(http.StatusOK, `{}`), nil
	})

	client, err := NewClient("http://backend.test",
		WithHTTPClient(&http.Client{Transport: rt}),
		WithTokenSource(staticTokenSource("")),
	)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.Get(context.Background(), "/books", nil, nil); err != nil {
		t.Fatalf("get: %v", err)
	}
	if capturedAuth != "" {
		t.Fatalf("anonymous request must not carry auth header, got %q", capturedAuth)
	}
}

func TestClientPostMarshalsBody(t *testing.T) {
	var capturedBody string
	var capturedContentType string

	rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
		raw, err := io.ReadAll(req.Body)
		if err != nil {
			t.Fatalf("read request body: %v", err)
		}
		capturedBody = string(raw)
		capturedContentType = req.Header.Get("Content-Type")
		return jsonResponse(http.StatusCreated, `{"data":{"id":42}}`), nil
	})

	client, err := NewClient("http://backend.test", WithHTTPClient(&http.Client{Transport: rt}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	payload := map[string]any{"items": []map[string]any{{"bookId": 1, "quantity": 2}}}
	var out struct {
		Data struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	if err := client.Post(context.Background(), "/transactions", payload, &out); err != nil {
		t.Fatalf("post: %v", err)
	}
	if capturedContentType != "application/json" {
		t.Fatalf("unexpected content type %q", capturedContentType)
	}
	if !strings.Contains(capturedBody, `"bookId":1`) {
		t.Fatalf("unexpected body %q", capturedBody)
	}
	if out.Data.ID != 42 {
		t.Fatalf("unexpected decoded id %d", out.Data.ID)
	}
}

func TestClientErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantCode pkgerrors.Code
		wantMsg  string
	}{
		{
			name:     "validation with server message",
			status:   http.StatusBadRequest,
			body:     `{"message":"stok tidak mencukupi"}`,
			wantCode: pkgerrors.CodeValidation,
			wantMsg:  "stok tidak mencukupi",
		},
		{
			name:     "validation envelope message",
			status:   http.StatusUnprocessableEntity,
			body:     `{"error":{"code":"VALIDATION_ERROR","message":"quantity invalid"}}`,
			wantCode: pkgerrors.CodeValidation,
			wantMsg:  "quantity invalid",
		},
		{
			name:     "unauthorized",
			status:   http.StatusUnauthorized,
			body:     `{}`,
			wantCode: pkgerrors.CodeUnauthorized,
			wantMsg:  "authentication required",
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     ``,
			wantCode: pkgerrors.CodeNotFound,
			wantMsg:  "resource not found",
		},
		{
			name:     "server error generic",
			status:   http.StatusBadGateway,
			body:     `upstream exploded`,
			wantCode: pkgerrors.CodeDependency,
			wantMsg:  "backend returned status 502",
		},
	}

	for _, tt := range tests {
		rt := roundTripFunc(func(req *http.Request) (*http.Response, error) {
			return jsonResponse(tt.status, tt.body), nil
		})
		client, err := NewClient("http://backend.test", WithHTTPClient(&http.Client{Transport: rt}))
		if err != nil {
			t.Fatalf("%s: new client: %v", tt.name, err)
		}

		err = client.Get(context.Background(), "/books", nil, nil)
		typed := pkgerrors.As(err)
		if typed == nil {
			t.Fatalf("%s: expected typed error, got %v", tt.name, err)
		}
		if typed.Code() != tt.wantCode {
			t.Fatalf("%s: expected code %s got %s", tt.name, tt.wantCode, typed.Code())
		}
		if typed.Message() != tt.wantMsg {
			t.Fatalf("%s: expected message %q got %q", tt.name, tt.wantMsg, typed.Message())
		}
	}
}

func TestClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatal("expected error for blank base URL")
	}
}

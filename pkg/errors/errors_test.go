package errors

import (
	stdErrors "errors"
	"net/http"
	"testing"
)

func TestMetadataForKnownCodes(t *testing.T) {
	tests := []struct {
		code      Code
		status    int
		publicMsg string
		retryable bool
		detailsOK bool
	}{
		{code: CodeValidation, status: http.StatusBadRequest, publicMsg: "validation failed", detailsOK: true},
		{code: CodeUnauthorized, status: http.StatusUnauthorized, publicMsg: "authentication required", detailsOK: true},
		{code: CodeNotFound, status: http.StatusNotFound, publicMsg: "resource not found", detailsOK: true},
		{code: CodeConflict, status: http.StatusConflict, publicMsg: "conflict detected", detailsOK: true},
		{code: CodeStockViolation, status: http.StatusUnprocessableEntity, publicMsg: "requested quantity exceeds available stock", detailsOK: true},
		{code: CodeInternal, status: http.StatusInternalServerError, publicMsg: "internal error", retryable: true},
		{code: CodeDependency, status: http.StatusServiceUnavailable, publicMsg: "backend unavailable", retryable: true, detailsOK: true},
	}

	for _, tt := range tests {
		meta := MetadataFor(tt.code)
		if meta.HTTPStatus != tt.status {
			t.Fatalf("code %s expected status %d got %d", tt.code, tt.status, meta.HTTPStatus)
		}
		if meta.PublicMessage != tt.publicMsg {
			t.Fatalf("code %s expected public message %q got %q", tt.code, tt.publicMsg, meta.PublicMessage)
		}
		if meta.Retryable != tt.retryable {
			t.Fatalf("code %s expected retryable %v got %v", tt.code, tt.retryable, meta.Retryable)
		}
		if meta.DetailsAllowed != tt.detailsOK {
			t.Fatalf("code %s expected details allowed %v got %v", tt.code, tt.detailsOK, meta.DetailsAllowed)
		}
	}
}

func TestMetadataForUnknownCodeDefaultsToInternal(t *testing.T) {
	meta := MetadataFor("SOMETHING_UNKNOWN")
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal status, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("boom")
	err := Wrap(CodeDependency, cause, "fetch books")
	if !stdErrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be unwrappable")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
	if err.Error() != "DEPENDENCY_ERROR: fetch books" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAsAndIsCode(t *testing.T) {
	err := New(CodeValidation, "select at least one book")
	if typed := As(err); typed == nil || typed.Code() != CodeValidation {
		t.Fatalf("expected typed validation error, got %v", typed)
	}
	if !IsCode(err, CodeValidation) {
		t.Fatal("IsCode should match")
	}
	if IsCode(err, CodeNotFound) {
		t.Fatal("IsCode should not match different code")
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain error should not convert")
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(CodeValidation, "quantity must be positive")); got != "quantity must be positive" {
		t.Fatalf("expected specific message, got %q", got)
	}
	if got := UserMessage(New(CodeUnauthorized, "Invalid email or password")); got != "Invalid email or password" {
		t.Fatalf("expected backend message passed through, got %q", got)
	}
	if got := UserMessage(New(CodeInternal, "nil pointer in composer")); got != "internal error" {
		t.Fatalf("expected public message for detail-suppressed code, got %q", got)
	}
	if got := UserMessage(stdErrors.New("plain")); got != "internal error" {
		t.Fatalf("expected internal fallback, got %q", got)
	}
}

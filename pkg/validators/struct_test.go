package validators

import (
	"testing"

	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
)

type samplePayload struct {
	Title string `json:"title" validate:"required"`
	Price int64  `json:"price" validate:"gt=0"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestStructValid(t *testing.T) {
	if err := Struct(samplePayload{Title: "Book", Price: 1000}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructInvalidCollectsJSONFieldNames(t *testing.T) {
	err := Struct(samplePayload{Price: 0, Email: "not-an-email"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected string detail map, got %T", typed.Details())
	}
	if details["title"] != "is required" {
		t.Fatalf("unexpected title message %q", details["title"])
	}
	if details["price"] != "must be greater than 0" {
		t.Fatalf("unexpected price message %q", details["price"])
	}
	if details["email"] != "must be a valid email" {
		t.Fatalf("unexpected email message %q", details["email"])
	}
}

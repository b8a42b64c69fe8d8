package cart

import (
	"testing"

	pkgerrors "github.com/bukuloka/storefront/pkg/errors"
)

func TestBuildSubmissionMapsAndOrders(t *testing.T) {
	t.Parallel()

	c := cartWith(
		LineItem{BookID: 1, Quantity: 2},
		LineItem{BookID: 2, Quantity: 1},
	)

	items, err := BuildSubmission(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []SubmissionItem{{BookID: 1, Quantity: 2}, {BookID: 2, Quantity: 1}}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i := range want {
		if items[i] != want[i] {
			t.Fatalf("item %d: expected %+v got %+v", i, want[i], items[i])
		}
	}
}

func TestBuildSubmissionFiltersInvalidLines(t *testing.T) {
	t.Parallel()

	c := cartWith(
		LineItem{BookID: 0, Quantity: 5},
		LineItem{BookID: 1, Quantity: 0},
		LineItem{BookID: 2, Quantity: -1},
		LineItem{BookID: 3, Quantity: 2},
	)

	items, err := BuildSubmission(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].BookID != 3 || items[0].Quantity != 2 {
		t.Fatalf("unexpected payload %+v", items)
	}
}

func TestBuildSubmissionEmptyCartRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cart *Cart
	}{
		{name: "fresh blank line", cart: New()},
		{name: "unresolved only", cart: cartWith(LineItem{BookID: 0, Quantity: 1})},
		{name: "zero quantities only", cart: cartWith(LineItem{BookID: 1, Quantity: 0})},
	}

	for _, tt := range tests {
		items, err := BuildSubmission(tt.cart)
		if err == nil {
			t.Fatalf("%s: expected rejection, got %+v", tt.name, items)
		}
		if !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
			t.Fatalf("%s: expected validation error, got %v", tt.name, err)
		}
	}
}

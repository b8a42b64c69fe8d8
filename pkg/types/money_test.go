package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestPriceUnmarshalVariants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{name: "number", raw: `50000`, want: 50000},
		{name: "numeric string", raw: `"30000"`, want: 30000},
		{name: "null", raw: `null`, want: 0},
		{name: "empty string", raw: `""`, want: 0},
		{name: "junk", raw: `"gratis"`, want: 0},
		{name: "fractional", raw: `19.5`, want: 0},
	}

	for _, tt := range tests {
		var p Price
		if err := json.Unmarshal([]byte(tt.raw), &p); err != nil {
			t.Fatalf("%s: unexpected error %v", tt.name, err)
		}
		if tt.name == "fractional" {
			if !p.Decimal().Equal(decimal.RequireFromString("19.5")) {
				t.Fatalf("fractional price mangled: %s", p)
			}
			continue
		}
		if !p.Decimal().Equal(decimal.NewFromInt(tt.want)) {
			t.Fatalf("%s: expected %d got %s", tt.name, tt.want, p)
		}
	}
}

func TestPriceMarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(PriceFromInt(50000))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != "50000" {
		t.Fatalf("expected bare number, got %s", out)
	}
}

func TestFlexIntCoercion(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{raw: `3`, want: 3},
		{raw: `"3"`, want: 3},
		{raw: `3.9`, want: 3},
		{raw: `"banyak"`, want: 0},
		{raw: `null`, want: 0},
		{raw: `-2`, want: -2},
	}
	for _, tt := range tests {
		var f FlexInt
		if err := json.Unmarshal([]byte(tt.raw), &f); err != nil {
			t.Fatalf("raw %s: %v", tt.raw, err)
		}
		if f.Int() != tt.want {
			t.Fatalf("raw %s: expected %d got %d", tt.raw, tt.want, f.Int())
		}
	}
}

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{value: 0, want: "Rp 0"},
		{value: 500, want: "Rp 500"},
		{value: 50000, want: "Rp 50.000"},
		{value: 1250000, want: "Rp 1.250.000"},
		{value: -7000, want: "-Rp 7.000"},
	}
	for _, tt := range tests {
		if got := FormatIDR(decimal.NewFromInt(tt.value)); got != tt.want {
			t.Fatalf("value %d: expected %q got %q", tt.value, tt.want, got)
		}
	}
}

package types

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is a tolerant monetary value. Backend revisions disagree on whether
// prices arrive as JSON numbers or numeric strings; anything unparseable
// decodes to zero instead of failing the whole payload.
type Price struct {
	value decimal.Decimal
}

func NewPrice(value decimal.Decimal) Price {
	return Price{value: value}
}

func PriceFromInt(value int64) Price {
	return Price{value: decimal.NewFromInt(value)}
}

// Decimal returns the underlying decimal value.
func (p Price) Decimal() decimal.Decimal {
	return p.value
}

func (p Price) IsZero() bool {
	return p.value.IsZero()
}

func (p Price) String() string {
	return p.value.String()
}

// UnmarshalJSON accepts numbers, numeric strings, and null. Malformed input
// coerces to zero.
func (p *Price) UnmarshalJSON(data []byte) error {
	p.value = coerceDecimal(data)
	return nil
}

// MarshalJSON emits the price as a plain JSON number.
func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(p.value.String()), nil
}

// FlexInt is an integer that tolerates string-encoded and fractional wire
// values, coercing anything unparseable to zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = FlexInt(coerceDecimal(data).IntPart())
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(f))), nil
}

func (f FlexInt) Int() int {
	return int(f)
}

// FlexInt64 mirrors FlexInt for identifier-sized values.
type FlexInt64 int64

func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	*f = FlexInt64(coerceDecimal(data).IntPart())
	return nil
}

func (f FlexInt64) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(f), 10)), nil
}

func (f FlexInt64) Int64() int64 {
	return int64(f)
}

func coerceDecimal(data []byte) decimal.Decimal {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}

// FormatIDR renders a rupiah amount the way the storefront displays prices:
// no decimals, dot-separated thousands.
func FormatIDR(value decimal.Decimal) string {
	digits := value.Round(0).String()
	negative := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	out := "Rp " + b.String()
	if negative {
		out = "-" + out
	}
	return out
}

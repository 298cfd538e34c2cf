package report

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Value is a report measure rounded to two decimal places. The dataset
// export this simulates leaves absent measures as empty strings, so the
// zero Value marshals as "" rather than null.
type Value struct {
	dec   decimal.Decimal
	valid bool
}

// NewValue returns a set Value rounded to two decimal places.
func NewValue(d decimal.Decimal) Value {
	return Value{dec: d.Round(2), valid: true}
}

// Decimal returns the underlying decimal and whether the value is set.
func (v Value) Decimal() (decimal.Decimal, bool) {
	return v.dec, v.valid
}

// String returns the rounded value, or the empty string when unset.
func (v Value) String() string {
	if !v.valid {
		return ""
	}
	return v.dec.String()
}

// MarshalJSON renders the value as a bare JSON number, or as "" when
// unset.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte(`""`), nil
	}
	return []byte(v.dec.String()), nil
}

// UnmarshalJSON accepts a JSON number or the empty string.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == `""` {
		*v = Value{}
		return nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("invalid report value: %w", err)
	}

	*v = Value{dec: d, valid: true}
	return nil
}

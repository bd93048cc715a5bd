package entity

import (
	"bytes"
	"encoding/json"
	"strconv"

	"perfumeria/internal/errors"
)

// DiscountType distinguishes the two structured discount forms.
type DiscountType string

const (
	// DiscountPercent reduces the price by a percentage of itself.
	DiscountPercent DiscountType = "percent"
	// DiscountAmount reduces the price by an absolute currency amount.
	DiscountAmount DiscountType = "amount"
)

// Discount describes how much a product's price is reduced.
//
// The catalog emits it in two wire shapes: a bare number, or a structured
// object {"type": "percent"|"amount", "value": n}. A bare number keeps an
// empty Type and its interpretation is left to the evaluation site
// (see CartItem.FinalPrice and pricing.CalcDiscount).
type Discount struct {
	Type  DiscountType `json:"type,omitempty"`
	Value float64      `json:"value"`
}

// Bare reports whether the discount was given as a bare number.
func (d *Discount) Bare() bool {
	return d != nil && d.Type == ""
}

// UnmarshalJSON accepts both wire shapes. Anything unparseable degrades to a
// zero-value discount rather than failing the whole cart or product decode.
func (d *Discount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*d = Discount{}

		return nil
	}

	if trimmed[0] != '{' {
		var n float64
		if err := json.Unmarshal(trimmed, &n); err != nil {
			// Numeric strings like "10" also occur in the wild.
			var s string
			if err := json.Unmarshal(trimmed, &s); err != nil {
				*d = Discount{}

				return nil
			}
			parsed, err := strconv.ParseFloat(s, 64)
			if err != nil {
				*d = Discount{}

				return nil
			}
			n = parsed
		}
		*d = Discount{Value: n}

		return nil
	}

	var structured struct {
		Type  DiscountType `json:"type"`
		Value float64      `json:"value"`
	}
	if err := json.Unmarshal(trimmed, &structured); err != nil {
		*d = Discount{}

		return nil
	}
	*d = Discount{Type: structured.Type, Value: structured.Value}

	return nil
}

// MarshalJSON writes the discount back in the same shape it arrived in, so a
// persisted cart round-trips byte-compatible with the catalog payload.
func (d Discount) MarshalJSON() ([]byte, error) {
	if d.Type == "" {
		return []byte(strconv.FormatFloat(d.Value, 'f', -1, 64)), nil
	}

	type wire struct {
		Type  DiscountType `json:"type"`
		Value float64      `json:"value"`
	}

	out, err := json.Marshal(wire{Type: d.Type, Value: d.Value})
	if err != nil {
		return nil, errors.Wrap(err, "marshal discount")
	}

	return out, nil
}

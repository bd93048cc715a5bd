// Package entity contains the core business objects of the project.
package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ProductID is the catalog identifier of a product. The public store API is
// loose about its wire type (numbers and strings both occur), so it decodes
// from either and normalizes to a string.
type ProductID string

// UnmarshalJSON accepts a JSON number or string.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""

		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*id = ""

			return nil
		}
		*id = ProductID(strings.TrimSpace(s))

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		*id = ""

		return nil
	}
	*id = ProductID(n.String())

	return nil
}

// Amount is a defensively decoded monetary number: JSON numbers, numeric
// strings, null and garbage all normalize to a float64 (garbage to 0).
type Amount float64

// UnmarshalJSON coerces the value to a number, defaulting to 0.
func (a *Amount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*a = 0

		return nil
	}

	var n float64
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*a = Amount(n)

		return nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Amount(parsed)

			return nil
		}
	}

	*a = 0

	return nil
}

// ImageRef is a single product image reference. The catalog delivers it as a
// plain URL string or as an object carrying "url" or "src".
type ImageRef string

// UnmarshalJSON accepts a string or an object with url/src fields.
func (r *ImageRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = ""

		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			*r = ""

			return nil
		}
		*r = ImageRef(s)

		return nil
	}

	var obj struct {
		URL string `json:"url"`
		Src string `json:"src"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		*r = ""

		return nil
	}
	if obj.URL != "" {
		*r = ImageRef(obj.URL)
	} else {
		*r = ImageRef(obj.Src)
	}

	return nil
}

// Product is a read-only catalog record as served by the public store API.
// The cart only consumes it as input; it is never written back.
type Product struct {
	ID          ProductID `json:"id"`
	SKU         string    `json:"sku,omitempty"`
	Name        string    `json:"name"`
	Price       Amount    `json:"price"`
	Discount    *Discount `json:"discount,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Image       ImageRef  `json:"image,omitempty"`
	Cover       string    `json:"cover,omitempty"`
	Stock       *int      `json:"stock,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Category is a catalog category as served by the public store API.
type Category struct {
	ID   ProductID `json:"id"`
	Name string    `json:"name"`
}

// Key returns the cart identity of the product: its id, falling back to the
// sku when the catalog record has no id. Empty means the product cannot be
// added to a cart.
func (p *Product) Key() string {
	if p == nil {
		return ""
	}
	if id := strings.TrimSpace(string(p.ID)); id != "" {
		return id
	}

	return strings.TrimSpace(p.SKU)
}

// CoverImage picks the line-item thumbnail: the first non-empty entry of
// Images, then Image, then Cover. Empty when the product carries no image.
func (p *Product) CoverImage() string {
	if p == nil {
		return ""
	}
	for _, img := range p.Images {
		if img != "" {
			return img
		}
	}
	if p.Image != "" {
		return string(p.Image)
	}

	return p.Cover
}

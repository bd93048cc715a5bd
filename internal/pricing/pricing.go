// Package pricing contains the pure price/discount helpers of the storefront.
package pricing

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Quote is the result of evaluating a discount against a base price.
type Quote struct {
	Has   bool    `json:"has"`
	Final float64 `json:"final"`
	Saved float64 `json:"saved"`
	Pct   float64 `json:"pct"`
}

// CalcDiscount evaluates a bare numeric discount against a price.
//
// 0 < d <= 100 is a percentage; d > 100 is an absolute currency amount capped
// at the price. This is the catalog-badge rule; the cart reads bare numbers
// differently (see entity.CartItem.FinalPrice).
func CalcDiscount(price, discount float64) Quote {
	p := sanitize(price)
	d := sanitize(discount)
	if d <= 0 {
		return Quote{Has: false, Final: p, Saved: 0, Pct: 0}
	}

	if d <= 100 {
		saved := p * d / 100
		return Quote{
			Has:   true,
			Final: math.Max(0, p-saved),
			Saved: saved,
			Pct:   d,
		}
	}

	saved := math.Min(p, d)
	pct := 0.0
	if p > 0 {
		pct = math.Round(saved / p * 100)
	}

	return Quote{Has: true, Final: math.Max(0, p-saved), Saved: saved, Pct: pct}
}

var mxnPrinter = newMXNPrinter()

func newMXNPrinter() *message.Printer {
	tag, err := language.Parse("es-MX")
	if err != nil {
		return nil
	}

	return message.NewPrinter(tag)
}

// MoneyMXN formats a value as Mexican pesos with no decimal places, using
// es-MX locale grouping. Formatting never fails: when the locale printer is
// unavailable it degrades to a plain "$<n> MXN" string.
func MoneyMXN(v float64) string {
	n := math.Round(sanitizeSigned(v))
	if mxnPrinter == nil {
		return fmt.Sprintf("$%.0f MXN", n)
	}

	return mxnPrinter.Sprintf("$%v", number.Decimal(n, number.MaxFractionDigits(0)))
}

// PickCover returns the first non-empty image of the list, or "".
func PickCover(images []string) string {
	for _, img := range images {
		if img != "" {
			return img
		}
	}

	return ""
}

// Round2 rounds a monetary value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	return v
}

func sanitizeSigned(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

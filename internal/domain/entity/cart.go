package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CartItem is one line of a shopping cart: a snapshot of a catalog product
// taken at add-time, plus the ordered quantity. Snapshots are not re-synced
// when the catalog changes later.
type CartItem struct {
	ID       string    `json:"id"`
	SKU      string    `json:"sku,omitempty"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Discount *Discount `json:"discount,omitempty"`
	Image    string    `json:"image,omitempty"`
	Stock    *int      `json:"stock,omitempty"`
	Qty      int       `json:"qty"`
}

// FinalPrice is the discounted unit price of the line.
//
// Bare numeric discounts are read as a fraction when <= 1 and as a direct
// percentage otherwise. This deliberately differs from pricing.CalcDiscount,
// which reads bare numbers > 100 as absolute amounts; the cart never does.
func (it *CartItem) FinalPrice() float64 {
	price := sanitize(it.Price)
	d := it.Discount
	if d == nil || d.Value <= 0 {
		return price
	}

	var final float64
	switch d.Type {
	case DiscountPercent:
		final = price * (1 - d.Value/100)
	case DiscountAmount:
		final = price - d.Value
	case "":
		pct := d.Value
		if pct <= 1 {
			pct *= 100
		}
		final = price * (1 - pct/100)
	default:
		return price
	}

	return round2(math.Max(0, final))
}

// LineTotal is the discounted price of the whole line.
func (it *CartItem) LineTotal() float64 {
	return round2(it.FinalPrice() * float64(it.quantity()))
}

func (it *CartItem) quantity() int {
	if it.Qty < 1 {
		return 1
	}

	return it.Qty
}

// Totals is the derived summary of a cart. Monetary values are rounded to
// two decimals; Subtotal is un-discounted, Total is discounted.
type Totals struct {
	Count    int     `json:"count"`
	Subtotal float64 `json:"subtotal"`
	Total    float64 `json:"total"`
	Savings  float64 `json:"savings"`
}

// Cart is the aggregate owning all line items of one shopper. Items are kept
// in insertion order with the newest addition first. The zero number of items
// is a valid empty cart.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart with the given identifier.
func NewCart(id uuid.UUID) *Cart {
	return &Cart{ID: id, Items: []CartItem{}}
}

// Add merges qty units of the product into the cart. An existing line for the
// same product id absorbs the quantity (clamped to stock); otherwise a new
// snapshot line is prepended. Products without an identifier are ignored.
func (c *Cart) Add(p *Product, qty int) {
	key := p.Key()
	if key == "" {
		return
	}

	addQty := qty
	if addQty < 1 {
		addQty = 1
	}

	if idx := c.index(key); idx >= 0 {
		it := &c.Items[idx]
		it.Qty = floorOne(clampStock(it.Qty+addQty, p.Stock))

		return
	}

	item := CartItem{
		ID:       key,
		SKU:      p.SKU,
		Name:     p.Name,
		Price:    sanitize(float64(p.Price)),
		Discount: p.Discount,
		Image:    p.CoverImage(),
		Stock:    p.Stock,
		Qty:      floorOne(clampStock(addQty, p.Stock)),
	}
	c.Items = append([]CartItem{item}, c.Items...)
}

// SetQty replaces the quantity of a line. A quantity of zero or less removes
// the line; anything else is clamped to stock and floored at one. Unknown ids
// are ignored.
func (c *Cart) SetQty(id string, qty int) {
	idx := c.index(id)
	if idx < 0 {
		return
	}
	if qty <= 0 {
		c.removeAt(idx)

		return
	}

	it := &c.Items[idx]
	it.Qty = floorOne(clampStock(qty, it.Stock))
}

// Inc raises a line's quantity by step (minimum 1), clamped to stock. The
// line is never removed by an increment.
func (c *Cart) Inc(id string, step int) {
	idx := c.index(id)
	if idx < 0 {
		return
	}

	it := &c.Items[idx]
	it.Qty = floorOne(clampStock(it.Qty+floorOne(step), it.Stock))
}

// Dec lowers a line's quantity by step (minimum 1). Reaching zero or less
// removes the line entirely; this is the only mutation besides SetQty and
// Remove that deletes a line.
func (c *Cart) Dec(id string, step int) {
	idx := c.index(id)
	if idx < 0 {
		return
	}

	desired := c.Items[idx].Qty - floorOne(step)
	if desired <= 0 {
		c.removeAt(idx)

		return
	}
	c.Items[idx].Qty = desired
}

// Remove deletes a line unconditionally. Unknown ids are ignored.
func (c *Cart) Remove(id string) {
	if idx := c.index(id); idx >= 0 {
		c.removeAt(idx)
	}
}

// Clear empties the whole cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals recomputes the derived summary from the current items.
func (c *Cart) Totals() Totals {
	var subtotal, total float64
	var count int
	for i := range c.Items {
		it := &c.Items[i]
		qty := it.quantity()
		subtotal += sanitize(it.Price) * float64(qty)
		total += it.FinalPrice() * float64(qty)
		count += qty
	}

	return Totals{
		Count:    count,
		Subtotal: round2(subtotal),
		Total:    round2(total),
		Savings:  round2(math.Max(0, subtotal-total)),
	}
}

// Clone returns a deep copy safe to hand across goroutines.
func (c *Cart) Clone() *Cart {
	if c == nil {
		return nil
	}

	clone := &Cart{ID: c.ID, UpdatedAt: c.UpdatedAt, Items: make([]CartItem, len(c.Items))}
	copy(clone.Items, c.Items)
	for i := range clone.Items {
		if s := clone.Items[i].Stock; s != nil {
			v := *s
			clone.Items[i].Stock = &v
		}
		if d := clone.Items[i].Discount; d != nil {
			v := *d
			clone.Items[i].Discount = &v
		}
	}

	return clone
}

func (c *Cart) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}

	return -1
}

func (c *Cart) removeAt(idx int) {
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

func clampStock(qty int, stock *int) int {
	if stock != nil && qty > *stock {
		return *stock
	}

	return qty
}

func floorOne(n int) int {
	if n < 1 {
		return 1
	}

	return n
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}

	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func testProduct(id string) *Product {
	return &Product{
		ID:     ProductID(id),
		SKU:    "SKU-" + id,
		Name:   "Perfume " + id,
		Price:  Amount(200),
		Images: []string{"https://cdn.example.com/" + id + ".jpg"},
	}
}

func TestCart_Add_MergesOnSameID(t *testing.T) {
	cart := NewCart(uuid.New())
	p := testProduct("42")

	cart.Add(p, 2)
	cart.Add(p, 2)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "42", cart.Items[0].ID)
	assert.Equal(t, 4, cart.Items[0].Qty)
}

func TestCart_Add_PrependsNewItems(t *testing.T) {
	cart := NewCart(uuid.New())

	cart.Add(testProduct("a"), 1)
	cart.Add(testProduct("b"), 1)
	cart.Add(testProduct("c"), 1)

	require.Len(t, cart.Items, 3)
	assert.Equal(t, "c", cart.Items[0].ID)
	assert.Equal(t, "b", cart.Items[1].ID)
	assert.Equal(t, "a", cart.Items[2].ID)
}

func TestCart_Add_SnapshotsProductFields(t *testing.T) {
	cart := NewCart(uuid.New())
	p := testProduct("42")
	p.Discount = &Discount{Type: DiscountPercent, Value: 10}
	p.Stock = intPtr(7)

	cart.Add(p, 1)

	require.Len(t, cart.Items, 1)
	it := cart.Items[0]
	assert.Equal(t, "SKU-42", it.SKU)
	assert.Equal(t, "Perfume 42", it.Name)
	assert.Equal(t, 200.0, it.Price)
	assert.Equal(t, "https://cdn.example.com/42.jpg", it.Image)
	require.NotNil(t, it.Stock)
	assert.Equal(t, 7, *it.Stock)
	require.NotNil(t, it.Discount)
	assert.Equal(t, DiscountPercent, it.Discount.Type)
}

func TestCart_Add_FallsBackToSKU(t *testing.T) {
	cart := NewCart(uuid.New())
	p := &Product{SKU: "ONLY-SKU", Name: "Sin id", Price: 100}

	cart.Add(p, 1)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "ONLY-SKU", cart.Items[0].ID)
}

func TestCart_Add_NoIdentifierIsNoop(t *testing.T) {
	cart := NewCart(uuid.New())

	cart.Add(&Product{Name: "Fantasma", Price: 100}, 3)

	assert.Empty(t, cart.Items)
}

func TestCart_Add_ClampsToStock(t *testing.T) {
	cart := NewCart(uuid.New())
	p := testProduct("42")
	p.Stock = intPtr(3)

	for range 5 {
		cart.Add(p, 1)
	}

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Qty)
}

func TestCart_Add_NormalizesQuantity(t *testing.T) {
	cart := NewCart(uuid.New())

	cart.Add(testProduct("42"), 0)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Qty)

	cart.Add(testProduct("42"), -5)
	assert.Equal(t, 2, cart.Items[0].Qty)
}

func TestCart_SetQty(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 2)

		cart.SetQty("42", 0)

		assert.Empty(t, cart.Items)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 2)

		cart.SetQty("42", -5)

		assert.Empty(t, cart.Items)
	})

	t.Run("positive sets clamped to stock", func(t *testing.T) {
		cart := NewCart(uuid.New())
		p := testProduct("42")
		p.Stock = intPtr(4)
		cart.Add(p, 1)

		cart.SetQty("42", 9)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 4, cart.Items[0].Qty)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 2)

		cart.SetQty("nope", 5)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Qty)
	})
}

func TestCart_Inc(t *testing.T) {
	t.Run("adds the step", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 1)

		cart.Inc("42", 3)

		assert.Equal(t, 4, cart.Items[0].Qty)
	})

	t.Run("never exceeds stock", func(t *testing.T) {
		cart := NewCart(uuid.New())
		p := testProduct("42")
		p.Stock = intPtr(5)
		cart.Add(p, 5)

		cart.Inc("42", 1)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Qty)
	})

	t.Run("step floors at one", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 1)

		cart.Inc("42", 0)

		assert.Equal(t, 2, cart.Items[0].Qty)
	})
}

func TestCart_Dec(t *testing.T) {
	t.Run("subtracts the step", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 5)

		cart.Dec("42", 2)

		assert.Equal(t, 3, cart.Items[0].Qty)
	})

	t.Run("reaching zero removes the line", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 1)

		cart.Dec("42", 1)

		assert.Empty(t, cart.Items)
	})

	t.Run("dropping below zero removes the line", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 2)

		cart.Dec("42", 5)

		assert.Empty(t, cart.Items)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		cart := NewCart(uuid.New())
		cart.Add(testProduct("42"), 2)

		cart.Dec("nope", 1)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Qty)
	})
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(testProduct("a"), 1)
	cart.Add(testProduct("b"), 1)

	cart.Remove("a")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "b", cart.Items[0].ID)

	cart.Remove("a") // already gone
	assert.Len(t, cart.Items, 1)
}

func TestCart_Clear_Idempotent(t *testing.T) {
	cart := NewCart(uuid.New())
	cart.Add(testProduct("a"), 2)

	cart.Clear()
	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, Totals{}, cart.Totals())
}

func TestCart_Totals(t *testing.T) {
	cart := NewCart(uuid.New())

	full := testProduct("full")
	full.Price = 100
	cart.Add(full, 2) // 200 un-discounted

	discounted := testProduct("promo")
	discounted.Price = 200
	discounted.Discount = &Discount{Type: DiscountPercent, Value: 25}
	cart.Add(discounted, 1) // 200 base, 150 final

	totals := cart.Totals()
	assert.Equal(t, 3, totals.Count)
	assert.Equal(t, 400.0, totals.Subtotal)
	assert.Equal(t, 350.0, totals.Total)
	assert.Equal(t, 50.0, totals.Savings)
	assert.LessOrEqual(t, totals.Total, totals.Subtotal)
}

func TestCartItem_FinalPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		price    float64
		discount *Discount
		want     float64
	}{
		{name: "no discount", price: 200, discount: nil, want: 200},
		{name: "bare fraction", price: 200, discount: &Discount{Value: 0.1}, want: 180},
		{name: "bare percent", price: 200, discount: &Discount{Value: 15}, want: 170},
		{name: "bare zero", price: 200, discount: &Discount{Value: 0}, want: 200},
		{name: "percent object", price: 200, discount: &Discount{Type: DiscountPercent, Value: 50}, want: 100},
		{name: "amount object", price: 200, discount: &Discount{Type: DiscountAmount, Value: 50}, want: 150},
		{name: "amount exceeds price", price: 200, discount: &Discount{Type: DiscountAmount, Value: 500}, want: 0},
		{name: "unknown type", price: 200, discount: &Discount{Type: "mystery", Value: 50}, want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			it := CartItem{ID: "x", Price: tt.price, Discount: tt.discount, Qty: 1}
			assert.Equal(t, tt.want, it.FinalPrice())
		})
	}
}

func TestCart_Clone_IsDeep(t *testing.T) {
	cart := NewCart(uuid.New())
	p := testProduct("42")
	p.Stock = intPtr(5)
	p.Discount = &Discount{Value: 0.1}
	cart.Add(p, 2)

	clone := cart.Clone()
	clone.Items[0].Qty = 99
	*clone.Items[0].Stock = 99
	clone.Items[0].Discount.Value = 99

	assert.Equal(t, 2, cart.Items[0].Qty)
	assert.Equal(t, 5, *cart.Items[0].Stock)
	assert.Equal(t, 0.1, cart.Items[0].Discount.Value)
}

package usecase

import (
	"context"

	"perfumeria/internal/domain/entity"

	"github.com/google/uuid"
)

// CartView is the cart state handed to the delivery layer: the items plus the
// derived totals, recomputed on every mutation.
type CartView struct {
	ID     uuid.UUID         `json:"id"`
	Items  []entity.CartItem `json:"items"`
	Totals entity.Totals     `json:"totals"`
}

// CartUsecase defines the interface for shopping-cart use cases. Invalid
// inputs (missing product identifier, unknown line id) are silent no-ops
// returning the unchanged cart; a missing cart reads as empty.
type CartUsecase interface {
	// Create allocates a new empty cart and returns it.
	Create(ctx context.Context) (*CartView, error)

	// Get retrieves the cart; a cart that was never saved is empty.
	Get(ctx context.Context, cartID uuid.UUID) (*CartView, error)

	// AddItem merges qty units of the product into the cart (merge-on-add,
	// clamped to stock).
	AddItem(ctx context.Context, cartID uuid.UUID, product *entity.Product, qty int) (*CartView, error)

	// SetQuantity replaces a line's quantity; zero or less removes the line.
	SetQuantity(ctx context.Context, cartID uuid.UUID, itemID string, qty int) (*CartView, error)

	// Increment raises a line's quantity by step, clamped to stock.
	Increment(ctx context.Context, cartID uuid.UUID, itemID string, step int) (*CartView, error)

	// Decrement lowers a line's quantity by step; reaching zero removes the line.
	Decrement(ctx context.Context, cartID uuid.UUID, itemID string, step int) (*CartView, error)

	// RemoveItem deletes a line unconditionally.
	RemoveItem(ctx context.Context, cartID uuid.UUID, itemID string) (*CartView, error)

	// Clear empties the whole cart.
	Clear(ctx context.Context, cartID uuid.UUID) (*CartView, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when no cart is stored under an id.
	ErrCartNotFound = errors.New("cart not found")
)

// CartRepository defines the interface for cart storage. Implementations
// persist the full item list on every save (write-through, no partial
// updates) and must degrade malformed stored payloads to an empty cart
// instead of surfacing a decode error.
type CartRepository interface {
	// Load retrieves the cart stored under id. Returns ErrCartNotFound when
	// nothing is stored.
	Load(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// Save writes the cart's full item list back to storage.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the stored cart. Deleting a missing cart is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

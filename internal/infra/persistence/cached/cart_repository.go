// Package cached decorates a cart store with an in-memory copy kept fresh by
// cart-change events from other instances.
package cached

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/domain/repository"
	"perfumeria/internal/domain/service"

	"github.com/google/uuid"
)

// cartRepository keeps a per-cart snapshot in memory in front of the inner
// store. Inbound change events replace the snapshot wholesale, whatever was
// written last wins; a failed or late event only means the next Load falls
// through to the inner store.
type cartRepository struct {
	inner  repository.CartRepository
	logger *slog.Logger

	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
}

// NewCartRepository wraps inner and, when subscriber is non-nil, starts
// consuming cart-change events to keep the in-memory copies current.
func NewCartRepository(ctx context.Context, inner repository.CartRepository, subscriber service.CartEventSubscriber, logger *slog.Logger) (repository.CartRepository, error) {
	repo := &cartRepository{
		inner:  inner,
		logger: logger,
		carts:  make(map[uuid.UUID]*entity.Cart),
	}

	if subscriber != nil {
		if err := subscriber.Subscribe(ctx, repo.applyChange); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

// Load serves from the in-memory copy when present, otherwise reads through
// and remembers the result.
func (repo *cartRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	repo.mu.RLock()
	cart, ok := repo.carts[id]
	repo.mu.RUnlock()
	if ok {
		return cart.Clone(), nil
	}

	cart, err := repo.inner.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	repo.remember(cart)

	return cart.Clone(), nil
}

// Save writes through to the inner store first; the in-memory copy only
// updates once the write landed.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	if err := repo.inner.Save(ctx, cart); err != nil {
		return err
	}

	repo.remember(cart)

	return nil
}

// Delete removes both copies.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.inner.Delete(ctx, id); err != nil {
		return err
	}

	repo.mu.Lock()
	delete(repo.carts, id)
	repo.mu.Unlock()

	return nil
}

func (repo *cartRepository) remember(cart *entity.Cart) {
	repo.mu.Lock()
	repo.carts[cart.ID] = cart.Clone()
	repo.mu.Unlock()
}

// applyChange replaces the in-memory copy with the carried item list. The
// replacement is unconditional: events are not ordered across instances and
// the storefront accepts last-write-wins.
func (repo *cartRepository) applyChange(change *service.CartChange) {
	if change == nil {
		return
	}

	id, err := uuid.Parse(change.CartID)
	if err != nil {
		repo.logger.Warn("cart change with invalid id ignored",
			slog.String("cart_id", change.CartID),
			slog.Any("error", err),
		)

		return
	}

	writtenAt := change.WrittenAt
	if writtenAt.IsZero() {
		writtenAt = time.Now().UTC()
	}

	repo.remember(&entity.Cart{
		ID:        id,
		Items:     change.Items,
		UpdatedAt: writtenAt,
	})
}

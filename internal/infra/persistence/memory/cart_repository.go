// Package memory contains an in-process cart store for development and tests.
package memory

import (
	"context"
	"sync"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/domain/repository"

	"github.com/google/uuid"
)

// cartRepository implements repository.CartRepository on a plain map. Carts
// do not survive a restart; the backend exists for local development and as
// the inner store in cache tests.
type cartRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository() repository.CartRepository {
	return &cartRepository{
		carts: make(map[uuid.UUID]*entity.Cart),
	}
}

func (repo *cartRepository) Load(_ context.Context, id uuid.UUID) (*entity.Cart, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	cart, ok := repo.carts[id]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return cart.Clone(), nil
}

func (repo *cartRepository) Save(_ context.Context, cart *entity.Cart) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.carts[cart.ID] = cart.Clone()

	return nil
}

func (repo *cartRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.carts, id)

	return nil
}

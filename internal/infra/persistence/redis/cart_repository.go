package redis

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// cartRepository implements repository.CartRepository on Redis. Each cart is
// one JSON value under <keyPrefix>:<cartID>.
type cartRepository struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *slog.Logger
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(client *redis.Client, keyPrefix string, ttl time.Duration, logger *slog.Logger) repository.CartRepository {
	return &cartRepository{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
		logger:    logger,
	}
}

// Load retrieves a cart snapshot. A payload that does not decode is treated
// as an empty cart rather than an error, so one bad write cannot brick a
// customer's cart.
func (repo *cartRepository) Load(ctx context.Context, id uuid.UUID) (*entity.Cart, error) {
	raw, err := repo.client.Get(ctx, repo.key(id)).Result()
	if err == redis.Nil {
		return nil, repository.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return repo.decode(id, []byte(raw)), nil
}

// decode parses a stored payload, a bare JSON array of line items. A payload
// that does not parse degrades to an empty cart and is logged, never
// surfaced.
func (repo *cartRepository) decode(id uuid.UUID, raw []byte) *entity.Cart {
	var items []entity.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		repo.logger.Warn("stored cart payload corrupt, resetting",
			slog.String("cart_id", id.String()),
			slog.Any("error", err),
		)

		return entity.NewCart(id)
	}

	cart := entity.NewCart(id)
	cart.Items = items

	return cart
}

// encode serializes the full item list, the only state the store holds.
func encode(cart *entity.Cart) ([]byte, error) {
	items := cart.Items
	if items == nil {
		items = []entity.CartItem{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cart")
	}

	return payload, nil
}

// Save writes the full snapshot back, refreshing the cart's TTL.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	payload, err := encode(cart)
	if err != nil {
		return err
	}

	if err := repo.client.Set(ctx, repo.key(cart.ID), payload, repo.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save cart")
	}

	return nil
}

// Delete removes the stored cart.
func (repo *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.client.Del(ctx, repo.key(id)).Err(); err != nil {
		return errors.Wrap(err, "failed to delete cart")
	}

	return nil
}

func (repo *cartRepository) key(id uuid.UUID) string {
	return repo.keyPrefix + ":" + id.String()
}

package service

import (
	"context"
	"time"

	"perfumeria/internal/domain/entity"
)

// CartChange is the storage-change notification emitted after every
// successful cart save. Other instances replace their in-memory copy with the
// carried items wholesale: last writer wins, no merging.
type CartChange struct {
	CartID    string            `json:"cart_id"`
	Items     []entity.CartItem `json:"items"`
	WrittenAt time.Time         `json:"written_at"`
}

// CartEventPublisher defines the interface for broadcasting cart changes.
type CartEventPublisher interface {
	// PublishCartChange broadcasts a cart change to all subscribers.
	PublishCartChange(ctx context.Context, change *CartChange) error

	// Close releases any resources held by the publisher.
	Close() error
}

// CartEventHandler consumes one inbound cart change.
type CartEventHandler func(change *CartChange)

// CartEventSubscriber defines the interface for receiving cart changes
// written by other instances.
type CartEventSubscriber interface {
	// Subscribe registers the handler and starts delivering changes until the
	// context is cancelled or the subscriber is closed.
	Subscribe(ctx context.Context, handler CartEventHandler) error

	// Close stops delivery and releases resources.
	Close() error
}

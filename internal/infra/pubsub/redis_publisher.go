// Package pubsub broadcasts cart changes between instances over Redis Pub/Sub.
package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"perfumeria/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisPublisher implements service.CartEventPublisher on a Redis channel.
type redisPublisher struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger
}

// NewRedisPublisher creates a publisher writing to the given channel.
func NewRedisPublisher(client *redis.Client, channel string, logger *slog.Logger) service.CartEventPublisher {
	return &redisPublisher{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// PublishCartChange sends the change to every subscribed instance. Delivery
// is fire-and-forget: Redis Pub/Sub does not retain messages for absent
// subscribers, and the decorated stores tolerate missed events.
func (p *redisPublisher) PublishCartChange(ctx context.Context, change *service.CartChange) error {
	payload, err := json.Marshal(change)
	if err != nil {
		return errors.Wrap(err, "failed to encode cart change")
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errors.Wrap(err, "failed to publish cart change")
	}

	p.logger.Debug("cart change published",
		slog.String("cart_id", change.CartID),
		slog.String("channel", p.channel),
	)

	return nil
}

func (p *redisPublisher) Close() error {
	return nil
}

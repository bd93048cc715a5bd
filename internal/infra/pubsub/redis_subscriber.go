package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"perfumeria/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

// redisSubscriber implements service.CartEventSubscriber on a Redis channel.
type redisSubscriber struct {
	client  *redis.Client
	channel string
	logger  *slog.Logger

	sub *redis.PubSub
}

// NewRedisSubscriber creates a subscriber reading from the given channel.
func NewRedisSubscriber(client *redis.Client, channel string, logger *slog.Logger) service.CartEventSubscriber {
	return &redisSubscriber{
		client:  client,
		channel: channel,
		logger:  logger,
	}
}

// Subscribe starts a goroutine delivering decoded changes to handler until
// the context ends or Close is called. Messages that do not decode are
// dropped with a warning; a poisoned channel must not stop delivery.
func (s *redisSubscriber) Subscribe(ctx context.Context, handler service.CartEventHandler) error {
	s.sub = s.client.Subscribe(ctx, s.channel)

	// Force the subscription to be established before returning.
	if _, err := s.sub.Receive(ctx); err != nil {
		return err
	}

	go func() {
		for msg := range s.sub.Channel() {
			var change service.CartChange
			if err := json.Unmarshal([]byte(msg.Payload), &change); err != nil {
				s.logger.Warn("dropping undecodable cart change",
					slog.String("channel", s.channel),
					slog.Any("error", err),
				)

				continue
			}

			handler(&change)
		}
	}()

	return nil
}

func (s *redisSubscriber) Close() error {
	if s.sub == nil {
		return nil
	}

	return s.sub.Close()
}

package pubsub

import (
	"context"
	"log/slog"

	"perfumeria/config"
	"perfumeria/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// noopPublisher is a no-op implementation when cart sync is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishCartChange(_ context.Context, change *service.CartChange) error {
	p.logger.Debug("[NoopPubSub] Cart sync disabled, skipping",
		slog.String("cart_id", change.CartID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// Params holds dependencies for the cart event transport, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewCartEventPublisher creates a CartEventPublisher based on configuration
func NewCartEventPublisher(params Params) (service.CartEventPublisher, error) {
	cfg := params.Config.Cart
	logger := params.Logger

	if cfg == nil || !cfg.Sync || params.Redis == nil {
		logger.Info("Cart sync not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	publisher := NewRedisPublisher(params.Redis, cfg.Channel, logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing CartEventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// NewCartEventSubscriber creates a CartEventSubscriber based on configuration.
// A nil subscriber means every load falls through to the backing store.
func NewCartEventSubscriber(params Params) service.CartEventSubscriber {
	cfg := params.Config.Cart

	if cfg == nil || !cfg.Sync || params.Redis == nil {
		params.Logger.Info("Cart sync not configured, instances read storage directly")

		return nil
	}

	subscriber := NewRedisSubscriber(params.Redis, cfg.Channel, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing CartEventSubscriber")

			return subscriber.Close()
		},
	})

	return subscriber
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCartEventPublisher),
	fx.Provide(NewCartEventSubscriber),
)

// Package persistence selects and assembles the cart storage backend.
package persistence

import (
	"context"
	"log/slog"

	"perfumeria/config"
	"perfumeria/internal/domain/repository"
	"perfumeria/internal/domain/service"
	"perfumeria/internal/infra/persistence/cached"
	"perfumeria/internal/infra/persistence/memory"
	"perfumeria/internal/infra/persistence/postgres"
	redisstore "perfumeria/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Storage backend names accepted in configuration.
const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Params holds dependencies for the cart store, injected by Fx
type Params struct {
	fx.In

	Ctx        context.Context
	Config     *config.Config
	Logger     *slog.Logger
	Redis      *goredis.Client             `optional:"true"`
	DB         *gorm.DB                    `optional:"true"`
	Subscriber service.CartEventSubscriber `optional:"true"`
}

// NewCartRepository builds the configured backend and wraps it with the
// in-memory change-synced decorator.
func NewCartRepository(params Params) (repository.CartRepository, error) {
	cfg := params.Config.Cart
	if cfg == nil {
		params.Logger.Warn("cart storage not configured, using in-memory backend")
		cfg = &config.CartConfig{Storage: StorageMemory}
	}

	var inner repository.CartRepository
	switch cfg.Storage {
	case StorageRedis:
		if params.Redis == nil {
			return nil, errors.New("redis client is required for redis cart storage")
		}
		inner = redisstore.NewCartRepository(params.Redis, cfg.KeyPrefix, cfg.TTL, params.Logger)

	case StoragePostgres:
		if params.DB == nil {
			return nil, errors.New("postgres connection is required for postgres cart storage")
		}
		inner = postgres.NewCartRepository(params.DB)

	case StorageMemory:
		inner = memory.NewCartRepository()

	default:
		return nil, errors.Errorf("unknown cart storage backend: %s", cfg.Storage)
	}

	params.Logger.Info("Cart storage configured",
		slog.String("backend", cfg.Storage),
		slog.Bool("sync", params.Subscriber != nil),
	)

	return cached.NewCartRepository(params.Ctx, inner, params.Subscriber, params.Logger)
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCartRepository),
)

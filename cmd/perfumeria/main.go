package main

import (
	"context"
	"log/slog"
	"os"

	"perfumeria/config"
	"perfumeria/internal/delivery"
	"perfumeria/internal/delivery/http"
	"perfumeria/internal/delivery/http/router/handler"
	"perfumeria/internal/domain/service"
	"perfumeria/internal/infra/cache"
	logs "perfumeria/internal/infra/log"
	"perfumeria/internal/infra/persistence"
	"perfumeria/internal/infra/persistence/postgres"
	redisinfra "perfumeria/internal/infra/persistence/redis"
	"perfumeria/internal/infra/pubsub"
	"perfumeria/internal/infra/publicstore"
	"perfumeria/internal/infra/qrcode"
	"perfumeria/internal/usecase"
	"perfumeria/internal/usecase/impl"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newRedisClient,
		newPostgres,
	)
}

// newRedisClient connects to Redis only when some component needs it: the
// cart store, cart sync or the catalog cache.
func newRedisClient(params redisinfra.Params) (*goredis.Client, error) {
	if !needsRedis(params.Config) {
		return nil, nil
	}

	return redisinfra.New(params)
}

func needsRedis(cfg *config.Config) bool {
	if cfg.Cart != nil && (cfg.Cart.Storage == persistence.StorageRedis || cfg.Cart.Sync) {
		return true
	}

	return cfg.Catalog != nil && cfg.Catalog.CacheEnabled
}

// newPostgres connects to PostgreSQL only for the durable cart backend.
func newPostgres(params postgres.Params) (*gorm.DB, error) {
	if params.Config.Cart == nil || params.Config.Cart.Storage != persistence.StoragePostgres {
		return nil, nil
	}

	return postgres.New(params)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newStoreGateway,
			newCatalogCache,
			newQRCodeService,
		),
	)
}

func newStoreGateway(cfg *config.Config, logger *slog.Logger) service.StoreGateway {
	return publicstore.NewClient(cfg.Store, logger)
}

// newCatalogCache builds the read cache; nil disables caching.
func newCatalogCache(cfg *config.Config, client *goredis.Client) service.Cache {
	if cfg.Catalog == nil || !cfg.Catalog.CacheEnabled || client == nil {
		return nil
	}

	return cache.NewRedisCache(client, cfg.Env.ServiceName)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			newCatalogUsecase,
			impl.NewOrderService,
		),
	)
}

func newCatalogUsecase(gateway service.StoreGateway, catalogCache service.Cache, cfg *config.Config, logger *slog.Logger) usecase.CatalogUsecase {
	if cfg.Catalog != nil {
		return impl.NewCatalogService(gateway, catalogCache, cfg.Catalog.CacheTTL, logger)
	}

	return impl.NewCatalogService(gateway, catalogCache, 0, logger)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCartHandler,
			handler.NewCatalogHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

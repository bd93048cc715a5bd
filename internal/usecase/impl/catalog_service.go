package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"perfumeria/internal/domain/entity"
	domainerrors "perfumeria/internal/domain/errors"
	"perfumeria/internal/domain/service"
	"perfumeria/internal/errors"
	"perfumeria/internal/usecase"
)

const defaultCatalogTTL = 5 * time.Minute

type catalogService struct {
	gateway  service.StoreGateway
	cache    service.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service instance. cache may be nil,
// in which case every read goes straight to the remote store API.
func NewCatalogService(gateway service.StoreGateway, cache service.Cache, cacheTTL time.Duration, logger *slog.Logger) usecase.CatalogUsecase {
	if cacheTTL <= 0 {
		cacheTTL = defaultCatalogTTL
	}

	return &catalogService{
		gateway:  gateway,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Products lists catalog products matching the query.
func (s *catalogService) Products(ctx context.Context, query service.ProductQuery) ([]entity.Product, error) {
	key := fmt.Sprintf("q=%s&category=%s&page=%d&size=%d", query.Search, query.Category, query.Page, query.PageSize)

	var products []entity.Product
	if s.cachedInto(ctx, "products", key, &products) {
		return products, nil
	}

	products, err := s.gateway.Products(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}
	s.store(ctx, "products", key, products)

	return products, nil
}

// ProductDetail retrieves one product by catalog id.
func (s *catalogService) ProductDetail(ctx context.Context, id string) (*entity.Product, error) {
	if id == "" {
		return nil, domainerrors.ErrProductNotFound
	}

	var product entity.Product
	if s.cachedInto(ctx, "product", id, &product) {
		return &product, nil
	}

	detail, err := s.gateway.ProductDetail(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch product detail")
	}
	s.store(ctx, "product", id, detail)

	return detail, nil
}

// Categories lists the store's categories.
func (s *catalogService) Categories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if s.cachedInto(ctx, "categories", "all", &categories) {
		return categories, nil
	}

	categories, err := s.gateway.Categories(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	s.store(ctx, "categories", "all", categories)

	return categories, nil
}

// Site retrieves the raw public-site configuration.
func (s *catalogService) Site(ctx context.Context) (*entity.PublicSite, error) {
	var site entity.PublicSite
	if s.cachedInto(ctx, "site", "current", &site) {
		return &site, nil
	}

	fetched, err := s.gateway.Site(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch public site")
	}
	s.store(ctx, "site", "current", fetched)

	return fetched, nil
}

// SiteView assembles the branding view served to the storefront UI.
func (s *catalogService) SiteView(ctx context.Context) (*usecase.SiteView, error) {
	site, err := s.Site(ctx)
	if err != nil {
		return nil, err
	}

	siteView := &usecase.SiteView{
		StoreName:  site.StoreName(),
		Carousel:   site.Carousel(),
		HeroImages: site.HeroImages(),
		Socials:    site.SocialLinks(),
		HasOrders:  site.WhatsAppNumber() != "",
		Expired:    site.Expired,
		Message:    site.Message,
	}
	if site.Site != nil {
		siteView.Logo = site.Site.Logo
	}

	return siteView, nil
}

// cachedInto reports whether the cache held a value for operation/key and, if
// so, decodes it into out. Cache failures are treated as misses.
func (s *catalogService) cachedInto(ctx context.Context, operation, key string, out any) bool {
	if s.cache == nil {
		return false
	}

	raw, err := s.cache.Get(ctx, s.cache.GenerateKey(operation, key))
	if err != nil {
		s.logger.Warn("catalog cache read failed", slog.String("operation", operation), slog.Any("error", err))

		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Warn("catalog cache entry corrupt", slog.String("operation", operation), slog.Any("error", err))

		return false
	}

	return true
}

func (s *catalogService) store(ctx context.Context, operation, key string, value any) {
	if s.cache == nil {
		return
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.GenerateKey(operation, key), string(encoded), s.cacheTTL); err != nil {
		s.logger.Warn("catalog cache write failed", slog.String("operation", operation), slog.Any("error", err))
	}
}

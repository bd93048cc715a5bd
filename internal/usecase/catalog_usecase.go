package usecase

import (
	"context"

	"perfumeria/internal/domain/entity"
	"perfumeria/internal/domain/service"
)

// SiteView is the assembled branding payload served to the storefront UI.
type SiteView struct {
	StoreName  string         `json:"store_name"`
	Logo       string         `json:"logo,omitempty"`
	Carousel   []string       `json:"carousel,omitempty"`
	HeroImages []string       `json:"hero_images,omitempty"`
	Socials    entity.Socials `json:"socials"`
	HasOrders  bool           `json:"has_orders"` // whether a WhatsApp number is reachable
	Expired    bool           `json:"expired"`
	Message    string         `json:"message,omitempty"`
}

// CatalogUsecase defines the read-only catalog/branding use cases, layered on
// the remote public-store API with a response cache.
type CatalogUsecase interface {
	// Products lists catalog products matching the query.
	Products(ctx context.Context, query service.ProductQuery) ([]entity.Product, error)

	// ProductDetail retrieves one product by catalog id.
	ProductDetail(ctx context.Context, id string) (*entity.Product, error)

	// Categories lists the store's categories.
	Categories(ctx context.Context) ([]entity.Category, error)

	// Site retrieves the raw public-site configuration.
	Site(ctx context.Context) (*entity.PublicSite, error)

	// SiteView assembles the branding view (name, carousel, socials).
	SiteView(ctx context.Context) (*SiteView, error)
}

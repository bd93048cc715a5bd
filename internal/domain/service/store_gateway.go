// Package service defines interfaces for external collaborators of the domain.
package service

import (
	"context"

	"perfumeria/internal/domain/entity"
)

// ProductQuery carries the optional catalog list filters, passed through to
// the upstream API as query parameters.
type ProductQuery struct {
	Search   string
	Category string
	Page     int
	PageSize int
}

// StoreGateway is the read-only client of the remote public-store API. All
// data it returns is owned upstream; the storefront never writes back.
type StoreGateway interface {
	// Products lists the catalog products matching the query.
	Products(ctx context.Context, query ProductQuery) ([]entity.Product, error)

	// ProductDetail retrieves a single product by its catalog id.
	ProductDetail(ctx context.Context, id string) (*entity.Product, error)

	// Categories lists the store's product categories.
	Categories(ctx context.Context) ([]entity.Category, error)

	// Site retrieves the public site configuration (branding, contact,
	// carousel) for the configured store slug.
	Site(ctx context.Context) (*entity.PublicSite, error)
}

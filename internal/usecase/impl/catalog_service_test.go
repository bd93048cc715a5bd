package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"perfumeria/internal/domain/entity"
	domainerrors "perfumeria/internal/domain/errors"
	"perfumeria/internal/domain/service"
	mockSvc "perfumeria/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service *catalogService
	gateway *mockSvc.MockStoreGateway
	cache   *mockSvc.MockCache
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	gateway := mockSvc.NewMockStoreGateway(t)
	cache := mockSvc.NewMockCache(t)
	service := NewCatalogService(gateway, cache, time.Minute, slog.Default()).(*catalogService)

	return catalogServiceFixtures{
		service: service,
		gateway: gateway,
		cache:   cache,
	}
}

func TestCatalogService_Products_CacheMissFetchesAndStores(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	query := service.ProductQuery{Search: "rosa", Page: 1, PageSize: 20}

	fetched := []entity.Product{
		{ID: "41", Name: "Agua de rosas", Price: 250},
	}

	fx.cache.EXPECT().
		GenerateKey("products", mock.AnythingOfType("string")).
		Return("perfumeria:products:key")
	fx.cache.EXPECT().
		Get(ctx, "perfumeria:products:key").
		Return("", nil)
	fx.gateway.EXPECT().
		Products(ctx, query).
		Return(fetched, nil)
	fx.cache.EXPECT().
		Set(ctx, "perfumeria:products:key", mock.AnythingOfType("string"), time.Minute).
		Return(nil)

	products, err := fx.service.Products(ctx, query)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Agua de rosas", products[0].Name)
}

func TestCatalogService_Products_CacheHitSkipsGateway(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	cached := []entity.Product{
		{ID: "41", Name: "Agua de rosas", Price: 250},
		{ID: "42", Name: "Oud intenso", Price: 480},
	}
	raw, err := json.Marshal(cached)
	require.NoError(t, err)

	fx.cache.EXPECT().
		GenerateKey("products", mock.AnythingOfType("string")).
		Return("perfumeria:products:key")
	fx.cache.EXPECT().
		Get(ctx, "perfumeria:products:key").
		Return(string(raw), nil)

	products, err := fx.service.Products(ctx, service.ProductQuery{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Oud intenso", products[1].Name)
	fx.gateway.AssertNotCalled(t, "Products")
}

func TestCatalogService_Products_CacheErrorFallsThrough(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.EXPECT().
		GenerateKey("products", mock.AnythingOfType("string")).
		Return("perfumeria:products:key")
	fx.cache.EXPECT().
		Get(ctx, "perfumeria:products:key").
		Return("", errors.New("redis down"))
	fx.gateway.EXPECT().
		Products(ctx, mock.AnythingOfType("service.ProductQuery")).
		Return([]entity.Product{{ID: "41"}}, nil)
	fx.cache.EXPECT().
		Set(ctx, "perfumeria:products:key", mock.AnythingOfType("string"), time.Minute).
		Return(nil)

	products, err := fx.service.Products(ctx, service.ProductQuery{})
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestCatalogService_Products_GatewayError(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.EXPECT().
		GenerateKey("products", mock.AnythingOfType("string")).
		Return("perfumeria:products:key")
	fx.cache.EXPECT().
		Get(ctx, "perfumeria:products:key").
		Return("", nil)
	fx.gateway.EXPECT().
		Products(ctx, mock.AnythingOfType("service.ProductQuery")).
		Return(nil, errors.New("upstream 502"))

	products, err := fx.service.Products(ctx, service.ProductQuery{})
	assert.Error(t, err)
	assert.Nil(t, products)
	assert.Contains(t, err.Error(), "failed to list products")
}

func TestCatalogService_ProductDetail_EmptyID(t *testing.T) {
	fx := createTestCatalogService(t)

	product, err := fx.service.ProductDetail(context.Background(), "")
	assert.Nil(t, product)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestCatalogService_ProductDetail_CorruptCacheEntryIsMiss(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.cache.EXPECT().
		GenerateKey("product", "41").
		Return("perfumeria:product:41")
	fx.cache.EXPECT().
		Get(ctx, "perfumeria:product:41").
		Return("{not json", nil)
	fx.gateway.EXPECT().
		ProductDetail(ctx, "41").
		Return(&entity.Product{ID: "41", Name: "Agua de rosas"}, nil)
	fx.cache.EXPECT().
		Set(ctx, "perfumeria:product:41", mock.AnythingOfType("string"), time.Minute).
		Return(nil)

	product, err := fx.service.ProductDetail(ctx, "41")
	require.NoError(t, err)
	assert.Equal(t, "Agua de rosas", product.Name)
}

func TestCatalogService_Categories_NilCacheGoesStraightToGateway(t *testing.T) {
	gateway := mockSvc.NewMockStoreGateway(t)
	svc := NewCatalogService(gateway, nil, 0, slog.Default())
	ctx := context.Background()

	gateway.EXPECT().
		Categories(ctx).
		Return([]entity.Category{{ID: "7", Name: "Florales"}}, nil)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Florales", categories[0].Name)
}

func TestCatalogService_SiteView_AssemblesBranding(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	site := &entity.PublicSite{
		OK: true,
		Site: &entity.SiteSettings{
			Title:    "Perfumeria Angels",
			Logo:     "https://cdn.example.com/logo.png",
			WhatsApp: "+52 1 55 1234 5678",
			Carousel: []string{"a.jpg", "", "b.jpg"},
		},
	}
	raw, err := json.Marshal(site)
	require.NoError(t, err)

	fx.cache.EXPECT().
		GenerateKey("site", "current").
		Return("perfumeria:site:current")
	fx.cache.EXPECT().
		Get(ctx, "perfumeria:site:current").
		Return(string(raw), nil)

	view, err := fx.service.SiteView(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Perfumeria Angels", view.StoreName)
	assert.Equal(t, "https://cdn.example.com/logo.png", view.Logo)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, view.Carousel)
	assert.True(t, view.HasOrders)
	assert.False(t, view.Expired)
}

func TestCatalogService_SiteView_NoNumberDisablesOrders(t *testing.T) {
	gateway := mockSvc.NewMockStoreGateway(t)
	svc := NewCatalogService(gateway, nil, 0, slog.Default())
	ctx := context.Background()

	gateway.EXPECT().
		Site(ctx).
		Return(&entity.PublicSite{OK: true}, nil)

	view, err := svc.SiteView(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mi tienda", view.StoreName)
	assert.False(t, view.HasOrders)
}

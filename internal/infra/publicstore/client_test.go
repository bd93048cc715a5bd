package publicstore

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"perfumeria/config"
	domainerrors "perfumeria/internal/domain/errors"
	"perfumeria/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) service.StoreGateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.StoreConfig{
		BaseURL: server.URL + "/",
		ID:      "244",
		Slug:    "perfumeria-angels",
		Timeout: 2 * time.Second,
	}, slog.Default())
}

func TestClient_Products(t *testing.T) {
	var gotPath, gotQuery string
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[
			{"id":41,"name":"Agua de rosas","price":"250.00","stock":3},
			{"id":"42","name":"Oud intenso","price":480}
		]}`))
	}))

	products, err := gateway.Products(context.Background(), service.ProductQuery{
		Search:   "rosa",
		Category: "7",
		Page:     2,
		PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, "/public/stores/244/products", gotPath)
	assert.Equal(t, "category=7&page=2&per_page=20&q=rosa", gotQuery)

	require.Len(t, products, 2)
	assert.Equal(t, "41", string(products[0].ID))
	assert.InDelta(t, 250.0, float64(products[0].Price), 0.001)
	require.NotNil(t, products[0].Stock)
	assert.Equal(t, 3, *products[0].Stock)
	assert.Equal(t, "42", string(products[1].ID))
}

func TestClient_Products_NullList(t *testing.T) {
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"products":null}`))
	}))

	products, err := gateway.Products(context.Background(), service.ProductQuery{})
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_ProductDetail_Wrapped(t *testing.T) {
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/stores/244/products/41", r.URL.Path)
		w.Write([]byte(`{"product":{"id":41,"name":"Agua de rosas","price":250}}`))
	}))

	product, err := gateway.ProductDetail(context.Background(), "41")
	require.NoError(t, err)
	assert.Equal(t, "Agua de rosas", product.Name)
}

func TestClient_ProductDetail_Bare(t *testing.T) {
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":41,"name":"Agua de rosas","price":250}`))
	}))

	product, err := gateway.ProductDetail(context.Background(), "41")
	require.NoError(t, err)
	assert.Equal(t, "41", string(product.ID))
}

func TestClient_ProductDetail_NotFound(t *testing.T) {
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	product, err := gateway.ProductDetail(context.Background(), "999")
	assert.Nil(t, product)
	assert.Equal(t, domainerrors.ErrProductNotFound, err)
}

func TestClient_Categories(t *testing.T) {
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/stores/244/categories", r.URL.Path)
		w.Write([]byte(`{"categories":[{"id":7,"name":"Florales"}]}`))
	}))

	categories, err := gateway.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Florales", categories[0].Name)
}

func TestClient_Site(t *testing.T) {
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/tienda/perfumeria-angels/sitio", r.URL.Path)
		w.Write([]byte(`{"ok":true,"sitio":{"titulo":"Perfumeria Angels","whatsapp":"+52 55 1234 5678"}}`))
	}))

	site, err := gateway.Site(context.Background())
	require.NoError(t, err)
	assert.True(t, site.OK)
	assert.Equal(t, "Perfumeria Angels", site.StoreName())
	assert.Equal(t, "525512345678", site.WhatsAppNumber())
}

func TestClient_Site_UpstreamError(t *testing.T) {
	gateway := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))

	site, err := gateway.Site(context.Background())
	assert.Nil(t, site)
	assert.Equal(t, domainerrors.ErrStoreUnavailable, err)
}

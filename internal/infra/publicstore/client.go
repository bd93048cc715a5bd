// Package publicstore is the HTTP client of the remote public-store API the
// catalog is read from.
package publicstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"perfumeria/config"
	"perfumeria/internal/domain/entity"
	domainerrors "perfumeria/internal/domain/errors"
	"perfumeria/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 10 * time.Second

// client implements service.StoreGateway over the public REST endpoints.
type client struct {
	baseURL    string
	storeID    string
	storeSlug  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a store gateway for the configured store.
func NewClient(cfg *config.StoreConfig, logger *slog.Logger) service.StoreGateway {
	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &client{
		baseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		storeID:   cfg.ID,
		storeSlug: cfg.Slug,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// productsResponse mirrors the upstream list payload. The wrapper object is
// part of the API contract; the list may still arrive as null.
type productsResponse struct {
	Products []entity.Product `json:"products"`
}

type productResponse struct {
	Product *entity.Product `json:"product"`
}

type categoriesResponse struct {
	Categories []entity.Category `json:"categories"`
}

// Products lists catalog products, passing the filters through as query
// parameters.
func (c *client) Products(ctx context.Context, query service.ProductQuery) ([]entity.Product, error) {
	params := url.Values{}
	if query.Search != "" {
		params.Set("q", query.Search)
	}
	if query.Category != "" {
		params.Set("category", query.Category)
	}
	if query.Page > 0 {
		params.Set("page", strconv.Itoa(query.Page))
	}
	if query.PageSize > 0 {
		params.Set("per_page", strconv.Itoa(query.PageSize))
	}

	endpoint := fmt.Sprintf("%s/public/stores/%s/products", c.baseURL, c.storeID)
	if encoded := params.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var payload productsResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return payload.Products, nil
}

// ProductDetail retrieves one product. Upstream wraps it either as
// {"product": ...} or returns the object directly; both are accepted.
func (c *client) ProductDetail(ctx context.Context, id string) (*entity.Product, error) {
	endpoint := fmt.Sprintf("%s/public/stores/%s/products/%s", c.baseURL, c.storeID, url.PathEscape(id))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var wrapped productResponse
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Product != nil {
		return wrapped.Product, nil
	}

	var product entity.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, errors.Wrap(err, "failed to decode product detail")
	}
	if product.Key() == "" {
		return nil, domainerrors.ErrProductNotFound
	}

	return &product, nil
}

// Categories lists the store's categories.
func (c *client) Categories(ctx context.Context) ([]entity.Category, error) {
	endpoint := fmt.Sprintf("%s/public/stores/%s/categories", c.baseURL, c.storeID)

	var payload categoriesResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}

	return payload.Categories, nil
}

// Site retrieves the public site configuration for the store slug.
func (c *client) Site(ctx context.Context) (*entity.PublicSite, error) {
	endpoint := fmt.Sprintf("%s/public/tienda/%s/sitio", c.baseURL, url.PathEscape(c.storeSlug))

	var site entity.PublicSite
	if err := c.getJSON(ctx, endpoint, &site); err != nil {
		return nil, err
	}

	return &site, nil
}

func (c *client) getJSON(ctx context.Context, endpoint string, out any) error {
	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", endpoint)
	}

	return nil
}

func (c *client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", endpoint)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domainerrors.ErrProductNotFound
	case resp.StatusCode >= http.StatusBadRequest:
		c.logger.Warn("public store API returned error status",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
		)

		return nil, domainerrors.ErrStoreUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return body, nil
}

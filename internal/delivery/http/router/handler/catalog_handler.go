package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"perfumeria/internal/delivery/http/response"
	"perfumeria/internal/domain/service"
	"perfumeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// Products lists catalog products. Filters arrive as query parameters and are
// passed through to the upstream API.
func (h *CatalogHandler) Products(c echo.Context) error {
	query := service.ProductQuery{
		Search:   c.QueryParam("q"),
		Category: c.QueryParam("category"),
		Page:     intQueryParam(c, "page"),
		PageSize: intQueryParam(c, "per_page"),
	}

	products, err := h.uc.Products(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ProductDetail returns one product by catalog id.
func (h *CatalogHandler) ProductDetail(c echo.Context) error {
	product, err := h.uc.ProductDetail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Categories lists the store's categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, categories, "")
}

// Site returns the assembled branding view of the storefront.
func (h *CatalogHandler) Site(c echo.Context) error {
	site, err := h.uc.SiteView(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, site, "")
}

func intQueryParam(c echo.Context, name string) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}

	return value
}

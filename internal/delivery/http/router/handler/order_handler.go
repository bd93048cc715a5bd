package handler

import (
	"log/slog"
	"net/http"

	"perfumeria/internal/delivery/http/response"
	"perfumeria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order hand-off handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// Preview composes the WhatsApp order message and deep link without leaving
// any server-side order record.
func (h *OrderHandler) Preview(c echo.Context) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	var customer usecase.Customer
	if err := c.Bind(&customer); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Los datos del cliente no son válidos")
	}
	if err := c.Validate(&customer); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Los datos del cliente no son válidos")
	}

	preview, err := h.uc.Preview(c.Request().Context(), cartID, customer)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, preview, "")
}

// QR renders the deep link as a PNG image, for scanning the chat hand-off
// from a phone.
func (h *OrderHandler) QR(c echo.Context) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	var customer usecase.Customer
	if err := c.Bind(&customer); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Los datos del cliente no son válidos")
	}
	if err := c.Validate(&customer); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Los datos del cliente no son válidos")
	}

	png, err := h.uc.QR(c.Request().Context(), cartID, customer)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

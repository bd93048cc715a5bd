// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"perfumeria/internal/delivery/http/response"
	"perfumeria/internal/domain/entity"
	"perfumeria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddItemInput carries the product snapshot and quantity of an add request.
type AddItemInput struct {
	Product *entity.Product `json:"product" validate:"required"`
	Qty     int             `json:"qty" validate:"min=0"`
}

// QuantityInput carries the new absolute quantity of a line. Zero removes
// the line.
type QuantityInput struct {
	Qty int `json:"qty" validate:"min=0"`
}

// StepInput carries the optional step of an increment/decrement request.
type StepInput struct {
	Step int `json:"step" validate:"min=0"`
}

// Create handles new cart allocation.
func (h *CartHandler) Create(c echo.Context) error {
	cart, err := h.uc.Create(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, cart, "Carrito creado")
}

// Get returns the cart with its derived totals.
func (h *CartHandler) Get(c echo.Context) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	cart, err := h.uc.Get(c.Request().Context(), cartID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem merges the posted product into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	var input AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "El producto enviado no es válido")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "El producto es requerido")
	}

	cart, err := h.uc.AddItem(c.Request().Context(), cartID, input.Product, input.Qty)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Producto agregado")
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	var input QuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "La cantidad enviada no es válida")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "La cantidad enviada no es válida")
	}

	cart, err := h.uc.SetQuantity(c.Request().Context(), cartID, c.Param("itemID"), input.Qty)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// Increment raises a line's quantity by the posted step (default 1).
func (h *CartHandler) Increment(c echo.Context) error {
	return h.step(c, func(ctx context.Context, cartID uuid.UUID, itemID string, step int) (*usecase.CartView, error) {
		return h.uc.Increment(ctx, cartID, itemID, step)
	})
}

// Decrement lowers a line's quantity by the posted step (default 1).
func (h *CartHandler) Decrement(c echo.Context) error {
	return h.step(c, func(ctx context.Context, cartID uuid.UUID, itemID string, step int) (*usecase.CartView, error) {
		return h.uc.Decrement(ctx, cartID, itemID, step)
	})
}

// RemoveItem deletes a line unconditionally.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), cartID, c.Param("itemID"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Producto eliminado")
}

// Clear empties the whole cart.
func (h *CartHandler) Clear(c echo.Context) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	cart, err := h.uc.Clear(c.Request().Context(), cartID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Carrito vaciado")
}

func (h *CartHandler) step(c echo.Context, apply func(ctx context.Context, cartID uuid.UUID, itemID string, step int) (*usecase.CartView, error)) error {
	cartID, err := parseCartID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_CART_ID", "El identificador del carrito no es válido")
	}

	var input StepInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "El paso enviado no es válido")
	}
	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "El paso enviado no es válido")
	}
	if input.Step <= 0 {
		input.Step = 1
	}

	cart, err := apply(c.Request().Context(), cartID, c.Param("itemID"), input.Step)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

func parseCartID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"perfumeria/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler    *handler.CartHandler
	CatalogHandler *handler.CatalogHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler    *handler.CartHandler
	catalogHandler *handler.CatalogHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:    params.CartHandler,
		catalogHandler: params.CatalogHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Read-only catalog mirror of the upstream store
	catalogGroup := api.Group("/catalog")
	{
		catalogGroup.GET("/products", r.catalogHandler.Products)
		catalogGroup.GET("/products/:id", r.catalogHandler.ProductDetail)
		catalogGroup.GET("/categories", r.catalogHandler.Categories)
	}

	// Site branding
	api.GET("/site", r.catalogHandler.Site)

	// Cart routes
	cartGroup := api.Group("/carts")
	{
		cartGroup.POST("", r.cartHandler.Create)
		cartGroup.GET("/:id", r.cartHandler.Get)
		cartGroup.DELETE("/:id", r.cartHandler.Clear)

		cartGroup.POST("/:id/items", r.cartHandler.AddItem)
		cartGroup.PUT("/:id/items/:itemID", r.cartHandler.SetQuantity)
		cartGroup.POST("/:id/items/:itemID/increment", r.cartHandler.Increment)
		cartGroup.POST("/:id/items/:itemID/decrement", r.cartHandler.Decrement)
		cartGroup.DELETE("/:id/items/:itemID", r.cartHandler.RemoveItem)

		// Order hand-off: compose the WhatsApp message, never store an order
		cartGroup.POST("/:id/order/preview", r.orderHandler.Preview)
		cartGroup.POST("/:id/order/qr", r.orderHandler.QR)
	}
}

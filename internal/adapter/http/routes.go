// Package http provides the HTTP handler layer for the flight deal API.
package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all flight deal API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	skiplagged := api.Group("/skiplagged")
	skiplagged.GET("/targets", h.SkiplaggedTargets)

	routes := api.Group("/routes")
	routes.POST("", h.AddRoutes)
	routes.GET("", h.ListRoutes)
	routes.GET("/stats", h.RouteStats)
	routes.DELETE("", h.ClearRoutes)

	workflows := api.Group("/workflows")
	workflows.POST("/n8n", h.ExportWorkflow)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// This allows for endpoint-specific middleware configuration.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check endpoint (no version prefix, no middleware)
	e.GET("/health", h.Health)

	api := e.Group("/api/v1", middleware...)

	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)

	skiplagged := api.Group("/skiplagged")
	skiplagged.GET("/targets", h.SkiplaggedTargets)

	routes := api.Group("/routes")
	routes.POST("", h.AddRoutes)
	routes.GET("", h.ListRoutes)
	routes.GET("/stats", h.RouteStats)
	routes.DELETE("", h.ClearRoutes)

	workflows := api.Group("/workflows")
	workflows.POST("/n8n", h.ExportWorkflow)
}

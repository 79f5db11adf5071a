// Package router registers the HTTP routes of the occupancy API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-occupancy/internal/handler"
)

// RegisterRoutes registers routes that need no authentication or rate limit.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth exposes operator login under /v1/auth. limiter guards it
// against password guessing.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1/auth", limiter)
	g.POST("/login", a.Login)
}

// RegisterRuns exposes batch runs. Responses are cached by request body.
func RegisterRuns(e *echo.Echo, h *handler.RunHandler, limiter, cache echo.MiddlewareFunc) {
	e.POST("/v1/runs", h.Create, limiter, cache)
}

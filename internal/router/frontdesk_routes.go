package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-occupancy/internal/handler"
	"github.com/iliyamo/hotel-occupancy/internal/middleware"
)

// RegisterFrontDesk registers the live registry endpoints under /v1. All
// routes require a valid JWT carrying the FRONT_DESK role. The limiter runs
// after authentication so buckets can be keyed by operator.
func RegisterFrontDesk(e *echo.Echo, h *handler.FrontDeskHandler, jwtSecret string, limiter echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(handler.RoleFrontDesk),
		limiter,
	)
	g.GET("/rooms", h.ListRooms)
	g.GET("/rooms/:number", h.GetRoom)
	g.POST("/events", h.PostEvent)
}

// Package router defines how HTTP routes are registered for the API. Each
// concern gets its own registration function so main can wire exactly the
// handlers and middleware it constructed.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/netandpro/booking-api/internal/handler"
	"github.com/netandpro/booking-api/internal/middleware"
)

// RegisterRoutes registers routes that need no handler state. Currently it
// exposes only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api/health", handler.Health)
}

// RegisterEvents wires the event endpoints. The booking submission and the
// calendar feed are public; everything else sits behind the admin JWT.
// cache wraps the calendar feed, which is by far the hottest read.
func RegisterEvents(e *echo.Echo, h *handler.EventHandler, jwtSecret string, cache echo.MiddlewareFunc) {
	e.POST("/api/events", h.Create)
	e.GET("/api/events/public", h.GetPublic, cache)

	admin := e.Group("/api/events")
	admin.Use(middleware.JWTAuth(jwtSecret))
	admin.GET("", h.GetAll)
	admin.GET("/:id", h.GetByID)
	admin.PUT("/:id", h.Update)
	admin.PATCH("/:id/status", h.UpdateStatus)
	admin.DELETE("/:id", h.Delete)
}

// RegisterLocations wires the read-only venue hierarchy, all public and
// cached.
func RegisterLocations(e *echo.Echo, h *handler.LocationHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/api/locations", cache)
	g.GET("", h.GetAll)
	g.GET("/parents", h.GetParents)
	g.GET("/children/:parentId", h.GetChildren)
}

// RegisterTestimonials wires the public quote board. The cleanup endpoint
// stays open so an external cron can hit it; the sweep is idempotent.
func RegisterTestimonials(e *echo.Echo, h *handler.TestimonialHandler, cache echo.MiddlewareFunc) {
	e.POST("/api/testimonials", h.Create)
	e.GET("/api/testimonials/recent", h.GetRecent, cache)
	e.DELETE("/api/testimonials/cleanup", h.Cleanup)
}

// RegisterStats wires the admin dashboard aggregates behind the JWT.
func RegisterStats(e *echo.Echo, h *handler.StatsHandler, jwtSecret string) {
	e.GET("/api/stats", h.GetStats, middleware.JWTAuth(jwtSecret))
}

// RegisterAuth wires the admin session endpoints. Login carries its own
// rate limiter; the other two require an existing session.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, loginLimiter echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	g.POST("/login", a.Login, loginLimiter)
	g.POST("/change-password", a.ChangePassword, middleware.JWTAuth(jwtSecret))
	g.GET("/verify", a.Verify, middleware.JWTAuth(jwtSecret))
}

// RegisterContact wires the contact form with its own rate limiter.
func RegisterContact(e *echo.Echo, h *handler.ContactHandler, limiter echo.MiddlewareFunc) {
	e.POST("/api/contact", h.Create, limiter)
}

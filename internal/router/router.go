package router // package router wires HTTP routes to their handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/peirisgrand/resort-api/internal/handler"
	"github.com/peirisgrand/resort-api/internal/middleware"
)

// RegisterRoutes registers the routes that touch no store: the hello
// greeting and the health check under /api.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/api", handler.Hello)
	e.GET("/api/health", handler.Health)
}

// RegisterAuth registers the unauthenticated signup and login endpoints
// under /api/auth.  Extra middleware (the rate limiter) applies to both.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api/auth", mw...)
	g.POST("/signup", a.Signup)
	g.POST("/login", a.Login)
}

// RegisterPublic registers the unauthenticated catalog reads.  Extra
// middleware (rate limiter, then response cache) wraps them so repeat
// listings skip the database; pass nothing to serve uncached.
func RegisterPublic(e *echo.Echo, rooms *handler.RoomHandler, about *handler.AboutHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/api/rooms", rooms.List, mw...)
	e.GET("/api/rooms/:id", rooms.Get, mw...)
	e.GET("/api/about", about.List, mw...)
}

// RegisterProtected registers every route that requires a bearer token:
// bookings, profile and payments.  JWTAuth validates the token and stores
// the subject; owner-only checks happen inside the handlers.  Extra
// middleware runs after JWTAuth, so user-keyed rate-limit strategies see
// the token subject rather than "anon".
func RegisterProtected(e *echo.Echo, jwtSecret string, bookings *handler.BookingHandler, profile *handler.ProfileHandler, payments *handler.PaymentHandler, mw ...echo.MiddlewareFunc) {
	g := e.Group("/api")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.Use(mw...)
	g.POST("/bookings", bookings.Create)
	g.GET("/bookings/user/:id", bookings.ListByUser)
	g.GET("/profile/:id", profile.Get)
	g.PUT("/profile/:id", profile.Update)
	g.POST("/payments", payments.Process)
}

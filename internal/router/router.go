package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/icinema-catalog/internal/handler"    // handlers for browse, auth and admin endpoints
	"github.com/iliyamo/icinema-catalog/internal/middleware" // JWT authentication and role enforcement
)

// RegisterRoutes registers routes that do not touch the catalog.  Currently
// it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Load balancers and monitoring systems probe this endpoint.
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the session endpoints.  limit guards the
// login/signup calls (token bucket); jwtSecret verifies tokens on /v1/me.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	g.POST("/login", a.Login, limit)
	g.POST("/signup", a.Signup, limit)
	g.POST("/logout", a.Logout)

	e.GET("/v1/session", a.Session)
	e.GET("/v1/notifications", a.Notifications)
	e.GET("/v1/me", a.Me, middleware.JWTAuth(jwtSecret))
}

// RegisterPublic registers the unauthenticated browse endpoints.  cache is
// applied to every route; it keys entries by catalog revision.
func RegisterPublic(e *echo.Echo, p *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	g.GET("/movies", p.SearchMovies, cache)
	// static segments win over :id in echo's router
	g.GET("/movies/featured", p.Featured, cache)
	g.GET("/movies/latest", p.Latest, cache)
	g.GET("/movies/:id", p.GetMovie, cache)
	g.GET("/genres", p.ListGenres, cache)
	g.GET("/stats", p.Stats, cache)
	g.GET("/years", p.Years)
}

package router // router defines how HTTP routes are registered for the API

import (
	"github.com/iliyamo/icinema-catalog/internal/handler"    // admin handlers
	"github.com/iliyamo/icinema-catalog/internal/middleware" // JWT + role middlewares
	"github.com/labstack/echo/v4"
)

// RegisterAdmin registers catalog mutations under /v1.  Every route requires
// a valid JWT carrying the admin role.  Middlewares are attached per route so
// the public GETs sharing these paths stay open.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
	g := e.Group("/v1")
	guard := []echo.MiddlewareFunc{
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("admin"),
	}

	// ---- Movies ----
	g.POST("/movies", a.CreateMovie, guard...)
	g.PUT("/movies/:id", a.UpdateMovie, guard...)
	g.PATCH("/movies/:id", a.UpdateMovie, guard...) // same partial-update semantics as PUT
	g.DELETE("/movies/:id", a.DeleteMovie, guard...)

	// ---- Genres ----
	g.POST("/genres", a.CreateGenre, guard...)
	g.DELETE("/genres/:id", a.DeleteGenre, guard...)
}

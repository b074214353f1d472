package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/icinema-catalog/internal/catalog"
    "github.com/iliyamo/icinema-catalog/internal/model"
)

// AdminHandler exposes catalog mutations.  Routes are expected to sit
// behind JWTAuth and RequireRole("admin").
type AdminHandler struct {
    Store *catalog.Store
}

func NewAdminHandler(store *catalog.Store) *AdminHandler {
    if store == nil {
        panic("nil store passed to NewAdminHandler")
    }
    return &AdminHandler{Store: store}
}

// CreateMovie adds a movie.  New listings are always published active.
func (h *AdminHandler) CreateMovie(c echo.Context) error {
    var in model.MovieInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    in.Title = strings.TrimSpace(in.Title)
    if in.Title == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
    }
    in.IsActive = true

    m := h.Store.AddMovie(c.Request().Context(), in)
    return c.JSON(http.StatusCreated, m)
}

// UpdateMovie applies a partial update.  The store ignores unknown ids, so
// existence is checked here to give clients a 404.
func (h *AdminHandler) UpdateMovie(c echo.Context) error {
    id := c.Param("id")
    if _, ok := h.Store.Movie(id); !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
    }
    var patch model.MoviePatch
    if err := c.Bind(&patch); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title cannot be empty"})
    }

    h.Store.UpdateMovie(c.Request().Context(), id, patch)
    m, ok := h.Store.Movie(id)
    if !ok {
        // deleted concurrently
        return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
    }
    return c.JSON(http.StatusOK, m)
}

// DeleteMovie is idempotent: deleting an unknown id also answers 204.
func (h *AdminHandler) DeleteMovie(c echo.Context) error {
    h.Store.DeleteMovie(c.Request().Context(), c.Param("id"))
    return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) CreateGenre(c echo.Context) error {
    var in model.GenreInput
    if err := c.Bind(&in); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    in.Name = strings.TrimSpace(in.Name)
    if in.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
    }
    g := h.Store.AddGenre(c.Request().Context(), in)
    return c.JSON(http.StatusCreated, g)
}

func (h *AdminHandler) DeleteGenre(c echo.Context) error {
    h.Store.DeleteGenre(c.Request().Context(), c.Param("id"))
    return c.NoContent(http.StatusNoContent)
}

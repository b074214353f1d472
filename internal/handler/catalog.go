// Package handler exposes the catalog over HTTP.  This file holds the
// unauthenticated browse endpoints: search, featured and latest listings,
// single movie lookup, genres, catalog stats and the year options of the
// search form.

package handler

import (
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/icinema-catalog/internal/catalog"
    "github.com/iliyamo/icinema-catalog/internal/model"
    "github.com/iliyamo/icinema-catalog/internal/query"
)

const (
    defaultFeatured = 6
    defaultLatest   = 4
    yearOptions     = 10
)

// CatalogHandler serves read-only views of the store.
type CatalogHandler struct {
    Store *catalog.Store
    Now   func() time.Time // clock for the year list; time.Now when nil
}

func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
    if store == nil {
        panic("nil store passed to NewCatalogHandler")
    }
    return &CatalogHandler{Store: store, Now: time.Now}
}

// SearchMovies answers GET /v1/movies.  Without q and filters it lists the
// whole catalog, newest first.  q is matched verbatim, surrounding blanks
// included.
func (h *CatalogHandler) SearchMovies(c echo.Context) error {
    q := c.QueryParam("q")

    var f query.Filter
    if raw := c.QueryParam("genres"); raw != "" {
        f.Genres = model.SplitList(raw)
    }
    if raw := strings.TrimSpace(c.QueryParam("min_rating")); raw != "" {
        v, err := strconv.ParseFloat(raw, 64)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_rating"})
        }
        f.MinRating = v
    }
    if raw := strings.TrimSpace(c.QueryParam("year")); raw != "" {
        v, err := strconv.Atoi(raw)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid year"})
        }
        f.Year = &v
    }

    page, _ := strconv.Atoi(c.QueryParam("page"))
    if page < 1 { page = 1 }
    ps, _ := strconv.Atoi(c.QueryParam("page_size"))
    if ps < 1 { ps = 20 }
    if ps > 100 { ps = 100 }

    all := h.Store.Search(q, f)
    return c.JSON(http.StatusOK, echo.Map{
        "data":      pageOf(all, page, ps),
        "total":     len(all),
        "page":      page,
        "page_size": ps,
    })
}

// Featured answers GET /v1/movies/featured.
func (h *CatalogHandler) Featured(c echo.Context) error {
    n, err := limitParam(c, defaultFeatured)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": h.Store.Featured(n)})
}

// Latest answers GET /v1/movies/latest.
func (h *CatalogHandler) Latest(c echo.Context) error {
    n, err := limitParam(c, defaultLatest)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid limit"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": h.Store.Latest(n)})
}

func (h *CatalogHandler) GetMovie(c echo.Context) error {
    m, ok := h.Store.Movie(c.Param("id"))
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
    }
    return c.JSON(http.StatusOK, m)
}

func (h *CatalogHandler) ListGenres(c echo.Context) error {
    return c.JSON(http.StatusOK, echo.Map{"items": h.Store.Genres()})
}

// Stats answers GET /v1/stats with counts and the average rating.
func (h *CatalogHandler) Stats(c echo.Context) error {
    return c.JSON(http.StatusOK, h.Store.Stats())
}

// Years lists the current year and the nine before it, newest first.
func (h *CatalogHandler) Years(c echo.Context) error {
    now := time.Now
    if h.Now != nil {
        now = h.Now
    }
    cur := now().Year()
    out := make([]int, 0, yearOptions)
    for i := 0; i < yearOptions; i++ {
        out = append(out, cur-i)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

func pageOf(ms []model.Movie, page, size int) []model.Movie {
    start := (page - 1) * size
    if start >= len(ms) {
        return []model.Movie{}
    }
    end := start + size
    if end > len(ms) {
        end = len(ms)
    }
    return ms[start:end]
}

// limitParam reads ?limit=, falling back to def when absent.
func limitParam(c echo.Context, def int) (int, error) {
    raw := strings.TrimSpace(c.QueryParam("limit"))
    if raw == "" {
        return def, nil
    }
    return strconv.Atoi(raw)
}

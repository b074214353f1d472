package handler // declare the package name; contains HTTP handlers

import (
    "net/http"

    "github.com/labstack/echo/v4"
)

// Health is the liveness probe.  It does not consult the store: the catalog
// lives in memory, so a running process can always serve it.
func Health(c echo.Context) error {
    return c.String(http.StatusOK, "ok")
}

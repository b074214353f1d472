// Package repository defines error types that are reused by the catalog
// loader.  Callers compare with errors.Is.
package repository

import "errors"

// ErrCatalogEmpty is returned by CatalogRepo.Load when the movie table has
// no rows.  The server then starts from the built-in seed instead.
var ErrCatalogEmpty = errors.New("catalog tables are empty")

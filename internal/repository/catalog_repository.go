// Package repository contains data access logic separated from HTTP handlers.
// This file loads the initial movie and genre catalog from SQL tables.  The
// database is only read once at startup; the in-memory catalog store is the
// authority afterwards.
package repository

import (
	"context"      // context carries deadlines for DB operations
	"database/sql" // sql provides generic database operations and drivers
	"encoding/json"
	"fmt"

	"github.com/iliyamo/icinema-catalog/internal/model"
)

// CatalogRepo reads the catalog tables.  List columns (genre, cast,
// show_times) are stored as JSON arrays of strings.
type CatalogRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewCatalogRepo constructs a CatalogRepo with the provided DB handle.
func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

// ListMovies returns every movie, newest row first (matching the store's
// "new items are prepended" order).
func (r *CatalogRepo) ListMovies(ctx context.Context) ([]model.Movie, error) {
	const q = `SELECT id, title, description, genre, rating, duration, release_date,
	                  poster, trailer, director, cast_members, language, is_active, show_times
	           FROM movies ORDER BY sort_order DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	out := []model.Movie{}
	for rows.Next() {
		var (
			m                      model.Movie
			trailer                sql.NullString
			genre, cast, showTimes []byte
		)
		if err := rows.Scan(&m.ID, &m.Title, &m.Description, &genre, &m.Rating, &m.Duration, &m.ReleaseDate,
			&m.Poster, &trailer, &m.Director, &cast, &m.Language, &m.IsActive, &showTimes); err != nil {
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		m.Trailer = trailer.String
		if m.Genre, err = decodeList(genre); err != nil {
			return nil, fmt.Errorf("movie %s genre: %w", m.ID, err)
		}
		if m.Cast, err = decodeList(cast); err != nil {
			return nil, fmt.Errorf("movie %s cast: %w", m.ID, err)
		}
		if m.ShowTimes, err = decodeList(showTimes); err != nil {
			return nil, fmt.Errorf("movie %s show_times: %w", m.ID, err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListGenres returns every genre, newest row first.
func (r *CatalogRepo) ListGenres(ctx context.Context) ([]model.Genre, error) {
	const q = "SELECT id, name, description FROM genres ORDER BY sort_order DESC, id DESC"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list genres: %w", err)
	}
	defer rows.Close()

	out := []model.Genre{}
	for rows.Next() {
		var (
			g    model.Genre
			desc sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Name, &desc); err != nil {
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		g.Description = desc.String
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load reads both tables.  An empty movie table yields ErrCatalogEmpty so
// the caller can fall back to the built-in seed.
func (r *CatalogRepo) Load(ctx context.Context) ([]model.Movie, []model.Genre, error) {
	movies, err := r.ListMovies(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(movies) == 0 {
		return nil, nil, ErrCatalogEmpty
	}
	genres, err := r.ListGenres(ctx)
	if err != nil {
		return nil, nil, err
	}
	return movies, genres, nil
}

// decodeList turns a JSON array column into a slice; NULL or empty becomes
// an empty slice.
func decodeList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	out := []string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

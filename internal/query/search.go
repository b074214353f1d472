// Package query implements read-only search and ordering over a catalog
// snapshot.  Nothing here mutates its input.
package query

import (
	"strings"

	"github.com/iliyamo/icinema-catalog/internal/model"
)

// Filter narrows a search.  Every zero-valued field is a vacuous condition:
// no genres, MinRating <= 0 and a nil (or zero) Year all match everything.
type Filter struct {
	Genres    []string
	MinRating float64
	Year      *int
}

// Active reports whether any filter condition is set.
func (f Filter) Active() bool {
	return len(f.Genres) > 0 || f.MinRating > 0 || (f.Year != nil && *f.Year != 0)
}

// Search returns the movies matching q and f, in input order.  Conditions
// are AND-combined; q is a case-insensitive substring of the title,
// description, director or any cast member; a movie passes the genre
// condition when it carries at least one of f.Genres.
func Search(movies []model.Movie, q string, f Filter) []model.Movie {
	needle := strings.ToLower(q)
	out := make([]model.Movie, 0, len(movies))
	for _, m := range movies {
		if !matchesText(m, needle) ||
			!matchesGenres(m, f.Genres) ||
			!matchesRating(m, f.MinRating) ||
			!matchesYear(m, f.Year) {
			continue
		}
		out = append(out, m.Clone())
	}
	return out
}

func matchesText(m model.Movie, needle string) bool {
	if needle == "" {
		return true
	}
	if contains(m.Title, needle) || contains(m.Description, needle) || contains(m.Director, needle) {
		return true
	}
	for _, actor := range m.Cast {
		if contains(actor, needle) {
			return true
		}
	}
	return false
}

func contains(field, needle string) bool {
	return strings.Contains(strings.ToLower(field), needle)
}

func matchesGenres(m model.Movie, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, g := range wanted {
		if m.HasGenre(g) {
			return true
		}
	}
	return false
}

func matchesRating(m model.Movie, min float64) bool {
	return min <= 0 || m.Rating >= min
}

// An unparseable release date never satisfies a year condition.
func matchesYear(m model.Movie, year *int) bool {
	if year == nil || *year == 0 {
		return true
	}
	d, ok := m.Released()
	return ok && d.Year() == *year
}

package query

import (
	"cmp"
	"slices"

	"github.com/iliyamo/icinema-catalog/internal/model"
)

// Featured returns the n highest rated movies, best first.  Ties keep their
// input order.
func Featured(movies []model.Movie, n int) []model.Movie {
	sorted := cloneAll(movies)
	slices.SortStableFunc(sorted, func(a, b model.Movie) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return head(sorted, n)
}

// Latest returns the n most recently released movies, newest first.  Movies
// whose release date cannot be parsed sort after all others.  Ties keep
// their input order.
func Latest(movies []model.Movie, n int) []model.Movie {
	sorted := cloneAll(movies)
	slices.SortStableFunc(sorted, func(a, b model.Movie) int {
		da, okA := a.Released()
		db, okB := b.Released()
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return 1
		case !okB:
			return -1
		}
		return db.Compare(da)
	})
	return head(sorted, n)
}

func cloneAll(movies []model.Movie) []model.Movie {
	out := make([]model.Movie, len(movies))
	for i, m := range movies {
		out[i] = m.Clone()
	}
	return out
}

func head(movies []model.Movie, n int) []model.Movie {
	if n <= 0 {
		return []model.Movie{}
	}
	if n > len(movies) {
		n = len(movies)
	}
	return movies[:n]
}

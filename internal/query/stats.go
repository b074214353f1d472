package query

import "github.com/iliyamo/icinema-catalog/internal/model"

// Stats summarizes a catalog for the home and admin dashboards.
type Stats struct {
	Movies        int     `json:"movies"`
	Genres        int     `json:"genres"`
	Showtimes     int     `json:"showtimes"` // daily screenings across all movies
	AverageRating float64 `json:"average_rating"`
}

// Summarize counts movies, genres and daily showtimes and averages the
// movie ratings.  The average of an empty catalog is 0.
func Summarize(movies []model.Movie, genres []model.Genre) Stats {
	st := Stats{Movies: len(movies), Genres: len(genres)}
	if len(movies) == 0 {
		return st
	}
	var sum float64
	for _, m := range movies {
		st.Showtimes += len(m.ShowTimes)
		sum += m.Rating
	}
	st.AverageRating = sum / float64(len(movies))
	return st
}

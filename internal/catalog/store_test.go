package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/icinema-catalog/internal/model"
	"github.com/iliyamo/icinema-catalog/internal/notify"
	"github.com/iliyamo/icinema-catalog/internal/query"
	"github.com/iliyamo/icinema-catalog/internal/seed"
)

// newTestStore returns a seeded store with a deterministic id generator and
// a recorder capturing notifications.
func newTestStore(t *testing.T) (*Store, *notify.Recorder) {
	t.Helper()
	rec := notify.NewRecorder(0)
	n := 0
	s := New(seed.Movies(), seed.Genres(), Options{
		Notifier: rec,
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	})
	return s, rec
}

func ids(ms []model.Movie) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestAddMoviePrependsAndNotifies(t *testing.T) {
	s, rec := newTestStore(t)
	m := s.AddMovie(context.Background(), model.MovieInput{Title: "Neon Harbor", Genre: []string{"Action"}})

	assert.Equal(t, "id-1", m.ID)
	all := s.Movies()
	require.Len(t, all, 7)
	assert.Equal(t, m, all[0])

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, "Success", last.Title)
	assert.Equal(t, "Movie added successfully!", last.Description)
}

func TestAddMovieIDsAreUnique(t *testing.T) {
	// generator that repeats itself and also collides with seed ids
	seq := []string{"1", "x", "x", "2", "y", "", "z"}
	i := 0
	s := New(seed.Movies(), nil, Options{NewID: func() string {
		id := seq[i%len(seq)]
		i++
		return id
	}})

	seen := map[string]bool{}
	for _, m := range seed.Movies() {
		seen[m.ID] = true
	}
	for n := 0; n < 3; n++ {
		m := s.AddMovie(context.Background(), model.MovieInput{Title: "t"})
		assert.False(t, seen[m.ID], "id %q reused", m.ID)
		seen[m.ID] = true
	}
}

func TestAddMovieWithUUIDs(t *testing.T) {
	s := New(nil, nil, Options{})
	seen := map[string]bool{}
	for n := 0; n < 100; n++ {
		m := s.AddMovie(context.Background(), model.MovieInput{Title: "t"})
		require.False(t, seen[m.ID])
		seen[m.ID] = true
	}
}

func TestUpdateMovieMergesPatch(t *testing.T) {
	s, rec := newTestStore(t)
	before, ok := s.Movie("4")
	require.True(t, ok)

	rating := 9.5
	director := "Denis Villeneuve"
	s.UpdateMovie(context.Background(), "4", model.MoviePatch{Rating: &rating, Director: &director})

	after, ok := s.Movie("4")
	require.True(t, ok)
	want := before
	want.Rating = rating
	want.Director = director
	assert.Equal(t, want, after)
	assert.Equal(t, "Movie updated successfully!", rec.All()[0].Description)
}

func TestUpdateMovieUnknownIsNoop(t *testing.T) {
	s, rec := newTestStore(t)
	before := s.Snapshot()
	rev := s.Revision()

	title := "ghost"
	s.UpdateMovie(context.Background(), "missing", model.MoviePatch{Title: &title})

	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, rev, s.Revision())
	// the message is raised regardless
	assert.Len(t, rec.All(), 1)
}

func TestDeleteMovieKeepsOrder(t *testing.T) {
	s, _ := newTestStore(t)
	s.DeleteMovie(context.Background(), "3")
	assert.Equal(t, []string{"1", "2", "4", "5", "6"}, ids(s.Movies()))

	s.DeleteMovie(context.Background(), "3")
	assert.Len(t, s.Movies(), 5)

	_, ok := s.Movie("3")
	assert.False(t, ok)
}

func TestGenreMutations(t *testing.T) {
	s, rec := newTestStore(t)
	g := s.AddGenre(context.Background(), model.GenreInput{Name: "Documentary", Description: "Real stories"})
	assert.Equal(t, "id-1", g.ID)
	genres := s.Genres()
	require.Len(t, genres, 9)
	assert.Equal(t, g, genres[0])

	s.DeleteGenre(context.Background(), "4")
	names := []string{}
	for _, x := range s.Genres() {
		names = append(names, x.Name)
	}
	assert.NotContains(t, names, "Horror")
	assert.Len(t, names, 8)

	// movies keep the genre name
	got := s.Search("", query.Filter{Genres: []string{"Horror"}})
	assert.Len(t, got, 1)

	s.DeleteGenre(context.Background(), "nope")
	assert.Len(t, s.Genres(), 8)

	descs := []string{}
	for _, n := range rec.All() {
		descs = append(descs, n.Description)
	}
	assert.Equal(t, []string{"Genre added successfully!", "Genre deleted successfully!", "Genre deleted successfully!"}, descs)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s, _ := newTestStore(t)
	snap := s.Snapshot()

	s.AddMovie(context.Background(), model.MovieInput{Title: "later"})
	s.DeleteMovie(context.Background(), "1")
	snap.Movies[1].Cast[0] = "changed"

	assert.Len(t, snap.Movies, 6)
	assert.Equal(t, "1", snap.Movies[0].ID)
	m, _ := s.Movie("2")
	assert.Equal(t, "Emma Thompson", m.Cast[0])
}

func TestRevisionAdvancesOnMutation(t *testing.T) {
	s, _ := newTestStore(t)
	r0 := s.Revision()
	s.AddGenre(context.Background(), model.GenreInput{Name: "Noir"})
	assert.Greater(t, s.Revision(), r0)
}

func TestStoreQueries(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, s.Movies(), s.Search("", query.Filter{}))
	assert.Equal(t, []string{"2", "4", "1"}, ids(s.Featured(3)))
	assert.Equal(t, []string{"4", "3"}, ids(s.Latest(2)))
}

func TestNewCopiesSeed(t *testing.T) {
	movies := seed.Movies()
	s := New(movies, seed.Genres(), Options{})
	movies[0].Title = "changed"
	m, _ := s.Movie("1")
	assert.Equal(t, "Quantum Nexus", m.Title)
}

func TestConcurrentPatchesAreSerialized(t *testing.T) {
	s, _ := newTestStore(t)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := i
			s.UpdateMovie(context.Background(), "1", model.MoviePatch{Duration: &d})
			_ = s.Search("nexus", query.Filter{})
		}(i)
	}
	wg.Wait()
	m, ok := s.Movie("1")
	require.True(t, ok)
	assert.Equal(t, "Quantum Nexus", m.Title)
	assert.Len(t, s.Movies(), 6)
}

func TestStatsFollowMutations(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	st := s.Stats()
	assert.Equal(t, 6, st.Movies)
	assert.Equal(t, 8, st.Genres)
	assert.Equal(t, 20, st.Showtimes)

	s.AddMovie(ctx, model.MovieInput{Title: "No Screenings", Rating: 1.5})
	s.AddGenre(ctx, model.GenreInput{Name: "Western"})
	st = s.Stats()
	assert.Equal(t, 7, st.Movies)
	assert.Equal(t, 9, st.Genres)
	assert.Equal(t, 20, st.Showtimes)
	assert.InDelta(t, 51.0/7, st.AverageRating, 1e-9)
}

// Package catalog owns the authoritative movie and genre collections and
// the current-user slot.  A single Store is built at startup and handed to
// whatever needs it; all access goes through its methods.
package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/iliyamo/icinema-catalog/internal/model"
	"github.com/iliyamo/icinema-catalog/internal/notify"
	"github.com/iliyamo/icinema-catalog/internal/query"
	"github.com/iliyamo/icinema-catalog/internal/session"
)

// DefaultSessionKey is the side-store key holding the serialized user.
const DefaultSessionKey = "icinema_user"

// Options configures a Store.  Every field is optional.
type Options struct {
	Sessions   session.Store       // side store for the current user; in-memory when nil
	SessionKey string              // DefaultSessionKey when empty
	Notifier   notify.Notifier     // receives success messages; dropped when nil
	Logger     *zap.Logger         // zap.NewNop when nil
	Latency    time.Duration       // simulated delay before login/signup complete
	Sleep      func(time.Duration) // how Latency is spent; time.Sleep when nil
	NewID      func() string       // identifier generator; uuid.NewString when nil
	Now        func() time.Time    // notification clock; time.Now when nil
}

// Snapshot is a point-in-time deep copy of both collections, newest first.
type Snapshot struct {
	Movies []model.Movie `json:"movies"`
	Genres []model.Genre `json:"genres"`
}

// Store holds the catalog.  It is safe for concurrent use; one RWMutex
// serializes writers so partial updates to the same movie never interleave.
type Store struct {
	mu       sync.RWMutex
	movies   []model.Movie
	genres   []model.Genre
	user     *model.User
	revision uint64

	sessions   session.Store
	sessionKey string
	notifier   notify.Notifier
	log        *zap.Logger
	latency    time.Duration
	sleep      func(time.Duration)
	newID      func() string
	now        func() time.Time
}

// New builds a Store seeded with copies of movies and genres.
func New(movies []model.Movie, genres []model.Genre, opts Options) *Store {
	s := &Store{
		movies:     make([]model.Movie, 0, len(movies)),
		genres:     make([]model.Genre, len(genres)),
		sessions:   opts.Sessions,
		sessionKey: opts.SessionKey,
		notifier:   opts.Notifier,
		log:        opts.Logger,
		latency:    opts.Latency,
		sleep:      opts.Sleep,
		newID:      opts.NewID,
		now:        opts.Now,
	}
	for _, m := range movies {
		s.movies = append(s.movies, m.Clone())
	}
	copy(s.genres, genres)

	if s.sessions == nil {
		s.sessions = session.NewMemory()
	}
	if s.sessionKey == "" {
		s.sessionKey = DefaultSessionKey
	}
	if s.notifier == nil {
		s.notifier = notify.Nop{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.sleep == nil {
		s.sleep = time.Sleep
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ---- reads ----

// Snapshot returns a deep copy of the current collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Movies: s.moviesLocked(), Genres: s.genresLocked()}
}

// Movies returns a copy of the movie collection in current order.
func (s *Store) Movies() []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moviesLocked()
}

// Genres returns a copy of the genre collection in current order.
func (s *Store) Genres() []model.Genre {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.genresLocked()
}

// Movie looks a movie up by identifier.
func (s *Store) Movie(id string) (model.Movie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.movieIndex(id); i >= 0 {
		return s.movies[i].Clone(), true
	}
	return model.Movie{}, false
}

// Revision changes after every mutation.  Two equal revisions mean the
// catalog content is identical.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Search runs query.Search over the current movies.
func (s *Store) Search(q string, f query.Filter) []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.Search(s.movies, q, f)
}

// Featured returns the n highest rated movies.
func (s *Store) Featured(n int) []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.Featured(s.movies, n)
}

// Latest returns the n most recently released movies.
func (s *Store) Latest(n int) []model.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.Latest(s.movies, n)
}

// Stats summarizes the current catalog.
func (s *Store) Stats() query.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return query.Summarize(s.movies, s.genres)
}

// ---- movie mutations ----

// AddMovie stores a new movie at the front of the collection and returns it.
func (s *Store) AddMovie(ctx context.Context, in model.MovieInput) model.Movie {
	s.mu.Lock()
	m := in.MovieWithID(s.freshID(s.movieIndex))
	s.movies = append([]model.Movie{m}, s.movies...)
	s.revision++
	s.mu.Unlock()

	s.log.Debug("movie added", zap.String("id", m.ID), zap.String("title", m.Title))
	s.notify(ctx, "Success", "Movie added successfully!")
	return m.Clone()
}

// UpdateMovie merges patch into the movie with the given id.  An unknown id
// is a silent no-op; the success message is raised either way.
func (s *Store) UpdateMovie(ctx context.Context, id string, patch model.MoviePatch) {
	s.mu.Lock()
	if i := s.movieIndex(id); i >= 0 {
		s.movies[i] = patch.Apply(s.movies[i])
		s.revision++
	} else {
		s.log.Debug("update of unknown movie ignored", zap.String("id", id))
	}
	s.mu.Unlock()

	s.notify(ctx, "Success", "Movie updated successfully!")
}

// DeleteMovie removes the movie with the given id, keeping the order of the
// rest.  An unknown id is a no-op.
func (s *Store) DeleteMovie(ctx context.Context, id string) {
	s.mu.Lock()
	if i := s.movieIndex(id); i >= 0 {
		s.movies = append(s.movies[:i:i], s.movies[i+1:]...)
		s.revision++
	}
	s.mu.Unlock()

	s.notify(ctx, "Success", "Movie deleted successfully!")
}

// ---- genre mutations ----

// AddGenre stores a new genre at the front of the collection and returns it.
func (s *Store) AddGenre(ctx context.Context, in model.GenreInput) model.Genre {
	s.mu.Lock()
	g := model.Genre{ID: s.freshID(s.genreIndex), Name: in.Name, Description: in.Description}
	s.genres = append([]model.Genre{g}, s.genres...)
	s.revision++
	s.mu.Unlock()

	s.notify(ctx, "Success", "Genre added successfully!")
	return g
}

// DeleteGenre removes the genre with the given id.  Movies that reference
// the genre by name keep it.
func (s *Store) DeleteGenre(ctx context.Context, id string) {
	s.mu.Lock()
	if i := s.genreIndex(id); i >= 0 {
		s.genres = append(s.genres[:i:i], s.genres[i+1:]...)
		s.revision++
	}
	s.mu.Unlock()

	s.notify(ctx, "Success", "Genre deleted successfully!")
}

// ---- helpers (callers hold mu) ----

func (s *Store) moviesLocked() []model.Movie {
	out := make([]model.Movie, len(s.movies))
	for i, m := range s.movies {
		out[i] = m.Clone()
	}
	return out
}

func (s *Store) genresLocked() []model.Genre {
	out := make([]model.Genre, len(s.genres))
	copy(out, s.genres)
	return out
}

func (s *Store) movieIndex(id string) int {
	for i := range s.movies {
		if s.movies[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) genreIndex(id string) int {
	for i := range s.genres {
		if s.genres[i].ID == id {
			return i
		}
	}
	return -1
}

// freshID draws identifiers until one is not already taken in the
// collection that index searches.
func (s *Store) freshID(index func(string) int) string {
	for {
		id := s.newID()
		if id != "" && index(id) < 0 {
			return id
		}
	}
}

func (s *Store) notify(ctx context.Context, title, description string) {
	s.notifier.Notify(ctx, notify.Notification{Title: title, Description: description, At: s.now()})
}

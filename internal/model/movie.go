package model

import (
	"strings"
	"time"
)

// Movie is a single film listing in the catalog.  Genre holds genre names
// (not identifiers) and may contain duplicates.  Rating is conventionally in
// the 0..10 range and Duration is in minutes; neither is enforced here.
// ID is assigned by the catalog store at creation time and is unique.
// ReleaseDate is a YYYY-MM-DD calendar date.  An empty Trailer means no
// trailer.  ShowTimes holds time-of-day strings whose format is not checked.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       []string `json:"genre"`
	Rating      float64  `json:"rating"`
	Duration    int      `json:"duration"`
	ReleaseDate string   `json:"release_date"`
	Poster      string   `json:"poster"`
	Trailer     string   `json:"trailer,omitempty"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Language    string   `json:"language"`
	IsActive    bool     `json:"is_active"`
	ShowTimes   []string `json:"show_times"`
}

// MovieInput carries every Movie attribute except the identifier.  It is the
// payload accepted when a new movie is created.
type MovieInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       []string `json:"genre"`
	Rating      float64  `json:"rating"`
	Duration    int      `json:"duration"`
	ReleaseDate string   `json:"release_date"`
	Poster      string   `json:"poster"`
	Trailer     string   `json:"trailer,omitempty"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	Language    string   `json:"language"`
	IsActive    bool     `json:"is_active"`
	ShowTimes   []string `json:"show_times"`
}

// MovieWithID builds the Movie for this input under the given identifier.
// Slices are copied so the result shares no memory with the input.
func (in MovieInput) MovieWithID(id string) Movie {
	return Movie{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Genre:       CloneStrings(in.Genre),
		Rating:      in.Rating,
		Duration:    in.Duration,
		ReleaseDate: in.ReleaseDate,
		Poster:      in.Poster,
		Trailer:     in.Trailer,
		Director:    in.Director,
		Cast:        CloneStrings(in.Cast),
		Language:    in.Language,
		IsActive:    in.IsActive,
		ShowTimes:   CloneStrings(in.ShowTimes),
	}
}

// MoviePatch is a partial update.  A nil field means "leave unchanged";
// slice fields are pointers so that an explicit empty list can be told apart
// from an absent one.
type MoviePatch struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Genre       *[]string `json:"genre,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	ReleaseDate *string   `json:"release_date,omitempty"`
	Poster      *string   `json:"poster,omitempty"`
	Trailer     *string   `json:"trailer,omitempty"`
	Director    *string   `json:"director,omitempty"`
	Cast        *[]string `json:"cast,omitempty"`
	Language    *string   `json:"language,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
	ShowTimes   *[]string `json:"show_times,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p MoviePatch) Empty() bool {
	return p == MoviePatch{}
}

// Apply returns a copy of m with every non-nil patch field replaced.
func (p MoviePatch) Apply(m Movie) Movie {
	out := m.Clone()
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Genre != nil {
		out.Genre = CloneStrings(*p.Genre)
	}
	if p.Rating != nil {
		out.Rating = *p.Rating
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.ReleaseDate != nil {
		out.ReleaseDate = *p.ReleaseDate
	}
	if p.Poster != nil {
		out.Poster = *p.Poster
	}
	if p.Trailer != nil {
		out.Trailer = *p.Trailer
	}
	if p.Director != nil {
		out.Director = *p.Director
	}
	if p.Cast != nil {
		out.Cast = CloneStrings(*p.Cast)
	}
	if p.Language != nil {
		out.Language = *p.Language
	}
	if p.IsActive != nil {
		out.IsActive = *p.IsActive
	}
	if p.ShowTimes != nil {
		out.ShowTimes = CloneStrings(*p.ShowTimes)
	}
	return out
}

// Clone returns a deep copy of the movie.
func (m Movie) Clone() Movie {
	m.Genre = CloneStrings(m.Genre)
	m.Cast = CloneStrings(m.Cast)
	m.ShowTimes = CloneStrings(m.ShowTimes)
	return m
}

// HasGenre reports whether name is one of the movie's genres (exact match).
func (m Movie) HasGenre(name string) bool {
	for _, g := range m.Genre {
		if g == name {
			return true
		}
	}
	return false
}

// releaseLayouts are tried in order when reading ReleaseDate.
var releaseLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
}

// Released parses ReleaseDate.  The second result is false when the value is
// empty or matches none of the accepted layouts.
func (m Movie) Released() (time.Time, bool) {
	s := strings.TrimSpace(m.ReleaseDate)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// CloneStrings copies a string slice, preserving nil.
func CloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// SplitList splits a comma separated form value, trimming blanks and dropping
// empty entries ("a, b,,c" -> [a b c]).
func SplitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/icinema-catalog/internal/model"
	"github.com/iliyamo/icinema-catalog/internal/seed"
)

func titles(ms []model.Movie) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Title
	}
	return out
}

func intPtr(v int) *int { return &v }

func TestSearchEmptyIsIdentity(t *testing.T) {
	all := seed.Movies()
	assert.Equal(t, all, Search(all, "", Filter{}))
}

func TestSearchMinRating(t *testing.T) {
	got := Search(seed.Movies(), "", Filter{MinRating: 8.5})
	assert.Equal(t, []string{"The Last Symphony", "Lunar Expedition"}, titles(got))
}

func TestSearchGenre(t *testing.T) {
	got := Search(seed.Movies(), "", Filter{Genres: []string{"Horror"}})
	assert.Equal(t, []string{"The Phantom's Curse"}, titles(got))
}

func TestSearchGenresUseOrSemantics(t *testing.T) {
	got := Search(seed.Movies(), "", Filter{Genres: []string{"Horror", "Comedy"}})
	assert.Equal(t, []string{"Midnight Café", "The Phantom's Curse"}, titles(got))

	got = Search(seed.Movies(), "", Filter{Genres: []string{"horror"}})
	assert.Empty(t, got)
}

func TestSearchText(t *testing.T) {
	cases := []struct {
		name  string
		q     string
		want  []string
	}{
		{"title case-insensitive", "quantum", []string{"Quantum Nexus"}},
		{"director", "NOLAN", []string{"Lunar Expedition"}},
		{"cast member in two movies", "nyong", []string{"The Last Symphony", "The Phantom's Curse"}},
		{"description", "victorian", []string{"The Phantom's Curse"}},
		{"no match", "zzz", []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, titles(Search(seed.Movies(), tc.q, Filter{})))
		})
	}
}

func TestSearchYear(t *testing.T) {
	all := seed.Movies()
	assert.Len(t, Search(all, "", Filter{Year: intPtr(2024)}), 6)
	assert.Empty(t, Search(all, "", Filter{Year: intPtr(2023)}))
	// zero behaves as "no year"
	assert.Len(t, Search(all, "", Filter{Year: intPtr(0)}), 6)

	broken := []model.Movie{{Title: "Undated", ReleaseDate: "someday"}}
	assert.Empty(t, Search(broken, "", Filter{Year: intPtr(2024)}))
	assert.Len(t, Search(broken, "", Filter{}), 1)
}

func TestSearchConditionsAreCombined(t *testing.T) {
	got := Search(seed.Movies(), "the", Filter{Genres: []string{"Thriller"}, MinRating: 7.5})
	// "the" hits many descriptions; Thriller + rating 7.5 leaves two
	assert.Equal(t, []string{"Quantum Nexus", "Crimson Shadows"}, titles(got))
}

func TestSearchDoesNotAliasInput(t *testing.T) {
	all := seed.Movies()
	got := Search(all, "", Filter{})
	got[0].Cast[0] = "changed"
	assert.Equal(t, "Alex Rivera", all[0].Cast[0])
}

func TestFilterActive(t *testing.T) {
	assert.False(t, Filter{}.Active())
	assert.False(t, Filter{Year: intPtr(0)}.Active())
	assert.True(t, Filter{MinRating: 1}.Active())
	assert.True(t, Filter{Genres: []string{"Drama"}}.Active())
	assert.True(t, Filter{Year: intPtr(2024)}.Active())
}

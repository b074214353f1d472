package query

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/icinema-catalog/internal/model"
	"github.com/iliyamo/icinema-catalog/internal/seed"
)

func TestFeatured(t *testing.T) {
	got := Featured(seed.Movies(), 3)
	assert.Equal(t, []string{"The Last Symphony", "Lunar Expedition", "Quantum Nexus"}, titles(got))
}

func TestFeaturedTiesKeepInputOrder(t *testing.T) {
	in := []model.Movie{
		{ID: "a", Rating: 7},
		{ID: "b", Rating: 9},
		{ID: "c", Rating: 7},
		{ID: "d", Rating: 9},
	}
	got := Featured(in, 4)
	ids := []string{}
	for _, m := range got {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)
	// input order is untouched
	assert.Equal(t, "a", in[0].ID)
}

func TestLatest(t *testing.T) {
	got := Latest(seed.Movies(), 4)
	assert.Equal(t, []string{"Lunar Expedition", "Crimson Shadows", "Quantum Nexus", "Midnight Café"}, titles(got))
}

func TestLatestUnparseableSortsLast(t *testing.T) {
	in := []model.Movie{
		{Title: "broken", ReleaseDate: "tbd"},
		{Title: "old", ReleaseDate: "2001-01-01"},
		{Title: "empty"},
		{Title: "new", ReleaseDate: "2025-06-01"},
	}
	assert.Equal(t, []string{"new", "old", "broken", "empty"}, titles(Latest(in, 10)))
}

func TestOrderingBounds(t *testing.T) {
	all := seed.Movies()
	assert.Empty(t, Featured(all, 0))
	assert.Empty(t, Latest(all, -1))
	assert.Len(t, Featured(all, 100), 6)
	assert.NotNil(t, Featured(nil, 3))
}

func TestOrderingLeavesInputUntouched(t *testing.T) {
	in := seed.Movies()
	before := seed.Movies()

	out := Latest(in, 6)
	out[0].Genre[0] = "Changed"
	out[0].Title = "Changed"
	_ = Featured(in, 6)

	if diff := cmp.Diff(before, in); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

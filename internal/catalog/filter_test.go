package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []Sound {
	return []Sound{
		{ID: 1, Name: "Cool Beat", Tags: []string{"chill", "lofi"}},
		{ID: 2, Name: "Thunder", Tags: []string{"storm", " Rain"}},
		{ID: 3, Name: "Birdsong", Tags: []string{"nature"}},
	}
}

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	sounds := filterFixture()
	assert.Equal(t, sounds, Filter(sounds, ""))
}

func TestFilter_MatchesNameSubstring(t *testing.T) {
	got := Filter(filterFixture(), "eat")
	assert.Len(t, got, 1)
	assert.Equal(t, "Cool Beat", got[0].Name)
}

func TestFilter_CaseInsensitive(t *testing.T) {
	got := Filter(filterFixture(), "THUNDER")
	assert.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilter_MatchesTags(t *testing.T) {
	got := Filter(filterFixture(), "rain")
	assert.Len(t, got, 1)
	assert.Equal(t, "Thunder", got[0].Name)

	got = Filter(filterFixture(), "LOFI")
	assert.Len(t, got, 1)
	assert.Equal(t, "Cool Beat", got[0].Name)
}

func TestFilter_NoMatches(t *testing.T) {
	assert.Empty(t, Filter(filterFixture(), "dubstep"))
}

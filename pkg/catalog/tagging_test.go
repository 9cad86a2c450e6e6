package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/onepick/pkg/domain"
)

func TestToItem(t *testing.T) {
	t.Run("movie", func(t *testing.T) {
		item, ok := ToItem(Title{ID: 603, Title: "The Matrix", GenreIDs: []int{28, 878}, VoteAverage: 8.2,
			VoteCount: 25000, Popularity: 80, PosterPath: "/m.jpg", ReleaseDate: "1999-03-30"}, MediaMovie)
		require.True(t, ok)
		assert.Equal(t, "tmdb:movie:603", item.ID)
		assert.Equal(t, domain.ItemMovie, item.Type)
		assert.Equal(t, domain.MoodEscape, item.Mood)
		assert.Equal(t, domain.PaceFast, item.Pace)
		assert.Equal(t, 5, item.Intensity, "action plus high rating")
		assert.Equal(t, []string{"action", "fantastical", "sci-fi"}, item.Tags)
		assert.InDelta(t, 0.5*8.2+25+0.8, item.BaseScore, 0.0001)
		assert.Equal(t, "https://image.tmdb.org/t/p/w500/m.jpg", item.Meta["poster"])
		assert.Equal(t, "1999-03-30", item.Meta["released"])
		assert.Equal(t, "603", item.Meta["tmdb_id"])
	})

	t.Run("series", func(t *testing.T) {
		item, ok := ToItem(Title{ID: 1, Name: "Cozy Show", GenreIDs: []int{35, 10751}, VoteAverage: 7,
			FirstAirDate: "2020-01-01"}, MediaTV)
		require.True(t, ok)
		assert.Equal(t, "tmdb:series:1", item.ID)
		assert.Equal(t, domain.ItemSeries, item.Type)
		assert.Equal(t, "Cozy Show", item.Title)
		assert.Equal(t, domain.MoodLight, item.Mood)
		assert.Equal(t, domain.PaceSlow, item.Pace)
		assert.Equal(t, 2, item.Intensity)
		assert.Equal(t, []string{"comedy", "cozy", "family", "funny", "warm"}, item.Tags)
		assert.Equal(t, "2020-01-01", item.Meta["released"])
	})

	t.Run("heavy drama", func(t *testing.T) {
		item, ok := ToItem(Title{ID: 2, Title: "War", GenreIDs: []int{18, 10752}, VoteAverage: 7.5}, MediaMovie)
		require.True(t, ok)
		assert.Equal(t, domain.MoodHeavy, item.Mood)
		assert.Equal(t, 4, item.Intensity)
	})

	t.Run("fallback title", func(t *testing.T) {
		item, ok := ToItem(Title{ID: 3, OriginalTitle: "Original", VoteAverage: 6}, MediaMovie)
		require.True(t, ok)
		assert.Equal(t, "Original", item.Title)
		assert.Equal(t, domain.MoodEscape, item.Mood, "no genres default to escape")
		assert.Empty(t, item.Tags)
	})

	t.Run("skipped", func(t *testing.T) {
		_, ok := ToItem(Title{ID: 4, Title: "Bad", VoteAverage: 5.9}, MediaMovie)
		assert.False(t, ok, "low rating")
		_, ok = ToItem(Title{ID: 5, Title: "Unrated"}, MediaMovie)
		assert.False(t, ok, "no rating")
		_, ok = ToItem(Title{Title: "No id", VoteAverage: 7}, MediaMovie)
		assert.False(t, ok)
		_, ok = ToItem(Title{ID: 6, VoteAverage: 7}, MediaTV)
		assert.False(t, ok, "no title")
	})
}

func TestBaseScore(t *testing.T) {
	assert.InDelta(t, 3.0+0.5+0.25, BaseScore(6, 500, 25), 0.0001)
	assert.InDelta(t, 0, BaseScore(0, 0, 0), 0.0001)
}

func TestGenresOf(t *testing.T) {
	assert.Equal(t, []string{"action", "war"}, genresOf([]int{28, 10759, 999, 10768}))
}

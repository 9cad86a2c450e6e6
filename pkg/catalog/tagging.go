package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/umputun/onepick/pkg/domain"
)

// minVoteAverage filters out weakly rated titles
const minVoteAverage = 6.0

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// genre ids of movies and tv, https://developer.themoviedb.org/reference/genre-movie-list
var genreNames = map[int]string{
	28: "action", 12: "adventure", 16: "animation", 35: "comedy", 80: "crime", 99: "documentary",
	18: "drama", 10751: "family", 14: "fantasy", 36: "history", 27: "horror", 10402: "music",
	9648: "mystery", 10749: "romance", 878: "sci-fi", 10770: "tv-movie", 53: "thriller", 10752: "war",
	37: "western", 10759: "action", 10762: "kids", 10763: "news", 10764: "reality",
	10765: "sci-fi", 10766: "soap", 10767: "talk", 10768: "war",
}

var (
	fastGenres   = set("action", "thriller", "horror", "crime", "adventure")
	escapeGenres = set("fantasy", "sci-fi", "adventure", "animation")
	lightGenres  = set("comedy", "animation", "family", "music", "romance", "kids")
	heavyGenres  = set("drama", "war", "history", "documentary")
	highGenres   = set("horror", "thriller", "war", "action")
	lowGenres    = set("animation", "family", "comedy", "romance", "kids")

	genreTones = map[string][]string{
		"family": {"cozy", "warm"}, "animation": {"cozy", "warm"}, "kids": {"cozy"}, "romance": {"warm", "romantic"},
		"horror": {"dark", "tense"}, "thriller": {"dark", "tense"}, "crime": {"dark"}, "mystery": {"mysterious"},
		"comedy": {"funny"}, "music": {"heartfelt"}, "drama": {"emotional"}, "sci-fi": {"fantastical"},
		"fantasy": {"fantastical"}, "adventure": {"thrilling"}, "war": {"profound"}, "history": {"thought-provoking"},
	}
)

// ToItem converts a listing entry into a catalog item. Returns false for entries
// without id or title and for titles rated below the minimum.
func ToItem(t Title, media MediaType) (domain.Item, bool) {
	if t.ID == 0 {
		return domain.Item{}, false
	}
	if t.VoteAverage < minVoteAverage {
		return domain.Item{}, false
	}

	item := domain.Item{
		Type:        domain.ItemMovie,
		Title:       firstNonEmpty(t.Title, t.OriginalTitle),
		VoteAverage: t.VoteAverage,
		VoteCount:   t.VoteCount,
		Popularity:  t.Popularity,
		Meta:        map[string]string{"tmdb_id": fmt.Sprint(t.ID)},
	}
	released := t.ReleaseDate
	if media == MediaTV {
		item.Type = domain.ItemSeries
		item.Title = firstNonEmpty(t.Name, t.OriginalName)
		released = t.FirstAirDate
	}
	if item.Title == "" {
		return domain.Item{}, false
	}
	item.ID = fmt.Sprintf("tmdb:%s:%d", item.Type, t.ID)
	item.BaseScore = BaseScore(t.VoteAverage, t.VoteCount, t.Popularity)

	addMeta(item.Meta, "overview", t.Overview)
	addMeta(item.Meta, "released", released)
	addMeta(item.Meta, "language", t.Language)
	if t.PosterPath != "" {
		item.Meta["poster"] = posterBaseURL + t.PosterPath
	}

	genres := genresOf(t.GenreIDs)
	item.Mood, item.Pace, item.Intensity = classify(genres, t.VoteAverage)
	item.Tags = tagsOf(genres)
	return item, true
}

// BaseScore is the popularity prior of an item: 0.5*vote_average + 0.001*vote_count + 0.01*popularity
func BaseScore(voteAverage float64, voteCount int, popularity float64) float64 {
	return 0.5*voteAverage + 0.001*float64(voteCount) + 0.01*popularity
}

func classify(genres []string, voteAverage float64) (mood domain.Mood, pace domain.Pace, intensity int) {
	pace = domain.PaceSlow
	if anyIn(genres, fastGenres) {
		pace = domain.PaceFast
	}

	switch {
	case anyIn(genres, escapeGenres):
		mood = domain.MoodEscape
	case anyIn(genres, lightGenres):
		mood = domain.MoodLight
	case anyIn(genres, heavyGenres):
		mood = domain.MoodHeavy
	default:
		mood = domain.MoodEscape
	}

	intensity = 3
	for _, g := range genres {
		if _, ok := highGenres[g]; ok {
			intensity = max(intensity, 4)
		} else if _, ok := lowGenres[g]; ok {
			intensity = min(intensity, 2)
		}
	}
	switch {
	case voteAverage >= 8:
		intensity = min(intensity+1, 5)
	case voteAverage > 0 && voteAverage < 6:
		intensity = max(intensity-1, 1)
	}
	return mood, pace, intensity
}

// tagsOf returns sorted genres plus the tones they imply
func tagsOf(genres []string) []string {
	uniq := map[string]struct{}{}
	for _, g := range genres {
		uniq[g] = struct{}{}
		for _, tone := range genreTones[g] {
			uniq[tone] = struct{}{}
		}
	}
	res := make([]string, 0, len(uniq))
	for t := range uniq {
		res = append(res, t)
	}
	sort.Strings(res)
	return res
}

func genresOf(ids []int) []string {
	res := make([]string, 0, len(ids))
	seen := map[string]struct{}{}
	for _, id := range ids {
		name, ok := genreNames[id]
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res
}

func anyIn(vals []string, s map[string]struct{}) bool {
	for _, v := range vals {
		if _, ok := s[v]; ok {
			return true
		}
	}
	return false
}

func addMeta(meta map[string]string, key, val string) {
	if val = strings.TrimSpace(val); val != "" {
		meta[key] = val
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func set(vals ...string) map[string]struct{} {
	res := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		res[v] = struct{}{}
	}
	return res
}

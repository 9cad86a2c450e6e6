package recommend

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/onepick/pkg/domain"
)

func catalog(n int) []domain.Item {
	res := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		res = append(res, domain.Item{
			ID:        fmt.Sprintf("m%03d", i),
			Type:      domain.ItemMovie,
			Tags:      []string{"drama"},
			Mood:      domain.MoodLight,
			BaseScore: float64(i%7) / 10,
		})
	}
	return res
}

func lightMovie() domain.Answers {
	return domain.Answers{Mood: domain.MoodLight, Pace: domain.PaceSlow, Format: domain.ItemMovie}
}

func TestEngine_Deterministic(t *testing.T) {
	e := NewEngine(DefaultConfig())
	snap := Snapshot{Candidates: catalog(50), Weights: domain.Weights{"drama": 0.3}}
	req := Request{UserID: "u1", Answers: lightMovie(), AsOf: "2024-03-01"}

	first, err := e.Recommend(snap, req)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		p, err := e.Recommend(snap, req)
		require.NoError(t, err)
		assert.Equal(t, first.Item.ID, p.Item.ID)
		assert.Equal(t, first.Mode, p.Mode)
		assert.InDelta(t, first.Total(), p.Total(), 1e-12)
	}
}

func TestEngine_IndependentOfCandidateOrder(t *testing.T) {
	e := NewEngine(DefaultConfig())
	items := catalog(40)
	shuffled := make([]domain.Item, len(items))
	copy(shuffled, items)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	for _, user := range []string{"u1", "u2", "u3", "u4", "u5"} {
		req := Request{UserID: user, Answers: lightMovie(), AsOf: "2024-03-01"}
		a, err := e.Recommend(Snapshot{Candidates: items}, req)
		require.NoError(t, err)
		b, err := e.Recommend(Snapshot{Candidates: shuffled}, req)
		require.NoError(t, err)
		assert.Equal(t, a.Item.ID, b.Item.ID, "user %s", user)
	}
}

func TestEngine_SeedChangesWithDateAndMode(t *testing.T) {
	e := NewEngine(DefaultConfig())
	snap := Snapshot{Candidates: catalog(50)}
	base := e.Rank(snap, Request{UserID: "u1", Answers: lightMovie(), AsOf: "2024-03-01"})
	nextDay := e.Rank(snap, Request{UserID: "u1", Answers: lightMovie(), AsOf: "2024-03-02"})
	explore := e.Rank(snap, Request{UserID: "u1", Answers: lightMovie(), AsOf: "2024-03-01", Explore: true})
	assert.NotEqual(t, base[0].Novelty, nextDay[0].Novelty)
	assert.NotEqual(t, base[0].Novelty, explore[0].Novelty)

	// answers are not part of the seed
	other := e.Rank(snap, Request{UserID: "u1", AsOf: "2024-03-01",
		Answers: domain.Answers{Mood: domain.MoodLight, Pace: domain.PaceFast, Format: domain.ItemMovie}})
	byID := map[string]float64{}
	for _, s := range base {
		byID[s.Item.ID] = s.Novelty
	}
	for _, s := range other {
		assert.InDelta(t, byID[s.Item.ID], s.Novelty, 1e-12)
	}
}

func TestEngine_NoveltyBounds(t *testing.T) {
	e := NewEngine(DefaultConfig())
	for _, s := range e.Rank(Snapshot{Candidates: catalog(200)}, Request{UserID: "u1", Answers: lightMovie(), AsOf: "2024-03-01"}) {
		assert.GreaterOrEqual(t, s.Novelty, 0.0)
		assert.Less(t, s.Novelty, 0.2)
	}
}

func TestEngine_Exclusions(t *testing.T) {
	e := NewEngine(DefaultConfig())
	items := catalog(5)
	exclude := map[string]struct{}{}
	for _, it := range items {
		exclude[it.ID] = struct{}{}
	}
	delete(exclude, "m003")

	for _, user := range []string{"a", "b", "c", "d"} {
		p, err := e.Recommend(Snapshot{Candidates: items, Exclude: exclude}, Request{UserID: user, Answers: lightMovie(), AsOf: "2024-03-01"})
		require.NoError(t, err)
		assert.Equal(t, "m003", p.Item.ID)
	}

	exclude["m003"] = struct{}{}
	_, err := e.Recommend(Snapshot{Candidates: items, Exclude: exclude}, Request{UserID: "a", Answers: lightMovie(), AsOf: "2024-03-01"})
	assert.ErrorIs(t, err, domain.ErrNoCandidates)
}

func TestEngine_Filter(t *testing.T) {
	items := []domain.Item{
		{ID: "series", Type: domain.ItemSeries, Mood: domain.MoodLight},
		{ID: "heavy", Type: domain.ItemMovie, Mood: domain.MoodHeavy},
		{ID: "nomood", Type: domain.ItemMovie},
		{ID: "light", Type: domain.ItemMovie, Mood: domain.MoodLight},
		{ID: "light", Type: domain.ItemMovie, Mood: domain.MoodLight},
	}
	res := filterCandidates(items, lightMovie(), nil)
	require.Len(t, res, 2)
	assert.Equal(t, "light", res[0].ID)
	assert.Equal(t, "nomood", res[1].ID)

	_, err := NewEngine(DefaultConfig()).Recommend(Snapshot{}, Request{UserID: "u", Answers: lightMovie()})
	assert.ErrorIs(t, err, domain.ErrNoCandidates)
}

func TestEngine_ExploitPicksTop(t *testing.T) {
	e := NewEngine(DefaultConfig())
	snap := Snapshot{Candidates: catalog(30)}
	exploits := 0
	for i := 0; i < 200; i++ {
		req := Request{UserID: fmt.Sprintf("user-%d", i), Answers: lightMovie(), AsOf: "2024-03-01"}
		p, err := e.Recommend(snap, req)
		require.NoError(t, err)
		if p.Mode == domain.ModeExploit {
			exploits++
			ranked := e.Rank(snap, req)
			assert.Equal(t, ranked[0].Item.ID, p.Item.ID)
			assert.Equal(t, 0, p.Rank)
		}
	}
	assert.Positive(t, exploits)
}

func TestEngine_EpsilonRate(t *testing.T) {
	e := NewEngine(DefaultConfig())
	snap := Snapshot{Candidates: catalog(30)}
	explores := 0
	const n = 3000
	for i := 0; i < n; i++ {
		p, err := e.Recommend(snap, Request{UserID: fmt.Sprintf("user-%d", i), Answers: lightMovie(), AsOf: "2024-03-01"})
		require.NoError(t, err)
		if p.Mode == domain.ModeExplore {
			explores++
		}
	}
	rate := float64(explores) / n
	assert.InDelta(t, 0.30, rate, 0.04, "explore rate %v", rate)
}

func TestEngine_ForcedExploreWithinTopK(t *testing.T) {
	e := NewEngine(DefaultConfig())
	snap := Snapshot{Candidates: catalog(60)}
	ranks := map[int]bool{}
	for i := 0; i < 300; i++ {
		p, err := e.Recommend(snap, Request{UserID: fmt.Sprintf("u%d", i), Answers: lightMovie(), AsOf: "2024-03-01", Explore: true})
		require.NoError(t, err)
		assert.Equal(t, domain.ModeExplore, p.Mode)
		assert.Less(t, p.Rank, 20)
		ranks[p.Rank] = true
	}
	assert.Greater(t, len(ranks), 10, "explore spreads over the top candidates")
}

func TestSortScored_TiesByID(t *testing.T) {
	res := []Scored{
		{Item: domain.Item{ID: "c"}, Base: 1},
		{Item: domain.Item{ID: "b"}, Base: 2},
		{Item: domain.Item{ID: "a"}, Base: 1},
	}
	sortScored(res)
	assert.Equal(t, "b", res[0].Item.ID)
	assert.Equal(t, "a", res[1].Item.ID)
	assert.Equal(t, "c", res[2].Item.ID)
}

func TestEngine_WeightsShiftRanking(t *testing.T) {
	e := NewEngine(DefaultConfig())
	items := []domain.Item{
		{ID: "comedy", Type: domain.ItemMovie, Tags: []string{"comedy"}, BaseScore: 1},
		{ID: "horror", Type: domain.ItemMovie, Tags: []string{"horror"}, BaseScore: 1.5},
	}
	req := Request{UserID: "u", AsOf: "2024-03-01",
		Answers: domain.Answers{Mood: domain.MoodHeavy, Pace: domain.PaceSlow, Format: domain.ItemMovie}}
	before := e.Rank(Snapshot{Candidates: items}, req)
	assert.Equal(t, "horror", before[0].Item.ID)

	after := e.Rank(Snapshot{Candidates: items, Weights: domain.Weights{"comedy": 1}}, req)
	assert.Equal(t, "comedy", after[0].Item.ID)
	assert.InDelta(t, 1.0, after[0].Weight, 1e-12)
}

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name string
		item domain.Item
		ans  domain.Answers
		want float64
	}{
		{name: "nothing", item: domain.Item{}, ans: lightMovie(), want: 0},
		{name: "mood", item: domain.Item{Mood: domain.MoodLight}, ans: lightMovie(), want: 2},
		{name: "pace", item: domain.Item{Pace: domain.PaceSlow}, ans: lightMovie(), want: 2},
		{name: "mood and pace", item: domain.Item{Mood: domain.MoodLight, Pace: domain.PaceSlow}, ans: lightMovie(), want: 4},
		{name: "tone once", item: domain.Item{Tags: []string{"cozy", "warm"}}, ans: lightMovie(), want: 0.5},
		{name: "tone of other mood", item: domain.Item{Tags: []string{"dark"}}, ans: lightMovie(), want: 0},
		{name: "intensity light", item: domain.Item{Intensity: 1}, ans: lightMovie(), want: 0.3},
		{name: "intensity heavy mismatch", item: domain.Item{Intensity: 5}, ans: lightMovie(), want: 0},
		{name: "everything", item: domain.Item{Mood: domain.MoodHeavy, Pace: domain.PaceFast, Tags: []string{"tense"}, Intensity: 4},
			ans: domain.Answers{Mood: domain.MoodHeavy, Pace: domain.PaceFast, Format: domain.ItemMovie}, want: 4.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MatchScore(tt.item, tt.ans), 1e-9)
		})
	}
}

func TestWeightBonus(t *testing.T) {
	w := domain.Weights{"comedy": 0.5, "family": -0.25}
	assert.InDelta(t, 0.25, WeightBonus(w, []string{"comedy", "family", "unknown"}), 1e-9)
	assert.InDelta(t, 0.5, WeightBonus(w, []string{"comedy", "comedy"}), 1e-9)
	assert.Zero(t, WeightBonus(nil, []string{"comedy"}))
}

func TestSeed(t *testing.T) {
	a := newSeed("u1", "2024-03-01", "default")
	b := newSeed("u1", "2024-03-01", "default")
	assert.Equal(t, a, b)
	assert.Equal(t, a.unit("x"), b.unit("x"))
	assert.NotEqual(t, a.unit("x"), a.unit("y"))
	assert.Equal(t, a.rand().Float64(), b.rand().Float64())
}

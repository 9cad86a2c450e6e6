// Package recommend picks a single catalog item for a user with a seeded epsilon-greedy policy.
// Engine is pure computation over a snapshot; Service loads the snapshot and records the result.
package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/umputun/onepick/pkg/domain"
)

// Config defines engine parameters
type Config struct {
	Epsilon          float64 // probability of the explore branch
	ExploreTopK      int     // explore picks uniformly among this many best candidates
	NoveltyMax       float64 // novelty bonus is drawn from [0, NoveltyMax)
	WeightMultiplier float64 // applied to the sum of user weights over item tags
}

// DefaultConfig returns the production engine parameters
func DefaultConfig() Config {
	return Config{Epsilon: 0.30, ExploreTopK: 20, NoveltyMax: 0.2, WeightMultiplier: 1.0}
}

// Snapshot is the consistent view of catalog, weights and history a single call works on
type Snapshot struct {
	Candidates []domain.Item
	Weights    domain.Weights
	Exclude    map[string]struct{} // anti-repeat window and dismissed items
}

// Request describes what to recommend
type Request struct {
	UserID  string
	Answers domain.Answers
	Explore bool   // force the explore branch, used on "another"
	AsOf    string // calendar date in the service timezone, part of the seed
}

// Scored is a candidate with its score components
type Scored struct {
	Item    domain.Item
	Base    float64
	Match   float64
	Weight  float64
	Novelty float64
}

// Total is the final score of the candidate
func (s Scored) Total() float64 {
	return s.Base + s.Match + s.Weight + s.Novelty
}

// Pick is the engine decision
type Pick struct {
	Scored
	Mode domain.Mode // branch that made the pick
	Rank int         // zero-based position of the pick in the ranking
}

// Engine scores and selects candidates. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine makes an engine, zero fields of cfg take defaults
func NewEngine(cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.Epsilon <= 0 {
		cfg.Epsilon = def.Epsilon
	}
	if cfg.ExploreTopK <= 0 {
		cfg.ExploreTopK = def.ExploreTopK
	}
	if cfg.NoveltyMax <= 0 {
		cfg.NoveltyMax = def.NoveltyMax
	}
	if cfg.WeightMultiplier == 0 {
		cfg.WeightMultiplier = def.WeightMultiplier
	}
	return &Engine{cfg: cfg}
}

// Recommend selects one item from the snapshot. Returns domain.ErrNoCandidates if nothing
// passes the filter. Identical snapshot and request always produce the identical pick.
func (e *Engine) Recommend(snap Snapshot, req Request) (Pick, error) {
	candidates := filterCandidates(snap.Candidates, req.Answers, snap.Exclude)
	if len(candidates) == 0 {
		return Pick{}, fmt.Errorf("recommend for %s (%s/%s/%s): %w", req.UserID,
			req.Answers.Mood, req.Answers.Pace, req.Answers.Format, domain.ErrNoCandidates)
	}

	sd := newSeed(req.UserID, req.AsOf, seedMode(req.Explore))
	ranked := e.score(candidates, snap.Weights, req.Answers, sd)
	rng := sd.rand()

	coin := rng.Float64()
	if !req.Explore && coin >= e.cfg.Epsilon {
		return Pick{Scored: ranked[0], Mode: domain.ModeExploit, Rank: 0}, nil
	}

	top := e.cfg.ExploreTopK
	if top > len(ranked) {
		top = len(ranked)
	}
	idx := rng.Intn(top)
	return Pick{Scored: ranked[idx], Mode: domain.ModeExplore, Rank: idx}, nil
}

// Rank returns all eligible candidates ordered by score without making a pick
func (e *Engine) Rank(snap Snapshot, req Request) []Scored {
	candidates := filterCandidates(snap.Candidates, req.Answers, snap.Exclude)
	return e.score(candidates, snap.Weights, req.Answers, newSeed(req.UserID, req.AsOf, seedMode(req.Explore)))
}

// score computes components for every candidate and sorts by total score, ties by id
func (e *Engine) score(candidates []domain.Item, weights domain.Weights, answers domain.Answers, sd seed) []Scored {
	res := make([]Scored, len(candidates))
	for i, item := range candidates {
		res[i] = Scored{
			Item:    item,
			Base:    item.BaseScore,
			Match:   MatchScore(item, answers),
			Weight:  WeightBonus(weights, item.Tags) * e.cfg.WeightMultiplier,
			Novelty: sd.unit(item.ID) * e.cfg.NoveltyMax,
		}
	}
	sortScored(res)
	return res
}

// sortScored orders by total score descending, equal scores by item id
func sortScored(res []Scored) {
	sort.SliceStable(res, func(i, j int) bool {
		ti, tj := res[i].Total(), res[j].Total()
		if ti != tj {
			return ti > tj
		}
		return res[i].Item.ID < res[j].Item.ID
	})
}

// filterCandidates keeps items of the requested format whose mood fits and that are not excluded.
// The result is sorted by id, duplicates dropped.
func filterCandidates(items []domain.Item, answers domain.Answers, exclude map[string]struct{}) []domain.Item {
	res := make([]domain.Item, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item.Type != answers.Format {
			continue
		}
		if item.Mood != "" && answers.Mood != "" && item.Mood != answers.Mood {
			continue
		}
		if _, skip := exclude[item.ID]; skip {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		res = append(res, item)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func seedMode(explore bool) string {
	if explore {
		return string(domain.ModeExplore)
	}
	return "default"
}

// AsOfDate formats the seed date of t in loc
func AsOfDate(t time.Time, loc *time.Location) string {
	return domain.LocalDate(t, loc)
}

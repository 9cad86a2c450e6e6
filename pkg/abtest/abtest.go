// Package abtest assigns A/B variants to channel posts and resolves the winner of each experiment.
package abtest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/keylock"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/settings.go -pkg mocks -skip-ensure -fmt goimports . Settings

// Store persists variant assignments, per experiment engagement totals and winner locks
type Store interface {
	AssignVariant(ctx context.Context, postID string, v domain.Variant) (domain.Variant, error)
	VariantTotals(ctx context.Context, experiment string) (domain.ExperimentTally, error)
	IncrementEvaluations(ctx context.Context, experiment string, at time.Time) (int, error)
	GetWinnerLock(ctx context.Context, experiment string) (*domain.WinnerLock, error)
	InsertWinnerLock(ctx context.Context, lock domain.WinnerLock) (domain.WinnerLock, bool, error)
}

// Settings keeps the last assigned variant between restarts
type Settings interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// Config defines the winner rule
type Config struct {
	Margin          float64 // relative gap to the higher score, 0.15 means 15%
	MinObservations int     // reactions, forwards and clicks of both variants together
	MaxEvaluations  int     // evaluations without a margin win before the leader is locked, 0 disables
}

// DefaultConfig returns the production winner rule
func DefaultConfig() Config {
	return Config{Margin: 0.15, MinObservations: 20, MaxEvaluations: 14}
}

// Controller selects post variants and evaluates experiments.
// Every post belongs to an experiment, the posts of one experiment share a single winner.
type Controller struct {
	store    Store
	settings Settings
	cfg      Config
	locks    *keylock.KeyLock // per experiment evaluation guard
	flipMu   sync.Mutex       // serializes variant alternation
	now      func() time.Time
}

// New makes a controller
func New(store Store, settings Settings, cfg Config) *Controller {
	return &Controller{store: store, settings: settings, cfg: cfg, locks: keylock.New(), now: time.Now}
}

// SelectVariant returns the variant to publish for the post. Once the experiment has a winner
// every post gets it; before that an already assigned variant is kept, otherwise the variant
// alternates with the last assigned one.
func (c *Controller) SelectVariant(ctx context.Context, post domain.Post) (domain.Variant, error) {
	experiment := post.ExperimentKey()
	lock, err := c.store.GetWinnerLock(ctx, experiment)
	if err != nil {
		return "", fmt.Errorf("get winner lock of %s: %w", experiment, err)
	}
	if lock != nil {
		stored, err := c.store.AssignVariant(ctx, post.ID, lock.Variant)
		if err != nil {
			return "", fmt.Errorf("assign winner to %s: %w", post.ID, err)
		}
		if stored != lock.Variant {
			lgr.Printf("[WARN] post %s was assigned %s before %s locked to %s", post.ID, stored, experiment, lock.Variant)
		}
		return stored, nil
	}
	if post.Variant != "" {
		return post.Variant, nil
	}

	c.flipMu.Lock()
	defer c.flipMu.Unlock()

	last, err := c.settings.GetSetting(ctx, domain.SettingLastVariant)
	if err != nil {
		return "", fmt.Errorf("get last variant: %w", err)
	}
	next := domain.VariantA
	if domain.Variant(last) == domain.VariantA {
		next = domain.VariantB
	}

	stored, err := c.store.AssignVariant(ctx, post.ID, next)
	if err != nil {
		return "", fmt.Errorf("assign variant to %s: %w", post.ID, err)
	}
	if stored != next {
		// assigned concurrently by someone else, the alternation is not advanced
		return stored, nil
	}
	if err := c.settings.SetSetting(ctx, domain.SettingLastVariant, string(next)); err != nil {
		return "", fmt.Errorf("save last variant: %w", err)
	}
	lgr.Printf("[DEBUG] post %s assigned variant %s", post.ID, next)
	return next, nil
}

// Evaluate scores both variants of the post's experiment over all its published posts and locks
// the winner once the rule is met. The score of a variant is the mean score of the posts it was
// published with, so the number of posts per variant doesn't skew the comparison.
// Nothing is decided or counted until both variants went out at least once.
// Returns nil without error when no lock was created, including when the experiment is already locked.
// A concurrent evaluation of the same experiment is rejected with ErrConcurrentEvaluation.
func (c *Controller) Evaluate(ctx context.Context, post domain.Post) (*domain.WinnerLock, error) {
	experiment := post.ExperimentKey()
	unlock, ok := c.locks.TryLock(experiment)
	if !ok {
		return nil, fmt.Errorf("evaluate %s: %w", experiment, domain.ErrConcurrentEvaluation)
	}
	defer unlock()

	existing, err := c.store.GetWinnerLock(ctx, experiment)
	if err != nil {
		return nil, fmt.Errorf("get winner lock of %s: %w", experiment, err)
	}
	if existing != nil {
		return nil, nil
	}

	tally, err := c.store.VariantTotals(ctx, experiment)
	if err != nil {
		return nil, fmt.Errorf("get totals of %s: %w", experiment, err)
	}
	if tally.A.Posts == 0 || tally.B.Posts == 0 {
		lgr.Printf("[DEBUG] experiment %s has %d posts of a and %d of b, not evaluated", experiment, tally.A.Posts, tally.B.Posts)
		return nil, nil
	}

	now := c.now().UTC()
	scoreA, scoreB := tally.A.Score(), tally.B.Score()
	winner, won := Decide(scoreA, scoreB, tally.Observations(), c.cfg)
	reason := domain.LockMargin
	if !won {
		count, err := c.store.IncrementEvaluations(ctx, experiment, now)
		if err != nil {
			return nil, fmt.Errorf("count evaluation of %s: %w", experiment, err)
		}
		if c.cfg.MaxEvaluations <= 0 || count < c.cfg.MaxEvaluations {
			lgr.Printf("[DEBUG] experiment %s undecided after %d evaluations, a=%.1f b=%.1f", experiment, count, scoreA, scoreB)
			return nil, nil
		}
		winner, reason = Leader(scoreA, scoreB), domain.LockMaxEvaluations
	}

	lock := domain.WinnerLock{Experiment: experiment, PostID: post.ID, Variant: winner, Reason: reason,
		ScoreA: scoreA, ScoreB: scoreB, LockedAt: now}
	stored, created, err := c.store.InsertWinnerLock(ctx, lock)
	if err != nil {
		return nil, fmt.Errorf("lock winner of %s: %w", experiment, err)
	}
	if !created {
		lgr.Printf("[INFO] experiment %s already locked to %s by %s", experiment, stored.Variant, stored.Reason)
		return nil, nil
	}
	lgr.Printf("[INFO] experiment %s locked to %s by %s, a=%.1f b=%.1f", experiment, stored.Variant, stored.Reason, scoreA, scoreB)
	return &stored, nil
}

// Decide applies the margin rule: the higher score must be positive, exceed the lower one
// by at least cfg.Margin of itself, and the experiment must have enough observations.
func Decide(scoreA, scoreB float64, observations int, cfg Config) (domain.Variant, bool) {
	if observations < cfg.MinObservations {
		return "", false
	}
	hi, lo := scoreA, scoreB
	if scoreB > scoreA {
		hi, lo = scoreB, scoreA
	}
	if hi <= 0 || hi == lo {
		return "", false
	}
	// compare with a small tolerance so exact boundaries like 100 vs 85 lock
	if (hi-lo)/hi+1e-9 < cfg.Margin {
		return "", false
	}
	return Leader(scoreA, scoreB), true
}

// Leader returns the variant with the higher score, A on a tie
func Leader(scoreA, scoreB float64) domain.Variant {
	if scoreB > scoreA {
		return domain.VariantB
	}
	return domain.VariantA
}

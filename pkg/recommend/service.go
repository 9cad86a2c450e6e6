package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/keylock"
)

//go:generate moq -out mocks/catalog.go -pkg mocks -skip-ensure -fmt goimports . Catalog
//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . History
//go:generate moq -out mocks/dismissed.go -pkg mocks -skip-ensure -fmt goimports . Dismissed
//go:generate moq -out mocks/weights.go -pkg mocks -skip-ensure -fmt goimports . WeightsProvider

// Catalog provides candidate items
type Catalog interface {
	ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Item, error)
}

// History is the recommendation log
type History interface {
	RecentItems(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error)
	RecordRecommendation(ctx context.Context, rec domain.Recommendation) error
}

// Dismissed provides items the user never wants to see again
type Dismissed interface {
	DismissedItems(ctx context.Context, userID string) (map[string]struct{}, error)
}

// WeightsProvider returns learned user weights, never failing
type WeightsProvider interface {
	Weights(ctx context.Context, userID string) domain.Weights
}

// ServiceParams defines dependencies and settings of the service
type ServiceParams struct {
	Catalog    Catalog
	History    History
	Dismissed  Dismissed
	Weights    WeightsProvider
	Engine     *Engine
	AntiRepeat time.Duration  // items recommended within this window are excluded
	Location   *time.Location // timezone of the seed date
}

// Service loads a snapshot, asks the engine for a pick and records it
type Service struct {
	ServiceParams
	locks *keylock.KeyLock
	now   func() time.Time
}

// Result is a recorded recommendation together with the recommended item
type Result struct {
	Recommendation domain.Recommendation
	Item           domain.Item
	Components     Scored
}

// NewService makes a recommendation service
func NewService(params ServiceParams) *Service {
	if params.Engine == nil {
		params.Engine = NewEngine(DefaultConfig())
	}
	if params.AntiRepeat <= 0 {
		params.AntiRepeat = 90 * 24 * time.Hour
	}
	if params.Location == nil {
		params.Location = time.UTC
	}
	return &Service{ServiceParams: params, locks: keylock.New(), now: time.Now}
}

// Recommend picks and records an item for the user. Calls for the same user are serialized
// so two concurrent requests can't both get the same item. Anti-repeat is never relaxed,
// an empty candidate set returns domain.ErrNoCandidates.
func (s *Service) Recommend(ctx context.Context, userID string, answers domain.Answers, explore bool) (*Result, error) {
	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	now := s.now()
	snap, err := s.snapshot(ctx, userID, answers, now)
	if err != nil {
		return nil, err
	}

	req := Request{UserID: userID, Answers: answers, Explore: explore, AsOf: AsOfDate(now, s.Location)}
	pick, err := s.Engine.Recommend(snap, req)
	if err != nil {
		return nil, err
	}

	rec := domain.Recommendation{
		ID:        uuid.NewString(),
		UserID:    userID,
		ItemID:    pick.Item.ID,
		Answers:   answers,
		Mode:      pick.Mode,
		Score:     pick.Total(),
		CreatedAt: now.UTC(),
	}
	if err := s.History.RecordRecommendation(ctx, rec); err != nil {
		return nil, fmt.Errorf("record recommendation for %s: %w", userID, err)
	}
	lgr.Printf("[DEBUG] recommended %s to %s, mode=%s, rank=%d, score=%.3f", pick.Item.ID, userID, pick.Mode, pick.Rank, pick.Total())
	return &Result{Recommendation: rec, Item: pick.Item, Components: pick.Scored}, nil
}

// snapshot reads candidates, exclusions and weights for one call
func (s *Service) snapshot(ctx context.Context, userID string, answers domain.Answers, now time.Time) (Snapshot, error) {
	recent, err := s.History.RecentItems(ctx, userID, now.Add(-s.AntiRepeat))
	if err != nil {
		return Snapshot{}, fmt.Errorf("load recent items of %s: %w", userID, err)
	}
	exclude := make(map[string]struct{}, len(recent))
	for id := range recent {
		exclude[id] = struct{}{}
	}
	if s.Dismissed != nil {
		dismissed, err := s.Dismissed.DismissedItems(ctx, userID)
		if err != nil {
			return Snapshot{}, fmt.Errorf("load dismissed items of %s: %w", userID, err)
		}
		for id := range dismissed {
			exclude[id] = struct{}{}
		}
	}

	candidates, err := s.Catalog.ListCandidates(ctx, domain.CandidateFilter{Type: answers.Format, Mood: answers.Mood, Exclude: exclude})
	if err != nil {
		return Snapshot{}, fmt.Errorf("list candidates: %w", err)
	}

	return Snapshot{Candidates: candidates, Weights: s.Weights.Weights(ctx, userID), Exclude: exclude}, nil
}

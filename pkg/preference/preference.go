// Package preference keeps per-user tag weights learned online from recommendation feedback.
package preference

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/keylock"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is the persistence used by the preference service
type Store interface {
	GetWeights(ctx context.Context, userID string) (domain.Weights, error)
	HasFeedback(ctx context.Context, recID string) (bool, error)
	SaveFeedback(ctx context.Context, ev domain.FeedbackEvent, changed domain.Weights) error
}

// Config defines learning parameters
type Config struct {
	Steps     map[domain.FeedbackKind]float64 // weight delta applied to every item tag
	MinWeight float64
	MaxWeight float64
}

// DefaultSteps are the per-feedback weight deltas
var DefaultSteps = map[domain.FeedbackKind]float64{
	domain.FeedbackHit:      0.2,
	domain.FeedbackFavorite: 0.2,
	domain.FeedbackShare:    0.2,
	domain.FeedbackSeen:     0.05,
	domain.FeedbackMiss:     -0.2,
	domain.FeedbackAnother:  0,
}

// Service applies feedback to user weights. Updates of the same user are serialized.
type Service struct {
	store Store
	cfg   Config
	locks *keylock.KeyLock
	now   func() time.Time
}

// New makes a preference service with defaults applied to the zero fields of cfg
func New(store Store, cfg Config) *Service {
	if cfg.Steps == nil {
		cfg.Steps = DefaultSteps
	}
	if cfg.MinWeight == 0 && cfg.MaxWeight == 0 {
		cfg.MinWeight, cfg.MaxWeight = domain.MinWeight, domain.MaxWeight
	}
	return &Service{store: store, cfg: cfg, locks: keylock.New(), now: time.Now}
}

// Weights returns the user weights. Read failures are logged and yield an empty vector,
// so recommendations keep working without personalization.
func (s *Service) Weights(ctx context.Context, userID string) domain.Weights {
	w, err := s.store.GetWeights(ctx, userID)
	if err != nil {
		lgr.Printf("[WARN] failed to load weights for %s, using neutral: %v", userID, err)
		return domain.Weights{}
	}
	if w == nil {
		return domain.Weights{}
	}
	return w
}

// ApplyFeedback records the feedback for recommendation recID and updates the weights of
// every tag of the item. Returns the full weight vector after the update.
// Feedback repeated for the same recommendation returns domain.ErrDuplicateFeedback.
func (s *Service) ApplyFeedback(ctx context.Context, userID string, item domain.Item, recID string,
	kind domain.FeedbackKind) (domain.Weights, error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	seen, err := s.store.HasFeedback(ctx, recID)
	if err != nil {
		return nil, fmt.Errorf("check feedback of %s: %w", recID, err)
	}
	if seen {
		return nil, fmt.Errorf("feedback for %s: %w", recID, domain.ErrDuplicateFeedback)
	}

	current, err := s.store.GetWeights(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load weights of %s: %w", userID, err)
	}
	updated, changed := s.update(current, item.Tags, s.cfg.Steps[kind])

	ev := domain.FeedbackEvent{RecommendationID: recID, UserID: userID, ItemID: item.ID, Kind: kind, CreatedAt: s.now().UTC()}
	if err := s.store.SaveFeedback(ctx, ev, changed); err != nil {
		return nil, fmt.Errorf("save feedback of %s: %w", recID, err)
	}
	lgr.Printf("[DEBUG] feedback %s on %s by %s, %d weights changed", kind, item.ID, userID, len(changed))
	return updated, nil
}

// update applies delta to each tag and returns the full vector and the changed subset
func (s *Service) update(current domain.Weights, tags []string, delta float64) (updated, changed domain.Weights) {
	updated = current.Clone()
	changed = domain.Weights{}
	if delta == 0 {
		return updated, changed
	}
	for _, tag := range tags {
		if _, done := changed[tag]; done {
			continue // duplicate tag on the item counts once
		}
		v := clamp(updated[tag]+delta, s.cfg.MinWeight, s.cfg.MaxWeight)
		updated[tag] = v
		changed[tag] = v
	}
	return updated, changed
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

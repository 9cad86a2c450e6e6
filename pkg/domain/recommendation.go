package domain

import (
	"fmt"
	"time"
)

// Mode is the selection branch of the epsilon-greedy policy
type Mode string

// selection modes
const (
	ModeExploit Mode = "exploit"
	ModeExplore Mode = "explore"
)

// Weights maps a tag to the learned user weight, bounded to [MinWeight, MaxWeight]
type Weights map[string]float64

// weight bounds
const (
	MinWeight = -1.0
	MaxWeight = 1.0
)

// Clone returns an independent copy of the weights, never nil
func (w Weights) Clone() Weights {
	res := make(Weights, len(w))
	for k, v := range w {
		res[k] = v
	}
	return res
}

// Recommendation is an append-only record of an item shown to a user
type Recommendation struct {
	ID        string
	UserID    string
	ItemID    string
	Answers   Answers
	Mode      Mode
	Score     float64
	CreatedAt time.Time
}

// FeedbackKind is the closed set of reactions a user can give to a recommendation
type FeedbackKind string

// feedback kinds
const (
	FeedbackHit      FeedbackKind = "hit"
	FeedbackMiss     FeedbackKind = "miss"
	FeedbackAnother  FeedbackKind = "another"
	FeedbackFavorite FeedbackKind = "favorite"
	FeedbackShare    FeedbackKind = "share"
	FeedbackSeen     FeedbackKind = "seen"
)

// FeedbackKinds lists every feedback kind in a stable order
var FeedbackKinds = []FeedbackKind{FeedbackHit, FeedbackMiss, FeedbackAnother, FeedbackFavorite, FeedbackShare, FeedbackSeen}

// ParseFeedbackKind converts a raw string into a feedback kind
func ParseFeedbackKind(s string) (FeedbackKind, error) {
	k := FeedbackKind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

// Validate checks the kind is one of the known values
func (k FeedbackKind) Validate() error {
	switch k {
	case FeedbackHit, FeedbackMiss, FeedbackAnother, FeedbackFavorite, FeedbackShare, FeedbackSeen:
		return nil
	default:
		return fmt.Errorf("unknown feedback kind %q", k)
	}
}

// Terminal reports whether the kind closes the session. Only "another" keeps it open.
func (k FeedbackKind) Terminal() bool {
	return k != FeedbackAnother
}

// FeedbackEvent is an append-only record of feedback given to a recommendation.
// At most one event exists per recommendation.
type FeedbackEvent struct {
	RecommendationID string
	UserID           string
	ItemID           string
	Kind             FeedbackKind
	CreatedAt        time.Time
}

// Favorite is an item the user marked with favorite feedback
type Favorite struct {
	UserID    string
	ItemID    string
	Title     string
	CreatedAt time.Time
}

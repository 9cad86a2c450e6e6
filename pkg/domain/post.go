package domain

import (
	"fmt"
	"time"
)

// Variant identifies one of the two texts of an A/B post
type Variant string

// post variants
const (
	VariantA Variant = "a"
	VariantB Variant = "b"
)

// Validate checks the variant is A or B
func (v Variant) Validate() error {
	switch v {
	case VariantA, VariantB:
		return nil
	default:
		return fmt.Errorf("unknown variant %q", v)
	}
}

// Other returns the opposite variant
func (v Variant) Other() Variant {
	if v == VariantA {
		return VariantB
	}
	return VariantA
}

// DefaultExperiment is the experiment of posts created without one
const DefaultExperiment = "post_text"

// Post is a channel post with two candidate texts. Only the assigned variant is published,
// so posts of one experiment share the exposure and the winner.
type Post struct {
	ID          string
	ItemID      string
	Experiment  string
	TextA       string
	TextB       string
	Variant     Variant // assigned variant, empty until selected
	MessageID   string  // delivery ack from the publisher
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// ExperimentKey returns the experiment of the post, DefaultExperiment if not set
func (p Post) ExperimentKey() string {
	if p.Experiment == "" {
		return DefaultExperiment
	}
	return p.Experiment
}

// Text returns the text of the given variant
func (p Post) Text(v Variant) string {
	if v == VariantB {
		return p.TextB
	}
	return p.TextA
}

// EngagementMetrics is a snapshot of per-variant engagement counters
type EngagementMetrics struct {
	Reactions  int
	Forwards   int
	Clicks     int
	UnsubDelta int
	CapturedAt time.Time
}

// Observations is the count of engagement events behind the snapshot
func (m EngagementMetrics) Observations() int {
	return m.Reactions + m.Forwards + m.Clicks
}

// Score applies the engagement formula: reactions*2 + forwards*3 + clicks*4 - unsub*5
func (m EngagementMetrics) Score() float64 {
	return float64(m.Reactions*2 + m.Forwards*3 + m.Clicks*4 - m.UnsubDelta*5)
}

// PostMetrics holds the latest engagement snapshot of both variants of a post
type PostMetrics struct {
	PostID string
	A      EngagementMetrics
	B      EngagementMetrics
}

// Of returns the metrics of the given variant
func (m PostMetrics) Of(v Variant) EngagementMetrics {
	if v == VariantB {
		return m.B
	}
	return m.A
}

// VariantTally sums the latest snapshots of the posts published with one variant
type VariantTally struct {
	Posts   int
	Metrics EngagementMetrics
}

// Score is the mean engagement score per post, zero without posts
func (t VariantTally) Score() float64 {
	if t.Posts == 0 {
		return 0
	}
	return t.Metrics.Score() / float64(t.Posts)
}

// ExperimentTally is the engagement of both variants over all published posts of an experiment
type ExperimentTally struct {
	Experiment string
	A          VariantTally
	B          VariantTally
}

// Observations is the count of engagement events of both variants
func (t ExperimentTally) Observations() int {
	return t.A.Metrics.Observations() + t.B.Metrics.Observations()
}

// LockReason explains why a winner was locked
type LockReason string

// lock reasons
const (
	LockMargin         LockReason = "margin"
	LockMaxEvaluations LockReason = "max_evaluations"
)

// WinnerLock fixes the winning variant of an experiment and so of each of its posts.
// Immutable once written.
type WinnerLock struct {
	Experiment string
	PostID     string // post whose evaluation created the lock
	Variant    Variant
	Reason     LockReason
	ScoreA     float64
	ScoreB     float64
	LockedAt   time.Time
}

// Package session drives the three-question flow that ends in a recommendation and feedback.
// Sessions live in memory only and expire lazily on the next input.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/keylock"
	"github.com/umputun/onepick/pkg/recommend"
)

//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/feedback.go -pkg mocks -skip-ensure -fmt goimports . FeedbackApplier
//go:generate moq -out mocks/dismisser.go -pkg mocks -skip-ensure -fmt goimports . Dismisser

// Step is the position of a session in the flow
type Step string

// session steps
const (
	StepAwaitingQ1       Step = "awaiting_q1"
	StepAwaitingQ2       Step = "awaiting_q2"
	StepAwaitingQ3       Step = "awaiting_q3"
	StepRecommended      Step = "recommended"
	StepAwaitingFeedback Step = "awaiting_feedback"
	StepAwaitingRetry    Step = "awaiting_retry" // "another" recorded, the next recommendation failed
	StepClosed           Step = "closed"
)

// Recommender picks and records an item for the collected answers
type Recommender interface {
	Recommend(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error)
}

// FeedbackApplier records feedback and updates preferences
type FeedbackApplier interface {
	ApplyFeedback(ctx context.Context, userID string, item domain.Item, recID string, kind domain.FeedbackKind) (domain.Weights, error)
}

// Dismisser marks items the user has already watched
type Dismisser interface {
	DismissItem(ctx context.Context, userID, itemID string, at time.Time) error
}

// State is a snapshot of a user session
type State struct {
	UserID         string
	Step           Step
	Answers        domain.Answers
	Recommendation *domain.Recommendation
	Item           *domain.Item
	StartedAt      time.Time
	UpdatedAt      time.Time
	ExpiresAt      time.Time
}

// Config defines session lifetimes
type Config struct {
	FlowTTL   time.Duration // question steps, from the last advance
	ActionTTL time.Duration // recommended and awaiting feedback, from the recommendation time
}

// Params defines dependencies of the machine
type Params struct {
	Recommender Recommender
	Feedback    FeedbackApplier
	Dismisser   Dismisser // optional, "seen" feedback dismisses the item when set
	Config
}

// Machine keeps sessions of all users. Inputs of one user are applied sequentially,
// different users advance independently.
type Machine struct {
	Params
	locks *keylock.KeyLock
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*State
}

// New makes a session machine
func New(params Params) *Machine {
	if params.FlowTTL <= 0 {
		params.FlowTTL = 10 * time.Minute
	}
	if params.ActionTTL <= 0 {
		params.ActionTTL = 30 * time.Minute
	}
	return &Machine{Params: params, locks: keylock.New(), now: time.Now, sessions: map[string]*State{}}
}

// Advance applies the input to the user session and returns the resulting state.
// Missing or expired sessions are replaced by a fresh one before the input is applied,
// if the input doesn't fit the fresh session the error wraps both ErrExpiredSession
// and ErrInvalidInput. A failed transition leaves the session unchanged unless the feedback
// was already recorded, then the returned state is kept along with the error.
func (m *Machine) Advance(ctx context.Context, userID string, in Input) (State, error) {
	unlock := m.locks.Lock(userID)
	defer unlock()

	now := m.now()
	st, ok := m.load(userID)
	expired := ok && !now.Before(st.ExpiresAt)
	if !ok || expired {
		if expired {
			lgr.Printf("[DEBUG] session of %s expired at %s in %s", userID, st.ExpiresAt.Format(time.RFC3339), st.Step)
		}
		st = m.fresh(userID, now)
		m.store(st)
	}

	next, err := m.apply(ctx, st, in, now)
	if next.Step == StepClosed {
		m.remove(userID)
	} else {
		m.store(next)
	}
	if err != nil && expired {
		err = fmt.Errorf("%w: %w", domain.ErrExpiredSession, err)
	}
	return next, err
}

// Start discards any session of the user and begins a new one
func (m *Machine) Start(userID string) State {
	unlock := m.locks.Lock(userID)
	defer unlock()
	st := m.fresh(userID, m.now())
	m.store(st)
	return st
}

// Get returns the current session of the user, false if there is none or it expired
func (m *Machine) Get(userID string) (State, bool) {
	st, ok := m.load(userID)
	if !ok || !m.now().Before(st.ExpiresAt) {
		return State{}, false
	}
	return st, true
}

// Sweep drops sessions expired at the given time and returns how many were removed
func (m *Machine) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, st := range m.sessions {
		if !now.Before(st.ExpiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of kept sessions, expired ones included until swept
func (m *Machine) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Machine) apply(ctx context.Context, st State, in Input, now time.Time) (State, error) {
	if in == nil {
		return st, fmt.Errorf("nil input in %s: %w", st.Step, domain.ErrInvalidInput)
	}
	if err := in.validate(); err != nil {
		return st, fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput)
	}

	switch v := in.(type) {
	case MoodAnswer:
		if st.Step != StepAwaitingQ1 {
			break
		}
		st.Answers.Mood = v.Mood
		return m.advanceFlow(st, StepAwaitingQ2, now), nil
	case PaceAnswer:
		if st.Step != StepAwaitingQ2 {
			break
		}
		st.Answers.Pace = v.Pace
		return m.advanceFlow(st, StepAwaitingQ3, now), nil
	case FormatAnswer:
		if st.Step != StepAwaitingQ3 {
			break
		}
		answers := st.Answers
		answers.Format = v.Format
		return m.recommend(ctx, st, answers, false)
	case Shown:
		if st.Step != StepRecommended {
			break
		}
		st.Step = StepAwaitingFeedback
		st.UpdatedAt = now
		return st, nil
	case Feedback:
		if st.Step == StepAwaitingFeedback {
			return m.feedback(ctx, st, v.Kind, now)
		}
		// only a repeated "another" fits here, its feedback is not applied again
		if st.Step == StepAwaitingRetry && v.Kind == domain.FeedbackAnother {
			return m.another(ctx, st, now)
		}
	}
	return st, fmt.Errorf("%s in %s: %w", in.name(), st.Step, domain.ErrInvalidInput)
}

// recommend asks for an item; on failure the session stays where it was so the caller can retry
func (m *Machine) recommend(ctx context.Context, st State, answers domain.Answers, explore bool) (State, error) {
	res, err := m.Recommender.Recommend(ctx, st.UserID, answers, explore)
	if err != nil {
		return st, fmt.Errorf("recommend: %w", err)
	}
	rec, item := res.Recommendation, res.Item
	st.Answers = answers
	st.Recommendation = &rec
	st.Item = &item
	st.Step = StepRecommended
	st.UpdatedAt = rec.CreatedAt
	st.ExpiresAt = rec.CreatedAt.Add(m.ActionTTL)
	return st, nil
}

func (m *Machine) feedback(ctx context.Context, st State, kind domain.FeedbackKind, now time.Time) (State, error) {
	if st.Recommendation == nil || st.Item == nil {
		return st, fmt.Errorf("no recommendation to rate: %w", domain.ErrInvalidInput)
	}
	if _, err := m.Feedback.ApplyFeedback(ctx, st.UserID, *st.Item, st.Recommendation.ID, kind); err != nil {
		return st, fmt.Errorf("apply %s feedback: %w", kind, err)
	}

	if kind == domain.FeedbackSeen && m.Dismisser != nil {
		if err := m.Dismisser.DismissItem(ctx, st.UserID, st.Item.ID, now); err != nil {
			lgr.Printf("[WARN] failed to dismiss %s for %s: %v", st.Item.ID, st.UserID, err)
		}
	}

	if kind.Terminal() {
		st.Step = StepClosed
		st.UpdatedAt = now
		return st, nil
	}

	return m.another(ctx, st, now)
}

// another re-asks with the same answers in explore mode. The feedback is recorded already:
// with nothing left to offer the session closes, other failures wait for "another" again.
func (m *Machine) another(ctx context.Context, st State, now time.Time) (State, error) {
	next, err := m.recommend(ctx, st, st.Answers, true)
	if err == nil {
		return next, nil
	}
	st.Step = StepAwaitingRetry
	if errors.Is(err, domain.ErrNoCandidates) {
		st.Step = StepClosed
	}
	st.UpdatedAt = now
	return st, err
}

func (m *Machine) advanceFlow(st State, step Step, now time.Time) State {
	st.Step = step
	st.UpdatedAt = now
	st.ExpiresAt = now.Add(m.FlowTTL)
	return st
}

func (m *Machine) fresh(userID string, now time.Time) State {
	return State{UserID: userID, Step: StepAwaitingQ1, StartedAt: now, UpdatedAt: now, ExpiresAt: now.Add(m.FlowTTL)}
}

func (m *Machine) load(userID string) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.sessions[userID]
	if !ok {
		return State{}, false
	}
	return *st, true
}

func (m *Machine) store(st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[st.UserID] = &st
}

func (m *Machine) remove(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

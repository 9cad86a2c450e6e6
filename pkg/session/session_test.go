package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/recommend"
	"github.com/umputun/onepick/pkg/session/mocks"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) add(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newMachine(t *testing.T) (*Machine, *mocks.RecommenderMock, *mocks.FeedbackApplierMock, *clock) {
	t.Helper()
	clk := &clock{t: time.Date(2024, 5, 10, 20, 0, 0, 0, time.UTC)}
	seq := 0
	var mu sync.Mutex
	rec := &mocks.RecommenderMock{
		RecommendFunc: func(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error) {
			mu.Lock()
			defer mu.Unlock()
			seq++
			mode := domain.ModeExploit
			if explore {
				mode = domain.ModeExplore
			}
			item := domain.Item{ID: fmt.Sprintf("m%d", seq), Type: answers.Format, Tags: []string{"comedy"}}
			return &recommend.Result{
				Recommendation: domain.Recommendation{ID: fmt.Sprintf("r%d", seq), UserID: userID, ItemID: item.ID,
					Answers: answers, Mode: mode, CreatedAt: clk.now()},
				Item: item,
			}, nil
		},
	}
	fb := &mocks.FeedbackApplierMock{
		ApplyFeedbackFunc: func(ctx context.Context, userID string, item domain.Item, recID string, kind domain.FeedbackKind) (domain.Weights, error) {
			return domain.Weights{}, nil
		},
	}
	m := New(Params{Recommender: rec, Feedback: fb})
	m.now = clk.now
	return m, rec, fb, clk
}

func answerAll(t *testing.T, m *Machine, user string) State {
	t.Helper()
	ctx := context.Background()
	_, err := m.Advance(ctx, user, MoodAnswer{Mood: domain.MoodLight})
	require.NoError(t, err)
	_, err = m.Advance(ctx, user, PaceAnswer{Pace: domain.PaceFast})
	require.NoError(t, err)
	st, err := m.Advance(ctx, user, FormatAnswer{Format: domain.ItemMovie})
	require.NoError(t, err)
	return st
}

func TestMachine_FullFlow(t *testing.T) {
	m, rec, fb, clk := newMachine(t)
	ctx := context.Background()

	st, err := m.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodLight})
	require.NoError(t, err)
	assert.Equal(t, StepAwaitingQ2, st.Step)
	assert.Equal(t, clk.now().Add(10*time.Minute), st.ExpiresAt)

	st, err = m.Advance(ctx, "u1", PaceAnswer{Pace: domain.PaceFast})
	require.NoError(t, err)
	assert.Equal(t, StepAwaitingQ3, st.Step)

	st, err = m.Advance(ctx, "u1", FormatAnswer{Format: domain.ItemMovie})
	require.NoError(t, err)
	assert.Equal(t, StepRecommended, st.Step)
	require.NotNil(t, st.Recommendation)
	assert.Equal(t, "r1", st.Recommendation.ID)
	assert.Equal(t, domain.Answers{Mood: domain.MoodLight, Pace: domain.PaceFast, Format: domain.ItemMovie}, st.Answers)
	assert.Equal(t, clk.now().Add(30*time.Minute), st.ExpiresAt)
	require.Len(t, rec.RecommendCalls(), 1)
	assert.False(t, rec.RecommendCalls()[0].Explore)

	st, err = m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)
	assert.Equal(t, StepAwaitingFeedback, st.Step)

	st, err = m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackHit})
	require.NoError(t, err)
	assert.Equal(t, StepClosed, st.Step)
	require.Len(t, fb.ApplyFeedbackCalls(), 1)
	call := fb.ApplyFeedbackCalls()[0]
	assert.Equal(t, "r1", call.RecID)
	assert.Equal(t, "m1", call.Item.ID)
	assert.Equal(t, domain.FeedbackHit, call.Kind)

	_, ok := m.Get("u1")
	assert.False(t, ok, "closed session destroyed")
	assert.Equal(t, 0, m.Len())
}

func TestMachine_InvalidInput(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong input for state", func(t *testing.T) {
		m, _, _, _ := newMachine(t)
		_, err := m.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodLight})
		require.NoError(t, err)
		st, err := m.Advance(ctx, "u1", FormatAnswer{Format: domain.ItemMovie})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.NotErrorIs(t, err, domain.ErrExpiredSession)
		assert.Equal(t, StepAwaitingQ2, st.Step)
		cur, ok := m.Get("u1")
		require.True(t, ok)
		assert.Equal(t, StepAwaitingQ2, cur.Step, "state unchanged")
	})

	t.Run("unknown value", func(t *testing.T) {
		m, _, _, _ := newMachine(t)
		_, err := m.Advance(ctx, "u1", MoodAnswer{Mood: "grumpy"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("nil input", func(t *testing.T) {
		m, _, _, _ := newMachine(t)
		_, err := m.Advance(ctx, "u1", nil)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("feedback before shown", func(t *testing.T) {
		m, _, fb, _ := newMachine(t)
		answerAll(t, m, "u1")
		_, err := m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackHit})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, fb.ApplyFeedbackCalls())
	})

	t.Run("unknown feedback kind", func(t *testing.T) {
		m, _, fb, _ := newMachine(t)
		answerAll(t, m, "u1")
		_, err := m.Advance(ctx, "u1", Shown{})
		require.NoError(t, err)
		_, err = m.Advance(ctx, "u1", Feedback{Kind: "meh"})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, fb.ApplyFeedbackCalls())
	})
}

func TestMachine_Expiry(t *testing.T) {
	ctx := context.Background()

	t.Run("expired flow restarts and applies input", func(t *testing.T) {
		m, _, _, clk := newMachine(t)
		_, err := m.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodHeavy})
		require.NoError(t, err)
		clk.add(10 * time.Minute)

		st, err := m.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodLight})
		require.NoError(t, err)
		assert.Equal(t, StepAwaitingQ2, st.Step)
		assert.Equal(t, domain.MoodLight, st.Answers.Mood)
	})

	t.Run("expired flow with inconsistent input", func(t *testing.T) {
		m, _, _, clk := newMachine(t)
		_, err := m.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodHeavy})
		require.NoError(t, err)
		clk.add(11 * time.Minute)

		st, err := m.Advance(ctx, "u1", PaceAnswer{Pace: domain.PaceSlow})
		require.ErrorIs(t, err, domain.ErrExpiredSession)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, StepAwaitingQ1, st.Step)

		cur, ok := m.Get("u1")
		require.True(t, ok, "fresh session kept")
		assert.Equal(t, StepAwaitingQ1, cur.Step)
		assert.Empty(t, cur.Answers.Mood)
	})

	t.Run("recommendation window is 30 minutes", func(t *testing.T) {
		m, _, fb, clk := newMachine(t)
		answerAll(t, m, "u1")
		_, err := m.Advance(ctx, "u1", Shown{})
		require.NoError(t, err)

		clk.add(29 * time.Minute)
		_, ok := m.Get("u1")
		assert.True(t, ok)

		clk.add(time.Minute)
		_, err = m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackHit})
		require.ErrorIs(t, err, domain.ErrExpiredSession)
		assert.Empty(t, fb.ApplyFeedbackCalls())
	})
}

func TestMachine_NoCandidatesStaysAtQ3(t *testing.T) {
	m, rec, _, _ := newMachine(t)
	ctx := context.Background()
	orig := rec.RecommendFunc
	rec.RecommendFunc = func(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error) {
		return nil, domain.ErrNoCandidates
	}

	_, err := m.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodEscape})
	require.NoError(t, err)
	_, err = m.Advance(ctx, "u1", PaceAnswer{Pace: domain.PaceSlow})
	require.NoError(t, err)
	st, err := m.Advance(ctx, "u1", FormatAnswer{Format: domain.ItemSeries})
	require.ErrorIs(t, err, domain.ErrNoCandidates)
	assert.Equal(t, StepAwaitingQ3, st.Step)

	// retry with another format succeeds from the same state
	rec.RecommendFunc = orig
	st, err = m.Advance(ctx, "u1", FormatAnswer{Format: domain.ItemMovie})
	require.NoError(t, err)
	assert.Equal(t, StepRecommended, st.Step)
	assert.Equal(t, domain.ItemMovie, st.Answers.Format)
}

func TestMachine_Another(t *testing.T) {
	m, rec, fb, clk := newMachine(t)
	ctx := context.Background()
	answerAll(t, m, "u1")
	_, err := m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)

	clk.add(5 * time.Minute)
	st, err := m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackAnother})
	require.NoError(t, err)
	assert.Equal(t, StepRecommended, st.Step)
	assert.Equal(t, "r2", st.Recommendation.ID)
	assert.Equal(t, domain.ModeExplore, st.Recommendation.Mode)
	assert.Equal(t, clk.now().Add(30*time.Minute), st.ExpiresAt, "window restarts from the new recommendation")

	require.Len(t, rec.RecommendCalls(), 2)
	assert.True(t, rec.RecommendCalls()[1].Explore)
	assert.Equal(t, rec.RecommendCalls()[0].Answers, rec.RecommendCalls()[1].Answers)

	require.Len(t, fb.ApplyFeedbackCalls(), 1)
	assert.Equal(t, "r1", fb.ApplyFeedbackCalls()[0].RecID)
	assert.Equal(t, domain.FeedbackAnother, fb.ApplyFeedbackCalls()[0].Kind)

	// the new recommendation is rated on its own
	_, err = m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)
	st, err = m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackMiss})
	require.NoError(t, err)
	assert.Equal(t, StepClosed, st.Step)
	require.Len(t, fb.ApplyFeedbackCalls(), 2)
	assert.Equal(t, "r2", fb.ApplyFeedbackCalls()[1].RecID)
}

func TestMachine_AnotherWithoutCandidatesCloses(t *testing.T) {
	m, rec, _, _ := newMachine(t)
	ctx := context.Background()
	answerAll(t, m, "u1")
	_, err := m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)

	rec.RecommendFunc = func(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error) {
		return nil, fmt.Errorf("wrapped: %w", domain.ErrNoCandidates)
	}
	st, err := m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackAnother})
	require.ErrorIs(t, err, domain.ErrNoCandidates)
	assert.Equal(t, StepClosed, st.Step)
	assert.Equal(t, 0, m.Len())
}

func TestMachine_AnotherRetriedAfterFailure(t *testing.T) {
	m, rec, fb, _ := newMachine(t)
	ctx := context.Background()
	answerAll(t, m, "u1")
	_, err := m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)

	orig := rec.RecommendFunc
	rec.RecommendFunc = func(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error) {
		return nil, errors.New("db busy")
	}
	st, err := m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackAnother})
	require.ErrorContains(t, err, "db busy")
	assert.Equal(t, StepAwaitingRetry, st.Step)
	cur, ok := m.Get("u1")
	require.True(t, ok)
	assert.Equal(t, StepAwaitingRetry, cur.Step)
	assert.Equal(t, "r1", cur.Recommendation.ID)

	// rating the old recommendation again is rejected, it was rated "another" already
	_, err = m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackHit})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	rec.RecommendFunc = orig
	st, err = m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackAnother})
	require.NoError(t, err)
	assert.Equal(t, StepRecommended, st.Step)
	assert.Equal(t, domain.ModeExplore, st.Recommendation.Mode)
	require.Len(t, fb.ApplyFeedbackCalls(), 1, "feedback applied once")
	assert.Equal(t, "r1", fb.ApplyFeedbackCalls()[0].RecID)

	_, err = m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)
	st, err = m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackHit})
	require.NoError(t, err)
	assert.Equal(t, StepClosed, st.Step)
	require.Len(t, fb.ApplyFeedbackCalls(), 2)
	assert.Equal(t, st.Recommendation.ID, fb.ApplyFeedbackCalls()[1].RecID)
}

func TestMachine_FeedbackError(t *testing.T) {
	m, _, fb, _ := newMachine(t)
	ctx := context.Background()
	answerAll(t, m, "u1")
	_, err := m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)

	fb.ApplyFeedbackFunc = func(ctx context.Context, userID string, item domain.Item, recID string, kind domain.FeedbackKind) (domain.Weights, error) {
		return nil, domain.ErrDuplicateFeedback
	}
	st, err := m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackHit})
	require.ErrorIs(t, err, domain.ErrDuplicateFeedback)
	assert.Equal(t, StepAwaitingFeedback, st.Step)
	cur, ok := m.Get("u1")
	require.True(t, ok)
	assert.Equal(t, StepAwaitingFeedback, cur.Step)
}

func TestMachine_SeenDismisses(t *testing.T) {
	m, _, _, clk := newMachine(t)
	dis := &mocks.DismisserMock{
		DismissItemFunc: func(ctx context.Context, userID, itemID string, at time.Time) error {
			return errors.New("db is down")
		},
	}
	m.Dismisser = dis
	ctx := context.Background()
	answerAll(t, m, "u1")
	_, err := m.Advance(ctx, "u1", Shown{})
	require.NoError(t, err)

	st, err := m.Advance(ctx, "u1", Feedback{Kind: domain.FeedbackSeen})
	require.NoError(t, err, "dismiss failure is logged only")
	assert.Equal(t, StepClosed, st.Step)
	require.Len(t, dis.DismissItemCalls(), 1)
	assert.Equal(t, "m1", dis.DismissItemCalls()[0].ItemID)
	assert.Equal(t, clk.now(), dis.DismissItemCalls()[0].At)
}

func TestMachine_StartResets(t *testing.T) {
	m, _, _, _ := newMachine(t)
	answerAll(t, m, "u1")
	st := m.Start("u1")
	assert.Equal(t, StepAwaitingQ1, st.Step)
	cur, ok := m.Get("u1")
	require.True(t, ok)
	assert.Nil(t, cur.Recommendation)
}

func TestMachine_Sweep(t *testing.T) {
	m, _, _, clk := newMachine(t)
	ctx := context.Background()
	_, err := m.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodLight})
	require.NoError(t, err)
	answerAll(t, m, "u2")
	assert.Equal(t, 2, m.Len())

	assert.Equal(t, 0, m.Sweep(clk.now().Add(9*time.Minute)))
	assert.Equal(t, 1, m.Sweep(clk.now().Add(10*time.Minute)), "question flow expired")
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.Sweep(clk.now().Add(30*time.Minute)), "recommendation window expired")
	assert.Equal(t, 0, m.Len())
}

func TestMachine_ConcurrentUsers(t *testing.T) {
	m, rec, _, _ := newMachine(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			for _, in := range []Input{MoodAnswer{Mood: domain.MoodLight}, PaceAnswer{Pace: domain.PaceFast},
				FormatAnswer{Format: domain.ItemMovie}} {
				_, err := m.Advance(ctx, user, in)
				assert.NoError(t, err)
			}
		}(fmt.Sprintf("u%d", i))
	}
	wg.Wait()
	assert.Equal(t, 20, m.Len())
	assert.Len(t, rec.RecommendCalls(), 20)

	// racing inputs for one user: exactly one mood answer wins
	m2, _, _, _ := newMachine(t)
	var errs sync.Map
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := m2.Advance(ctx, "u1", MoodAnswer{Mood: domain.MoodLight})
			errs.Store(i, err)
		}(i)
	}
	wg.Wait()
	ok := 0
	errs.Range(func(_, v any) bool {
		if v == nil {
			ok++
		}
		return true
	})
	assert.Equal(t, 1, ok)
}

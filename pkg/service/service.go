// Package service ties recommendations, questionnaire sessions, preference learning and channel
// post tracking together for the transport layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/recommend"
	"github.com/umputun/onepick/pkg/session"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/recommender.go -pkg mocks -skip-ensure -fmt goimports . Recommender
//go:generate moq -out mocks/preferences.go -pkg mocks -skip-ensure -fmt goimports . Preferences
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// Store is the persistence used by the core
type Store interface {
	GetRecommendation(ctx context.Context, id string) (*domain.Recommendation, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	LatestMetrics(ctx context.Context, postID string) (domain.PostMetrics, error)
	SaveMetrics(ctx context.Context, postID string, v domain.Variant, m domain.EngagementMetrics) error
	GetWinnerLock(ctx context.Context, experiment string) (*domain.WinnerLock, error)
	RecordClick(ctx context.Context, postID string, v domain.Variant, at time.Time) error
	AddFavorite(ctx context.Context, userID, itemID string, at time.Time) (bool, error)
	ListFavorites(ctx context.Context, userID string, limit int) ([]domain.Favorite, error)
	GetDaily(ctx context.Context, date string) (*domain.DailyMetrics, error)
	LatestDaily(ctx context.Context) (*domain.DailyMetrics, error)
	ListAlerts(ctx context.Context, limit int) ([]domain.Alert, error)
}

// Recommender picks and records an item for answers
type Recommender interface {
	Recommend(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error)
}

// Preferences learns user weights from feedback
type Preferences interface {
	ApplyFeedback(ctx context.Context, userID string, item domain.Item, recID string, kind domain.FeedbackKind) (domain.Weights, error)
	Weights(ctx context.Context, userID string) domain.Weights
}

// Recorder receives usage metrics
type Recorder interface {
	Recommended(mode string)
	NoCandidates()
	FeedbackApplied(kind string)
}

// Params defines core dependencies. Dismisser and Recorder are optional.
type Params struct {
	Store       Store
	Recommender Recommender
	Preferences Preferences
	Dismisser   session.Dismisser
	Recorder    Recorder
	Session     session.Config
}

// Core is the entry point for user and channel facing operations
type Core struct {
	store     Store
	recommend instrumented
	dismisser session.Dismisser
	sessions  *session.Machine
	now       func() time.Time
}

// PostStats is the experiment state of a channel post
type PostStats struct {
	Post    domain.Post
	Metrics domain.PostMetrics
	Winner  *domain.WinnerLock // winner of the post's experiment, possibly decided on another post
}

// New makes the core, sessions recommend and learn through the same instrumented services
func New(params Params) *Core {
	rec := params.Recorder
	if rec == nil {
		rec = nopRecorder{}
	}
	inst := instrumented{recommender: params.Recommender, prefs: params.Preferences, favorites: params.Store, rec: rec}
	return &Core{
		store:     params.Store,
		recommend: inst,
		dismisser: params.Dismisser,
		sessions: session.New(session.Params{Recommender: inst, Feedback: inst, Dismisser: params.Dismisser,
			Config: params.Session}),
		now: time.Now,
	}
}

// Sessions returns the session machine
func (c *Core) Sessions() *session.Machine { return c.sessions }

// Recommend picks an item for complete answers outside of a session
func (c *Core) Recommend(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error) {
	if userID == "" {
		return nil, fmt.Errorf("empty user id: %w", domain.ErrInvalidInput)
	}
	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput)
	}
	return c.recommend.Recommend(ctx, userID, answers, explore)
}

// StartSession begins a new questionnaire, dropping the previous one
func (c *Core) StartSession(userID string) (session.State, error) {
	if userID == "" {
		return session.State{}, fmt.Errorf("empty user id: %w", domain.ErrInvalidInput)
	}
	return c.sessions.Start(userID), nil
}

// Advance applies a user action to the session
func (c *Core) Advance(ctx context.Context, userID string, in session.Input) (session.State, error) {
	if userID == "" {
		return session.State{}, fmt.Errorf("empty user id: %w", domain.ErrInvalidInput)
	}
	return c.sessions.Advance(ctx, userID, in)
}

// Session returns the live session of the user
func (c *Core) Session(userID string) (session.State, bool) {
	return c.sessions.Get(userID)
}

// Feedback records a reaction to an earlier recommendation of the user and returns the updated weights.
// Feedback "seen" also dismisses the item for the user, "favorite" adds it to the user favorites.
func (c *Core) Feedback(ctx context.Context, userID, recID string, kind domain.FeedbackKind) (domain.Weights, error) {
	if err := kind.Validate(); err != nil {
		return nil, fmt.Errorf("feedback for %s: %s: %w", recID, err.Error(), domain.ErrInvalidInput)
	}
	rec, err := c.store.GetRecommendation(ctx, recID)
	if err != nil {
		return nil, err
	}
	if rec.UserID != userID {
		return nil, fmt.Errorf("recommendation %s of another user: %w", recID, domain.ErrInvalidInput)
	}
	item, err := c.store.GetItem(ctx, rec.ItemID)
	if err != nil {
		return nil, err
	}

	weights, err := c.recommend.ApplyFeedback(ctx, userID, *item, recID, kind)
	if err != nil {
		return nil, err
	}
	if kind == domain.FeedbackSeen && c.dismisser != nil {
		if err := c.dismisser.DismissItem(ctx, userID, item.ID, c.now().UTC()); err != nil {
			lgr.Printf("[WARN] can't dismiss %s for %s: %v", item.ID, userID, err)
		}
	}
	return weights, nil
}

// Weights returns learned weights of the user
func (c *Core) Weights(ctx context.Context, userID string) domain.Weights {
	return c.recommend.prefs.Weights(ctx, userID)
}

// IngestMetrics stores an engagement snapshot of a post variant reported by the channel.
// Clicks are counted by the bot, the store keeps the higher of the reported and the counted clicks
// in the same statement, so a concurrent click aggregation is never overwritten.
func (c *Core) IngestMetrics(ctx context.Context, postID string, v domain.Variant, m domain.EngagementMetrics) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("metrics of %s: %s: %w", postID, err.Error(), domain.ErrInvalidInput)
	}
	if m.Reactions < 0 || m.Forwards < 0 || m.Clicks < 0 || m.UnsubDelta < 0 {
		return fmt.Errorf("negative counter in metrics of %s: %w", postID, domain.ErrInvalidInput)
	}
	if _, err := c.store.GetPost(ctx, postID); err != nil {
		return err
	}
	if m.CapturedAt.IsZero() {
		m.CapturedAt = c.now()
	}
	m.CapturedAt = m.CapturedAt.UTC()
	if err := c.store.SaveMetrics(ctx, postID, v, m); err != nil {
		return fmt.Errorf("save metrics of %s: %w", postID, err)
	}
	return nil
}

// TrackStart records a bot start coming from the call-to-action link of a post.
// The payload looks like post_<post id>_<variant>.
func (c *Core) TrackStart(ctx context.Context, payload string) (postID string, v domain.Variant, err error) {
	postID, v, err = ParseStartPayload(payload)
	if err != nil {
		return "", "", err
	}
	if _, err := c.store.GetPost(ctx, postID); err != nil {
		return "", "", err
	}
	if err := c.store.RecordClick(ctx, postID, v, c.now().UTC()); err != nil {
		return "", "", fmt.Errorf("record click on %s: %w", postID, err)
	}
	return postID, v, nil
}

// ParseStartPayload splits a post deep link payload into the post id and the variant
func ParseStartPayload(payload string) (postID string, v domain.Variant, err error) {
	rest, ok := strings.CutPrefix(payload, "post_")
	idx := strings.LastIndexByte(rest, '_')
	if !ok || idx <= 0 {
		return "", "", fmt.Errorf("start payload %q: %w", payload, domain.ErrInvalidInput)
	}
	v = domain.Variant(rest[idx+1:])
	if err := v.Validate(); err != nil {
		return "", "", fmt.Errorf("start payload %q: %s: %w", payload, err.Error(), domain.ErrInvalidInput)
	}
	return rest[:idx], v, nil
}

// PostStats returns the latest metrics of a post and the winner of its experiment
func (c *Core) PostStats(ctx context.Context, postID string) (PostStats, error) {
	post, err := c.store.GetPost(ctx, postID)
	if err != nil {
		return PostStats{}, err
	}
	m, err := c.store.LatestMetrics(ctx, postID)
	if err != nil {
		return PostStats{}, fmt.Errorf("get metrics of %s: %w", postID, err)
	}
	lock, err := c.store.GetWinnerLock(ctx, post.ExperimentKey())
	if err != nil {
		return PostStats{}, fmt.Errorf("get winner of %s: %w", post.ExperimentKey(), err)
	}
	return PostStats{Post: *post, Metrics: m, Winner: lock}, nil
}

// Daily returns the rollup of the date, the latest one for an empty date
func (c *Core) Daily(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	if date != "" {
		if _, err := time.Parse(domain.DateLayout, date); err != nil {
			return nil, fmt.Errorf("date %q: %w", date, domain.ErrInvalidInput)
		}
		return c.store.GetDaily(ctx, date)
	}
	m, err := c.store.LatestDaily(ctx)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("no daily metrics yet: %w", domain.ErrNotFound)
	}
	return m, nil
}

// Alerts returns recent operational alerts, newest first
func (c *Core) Alerts(ctx context.Context, limit int) ([]domain.Alert, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return c.store.ListAlerts(ctx, limit)
}

// Favorites returns up to limit favorites of the user, newest first
func (c *Core) Favorites(ctx context.Context, userID string, limit int) ([]domain.Favorite, error) {
	if userID == "" {
		return nil, fmt.Errorf("empty user id: %w", domain.ErrInvalidInput)
	}
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return c.store.ListFavorites(ctx, userID, limit)
}

// instrumented reports recommendations and feedback to the recorder and keeps favorites.
// Sessions learn through it too, so feedback from both paths is handled the same way.
type instrumented struct {
	recommender Recommender
	prefs       Preferences
	favorites   interface {
		AddFavorite(ctx context.Context, userID, itemID string, at time.Time) (bool, error)
	}
	rec Recorder
}

func (i instrumented) Recommend(ctx context.Context, userID string, answers domain.Answers, explore bool) (*recommend.Result, error) {
	res, err := i.recommender.Recommend(ctx, userID, answers, explore)
	if errors.Is(err, domain.ErrNoCandidates) {
		i.rec.NoCandidates()
	}
	if err != nil {
		return nil, err
	}
	i.rec.Recommended(string(res.Recommendation.Mode))
	return res, nil
}

func (i instrumented) ApplyFeedback(ctx context.Context, userID string, item domain.Item, recID string,
	kind domain.FeedbackKind) (domain.Weights, error) {
	w, err := i.prefs.ApplyFeedback(ctx, userID, item, recID, kind)
	if err != nil {
		return nil, err
	}
	i.rec.FeedbackApplied(string(kind))
	if kind == domain.FeedbackFavorite && i.favorites != nil {
		// weights are already learned, a failed favorite write doesn't fail the feedback
		if _, err := i.favorites.AddFavorite(ctx, userID, item.ID, time.Now().UTC()); err != nil {
			lgr.Printf("[WARN] can't add favorite %s for %s: %v", item.ID, userID, err)
		}
	}
	return w, nil
}

type nopRecorder struct{}

func (nopRecorder) Recommended(string)     {}
func (nopRecorder) NoCandidates()          {}
func (nopRecorder) FeedbackApplied(string) {}

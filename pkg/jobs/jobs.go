// Package jobs implements the background jobs run by the scheduler
package jobs

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/onepick/pkg/catalog"
	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/llm"
	"github.com/umputun/onepick/pkg/repository"
	"github.com/umputun/onepick/pkg/scheduler"
)

//go:generate moq -out mocks/catalog_syncer.go -pkg mocks -skip-ensure -fmt goimports . CatalogSyncer
//go:generate moq -out mocks/post_store.go -pkg mocks -skip-ensure -fmt goimports . PostStore
//go:generate moq -out mocks/metric_store.go -pkg mocks -skip-ensure -fmt goimports . MetricStore
//go:generate moq -out mocks/setting_store.go -pkg mocks -skip-ensure -fmt goimports . SettingStore
//go:generate moq -out mocks/post_writer.go -pkg mocks -skip-ensure -fmt goimports . PostWriter
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender
//go:generate moq -out mocks/session_sweeper.go -pkg mocks -skip-ensure -fmt goimports . SessionSweeper
//go:generate moq -out mocks/recorder.go -pkg mocks -skip-ensure -fmt goimports . Recorder

// job names
const (
	NameCatalogSync      = "catalog_sync"
	NamePublishPost      = "publish_post"
	NameClickAggregation = "click_aggregation"
	NameScoreRecompute   = "score_recompute"
	NameABEvaluation     = "ab_evaluation"
	NameDailyMetrics     = "daily_metrics"
	NameAlertChecks      = "alert_checks"
	NameSessionSweep     = "session_sweep"
)

// CatalogSyncer refreshes the catalog from upstream
type CatalogSyncer interface {
	Sync(ctx context.Context) (catalog.SyncStats, error)
}

// ItemStore is the catalog storage
type ItemStore interface {
	TopItems(ctx context.Context, limit int, exclude map[string]struct{}) ([]domain.Item, error)
	ListItems(ctx context.Context) ([]domain.Item, error)
	RefreshBaseScores(ctx context.Context, scores map[string]float64) (int, error)
}

// PostStore is the channel posts storage
type PostStore interface {
	CreatePost(ctx context.Context, post domain.Post) error
	DeletePost(ctx context.Context, id string) error
	MarkPublished(ctx context.Context, postID, messageID string, at time.Time) error
	ListPublished(ctx context.Context, since time.Time) ([]domain.Post, error)
	RecentPostItems(ctx context.Context, since time.Time) (map[string]struct{}, error)
	LastPublishedAt(ctx context.Context) (*time.Time, error)
	CountPublished(ctx context.Context, from, to time.Time) (int, error)
	LatestMetrics(ctx context.Context, postID string) (domain.PostMetrics, error)
	SetClicks(ctx context.Context, postID string, v domain.Variant, clicks int, at time.Time) error
	SaveScores(ctx context.Context, postID string, scoreA, scoreB float64, at time.Time) error
}

// ClickCounter counts bot clicks attributed to post variants
type ClickCounter interface {
	CountClicks(ctx context.Context, from, to time.Time) ([]repository.ClickCount, error)
	TotalClicks(ctx context.Context, postIDs []string, to time.Time) ([]repository.ClickCount, error)
}

// HistoryCounter counts recommendations and feedback
type HistoryCounter interface {
	CountRecommendations(ctx context.Context, from, to time.Time) (recs, users int, err error)
	CountFeedback(ctx context.Context, from, to time.Time) (repository.FeedbackCounts, error)
}

// MetricStore keeps daily rollups and alerts
type MetricStore interface {
	SaveDaily(ctx context.Context, m domain.DailyMetrics) error
	LatestDaily(ctx context.Context) (*domain.DailyMetrics, error)
	RecordAlert(ctx context.Context, kind domain.AlertKind, msg string, at time.Time) error
	HasRecentAlert(ctx context.Context, kind domain.AlertKind, since time.Time) (bool, error)
}

// SettingStore keeps job bookmarks
type SettingStore interface {
	GetTime(ctx context.Context, key string) (*time.Time, error)
	SetTime(ctx context.Context, key string, t time.Time) error
}

// PostWriter makes both texts of a post
type PostWriter interface {
	Write(ctx context.Context, item domain.Item) (llm.Draft, error)
}

// Sender delivers a post to the channel and returns the message id
type Sender interface {
	Send(ctx context.Context, text string) (string, error)
}

// ABController assigns post variants and evaluates the experiment of a post
type ABController interface {
	SelectVariant(ctx context.Context, post domain.Post) (domain.Variant, error)
	Evaluate(ctx context.Context, post domain.Post) (*domain.WinnerLock, error)
}

// SessionSweeper drops expired questionnaire sessions
type SessionSweeper interface {
	Sweep(now time.Time) int
	Len() int
}

// Recorder receives job side metrics
type Recorder interface {
	PostPublished(variant string)
	WinnerLocked(reason string)
	SessionsActive(n int)
}

// Config defines job parameters
type Config struct {
	PostRepeat       time.Duration // an item is not posted again within this window
	PostCandidates   int           // top items considered for a post
	EvaluationWindow time.Duration // published posts younger than this are evaluated and scored
	BotName          string        // adds a call-to-action deep link to posts if set
	Experiment       string        // experiment new posts join, their variants share one winner
	HitRateMin       float64
	HitRateSessions  int // minimal sessions for the hit rate alert
	PostsGap         time.Duration
	SyncGap          time.Duration
	ClickLookback    time.Duration // first click aggregation run starts this far back
	Workers          int           // concurrent per-post updates
}

// DefaultConfig returns production job parameters
func DefaultConfig() Config {
	return Config{
		PostRepeat:       60 * 24 * time.Hour,
		PostCandidates:   10,
		EvaluationWindow: 30 * 24 * time.Hour,
		HitRateMin:       0.20,
		HitRateSessions:  10,
		PostsGap:         24 * time.Hour,
		SyncGap:          48 * time.Hour,
		ClickLookback:    24 * time.Hour,
		Workers:          4,
	}
}

// Params defines job dependencies. Catalog and Sender are optional, jobs using them are not scheduled without them.
type Params struct {
	Catalog  CatalogSyncer
	Items    ItemStore
	Posts    PostStore
	Clicks   ClickCounter
	History  HistoryCounter
	Metrics  MetricStore
	Settings SettingStore
	Writer   PostWriter
	Sender   Sender
	AB       ABController
	Sessions SessionSweeper
	Recorder Recorder
	Location *time.Location
	Config   Config
}

// Schedules holds the cadence of every job
type Schedules struct {
	CatalogSync      scheduler.Schedule
	PublishPost      scheduler.Schedule
	ClickAggregation scheduler.Schedule
	ScoreRecompute   scheduler.Schedule
	ABEvaluation     scheduler.Schedule
	DailyMetrics     scheduler.Schedule
	AlertChecks      scheduler.Schedule
	SessionSweep     scheduler.Schedule
}

// Jobs holds dependencies shared by all jobs
type Jobs struct {
	Params
	now func() time.Time
}

// New makes jobs with defaults applied to zero config fields
func New(params Params) *Jobs {
	def := DefaultConfig()
	if params.Config.PostRepeat <= 0 {
		params.Config.PostRepeat = def.PostRepeat
	}
	if params.Config.PostCandidates <= 0 {
		params.Config.PostCandidates = def.PostCandidates
	}
	if params.Config.EvaluationWindow <= 0 {
		params.Config.EvaluationWindow = def.EvaluationWindow
	}
	if params.Config.HitRateMin <= 0 {
		params.Config.HitRateMin = def.HitRateMin
	}
	if params.Config.HitRateSessions <= 0 {
		params.Config.HitRateSessions = def.HitRateSessions
	}
	if params.Config.PostsGap <= 0 {
		params.Config.PostsGap = def.PostsGap
	}
	if params.Config.SyncGap <= 0 {
		params.Config.SyncGap = def.SyncGap
	}
	if params.Config.ClickLookback <= 0 {
		params.Config.ClickLookback = def.ClickLookback
	}
	if params.Config.Experiment == "" {
		params.Config.Experiment = domain.DefaultExperiment
	}
	if params.Config.Workers <= 0 {
		params.Config.Workers = def.Workers
	}
	if params.Location == nil {
		params.Location = time.UTC
	}
	if params.Recorder == nil {
		params.Recorder = nopRecorder{}
	}
	return &Jobs{Params: params, now: time.Now}
}

// List returns scheduler jobs for the given cadence. Jobs without their optional dependency are left out.
func (j *Jobs) List(s Schedules) []scheduler.Job {
	res := []scheduler.Job{
		{Name: NameClickAggregation, Schedule: s.ClickAggregation, Run: j.AggregateClicks},
		{Name: NameScoreRecompute, Schedule: s.ScoreRecompute, Run: j.RecomputeScores},
		{Name: NameABEvaluation, Schedule: s.ABEvaluation, Run: j.EvaluatePosts},
		{Name: NameDailyMetrics, Schedule: s.DailyMetrics, Run: j.RollupDaily},
		{Name: NameAlertChecks, Schedule: s.AlertChecks, Run: j.CheckAlerts},
		{Name: NameSessionSweep, Schedule: s.SessionSweep, Run: j.SweepSessions},
	}
	if j.Catalog != nil {
		res = append(res, scheduler.Job{Name: NameCatalogSync, Schedule: s.CatalogSync, Run: j.SyncCatalog, RunOnStart: true})
	} else {
		lgr.Printf("[WARN] catalog source not configured, %s disabled", NameCatalogSync)
	}
	if j.Sender != nil {
		res = append(res, scheduler.Job{Name: NamePublishPost, Schedule: s.PublishPost, Run: j.PublishPost})
	} else {
		lgr.Printf("[WARN] publisher not configured, %s disabled", NamePublishPost)
	}
	return res
}

// SyncCatalog pulls fresh titles from upstream. A partial upstream failure keeps what was fetched.
func (j *Jobs) SyncCatalog(ctx context.Context) scheduler.Outcome {
	stats, err := j.Catalog.Sync(ctx)
	if err != nil && stats.Upserted == 0 {
		return scheduler.Failure(err)
	}

	if serr := j.Settings.SetTime(ctx, domain.SettingLastCatalogRun, j.now()); serr != nil {
		lgr.Printf("[WARN] can't save catalog sync time: %v", serr)
	}
	if err != nil {
		return scheduler.Partial(err, "fetched %d, upserted %d, failed sources %v", stats.Fetched, stats.Upserted, stats.Failed)
	}
	return scheduler.Success("fetched %d, upserted %d from %d sources", stats.Fetched, stats.Upserted, stats.Sources)
}

// SweepSessions drops expired sessions and reports the active count
func (j *Jobs) SweepSessions(_ context.Context) scheduler.Outcome {
	removed := j.Sessions.Sweep(j.now())
	active := j.Sessions.Len()
	j.Recorder.SessionsActive(active)
	return scheduler.Success("removed %d expired sessions, %d active", removed, active)
}

type nopRecorder struct{}

func (nopRecorder) PostPublished(string) {}
func (nopRecorder) WinnerLocked(string)  {}
func (nopRecorder) SessionsActive(int)   {}

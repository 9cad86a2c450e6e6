package server

import (
	"time"

	"github.com/umputun/onepick/pkg/domain"
	"github.com/umputun/onepick/pkg/scheduler"
	"github.com/umputun/onepick/pkg/service"
	"github.com/umputun/onepick/pkg/session"
)

type recommendRequest struct {
	UserID  string `json:"user_id"`
	Mood    string `json:"mood"`
	Pace    string `json:"pace"`
	Format  string `json:"format"`
	Explore bool   `json:"explore"`
}

type feedbackRequest struct {
	UserID           string `json:"user_id"`
	RecommendationID string `json:"recommendation_id"`
	Kind             string `json:"kind"`
}

// inputRequest is one session action, value is empty for "shown"
type inputRequest struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type metricsRequest struct {
	Variant    string `json:"variant"`
	Reactions  int    `json:"reactions"`
	Forwards   int    `json:"forwards"`
	Clicks     int    `json:"clicks"`
	UnsubDelta int    `json:"unsub_delta"`
	CapturedAt string `json:"captured_at,omitempty"` // RFC 3339 with explicit offset
}

type itemResponse struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Title     string            `json:"title"`
	Tags      []string          `json:"tags"`
	Mood      string            `json:"mood,omitempty"`
	Pace      string            `json:"pace,omitempty"`
	Intensity int               `json:"intensity,omitempty"`
	Meta      map[string]string `json:"meta,omitempty"`
}

type recommendationResponse struct {
	ID        string       `json:"id"`
	Mode      string       `json:"mode"`
	Score     float64      `json:"score"`
	CreatedAt time.Time    `json:"created_at"`
	Item      itemResponse `json:"item"`
}

type sessionResponse struct {
	UserID         string                  `json:"user_id"`
	Step           string                  `json:"step"`
	Answers        domain.Answers          `json:"answers"`
	Recommendation *recommendationResponse `json:"recommendation,omitempty"`
	StartedAt      time.Time               `json:"started_at"`
	ExpiresAt      time.Time               `json:"expires_at"`
}

type variantMetrics struct {
	Reactions  int       `json:"reactions"`
	Forwards   int       `json:"forwards"`
	Clicks     int       `json:"clicks"`
	UnsubDelta int       `json:"unsub_delta"`
	Score      float64   `json:"score"`
	CapturedAt time.Time `json:"captured_at"`
}

type winnerResponse struct {
	Variant  string    `json:"variant"`
	Reason   string    `json:"reason"`
	PostID   string    `json:"post_id"` // post whose evaluation locked the winner
	ScoreA   float64   `json:"score_a"`
	ScoreB   float64   `json:"score_b"`
	LockedAt time.Time `json:"locked_at"`
}

type postResponse struct {
	ID          string                    `json:"id"`
	ItemID      string                    `json:"item_id"`
	Experiment  string                    `json:"experiment"`
	Variant     string                    `json:"variant,omitempty"`
	MessageID   string                    `json:"message_id,omitempty"`
	PublishedAt *time.Time                `json:"published_at,omitempty"`
	Metrics     map[string]variantMetrics `json:"metrics"`
	Winner      *winnerResponse           `json:"winner,omitempty"`
}

type outcomeResponse struct {
	Status     string    `json:"status"`
	Details    string    `json:"details,omitempty"`
	Error      string    `json:"error,omitempty"`
	Started    time.Time `json:"started"`
	DurationMS int64     `json:"duration_ms"`
}

type jobResponse struct {
	Name     string           `json:"name"`
	Schedule string           `json:"schedule"`
	Running  bool             `json:"running"`
	NextRun  time.Time        `json:"next_run"`
	Last     *outcomeResponse `json:"last,omitempty"`
}

type favoriteResponse struct {
	ItemID    string    `json:"item_id"`
	Title     string    `json:"title,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type alertResponse struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type dailyResponse struct {
	Date            string         `json:"date"`
	Recommendations int            `json:"recommendations"`
	Sessions        int            `json:"sessions"`
	Feedback        map[string]int `json:"feedback"`
	HitRate         float64        `json:"hit_rate"`
	PostsPublished  int            `json:"posts_published"`
	ComputedAt      time.Time      `json:"computed_at"`
}

func toItem(item domain.Item) itemResponse {
	return itemResponse{ID: item.ID, Type: string(item.Type), Title: item.Title, Tags: item.Tags, Mood: string(item.Mood),
		Pace: string(item.Pace), Intensity: item.Intensity, Meta: item.Meta}
}

func toRecommendation(rec domain.Recommendation, item domain.Item) recommendationResponse {
	return recommendationResponse{ID: rec.ID, Mode: string(rec.Mode), Score: rec.Score, CreatedAt: rec.CreatedAt, Item: toItem(item)}
}

func toSession(st session.State) sessionResponse {
	res := sessionResponse{UserID: st.UserID, Step: string(st.Step), Answers: st.Answers, StartedAt: st.StartedAt,
		ExpiresAt: st.ExpiresAt}
	if st.Recommendation != nil && st.Item != nil {
		rec := toRecommendation(*st.Recommendation, *st.Item)
		res.Recommendation = &rec
	}
	return res
}

func toVariantMetrics(m domain.EngagementMetrics) variantMetrics {
	return variantMetrics{Reactions: m.Reactions, Forwards: m.Forwards, Clicks: m.Clicks, UnsubDelta: m.UnsubDelta,
		Score: m.Score(), CapturedAt: m.CapturedAt}
}

func toPostStats(stats service.PostStats) postResponse {
	p := stats.Post
	res := postResponse{ID: p.ID, ItemID: p.ItemID, Experiment: p.ExperimentKey(), Variant: string(p.Variant),
		MessageID: p.MessageID, PublishedAt: p.PublishedAt,
		Metrics: map[string]variantMetrics{
			string(domain.VariantA): toVariantMetrics(stats.Metrics.A),
			string(domain.VariantB): toVariantMetrics(stats.Metrics.B),
		}}
	if l := stats.Winner; l != nil {
		res.Winner = &winnerResponse{Variant: string(l.Variant), Reason: string(l.Reason), PostID: l.PostID,
			ScoreA: l.ScoreA, ScoreB: l.ScoreB, LockedAt: l.LockedAt}
	}
	return res
}

func toOutcome(out scheduler.Outcome) outcomeResponse {
	res := outcomeResponse{Status: string(out.Status), Details: out.Details, Started: out.Started,
		DurationMS: out.Duration.Milliseconds()}
	if out.Err != nil {
		res.Error = out.Err.Error()
	}
	return res
}

func toJob(info scheduler.JobInfo) jobResponse {
	res := jobResponse{Name: info.Name, Schedule: info.Schedule, Running: info.Running, NextRun: info.NextRun}
	if info.Last != nil {
		last := toOutcome(*info.Last)
		res.Last = &last
	}
	return res
}

func toDaily(m domain.DailyMetrics) dailyResponse {
	fb := make(map[string]int, len(m.Feedback))
	for k, v := range m.Feedback {
		fb[string(k)] = v
	}
	return dailyResponse{Date: m.Date, Recommendations: m.Recommendations, Sessions: m.Sessions, Feedback: fb,
		HitRate: m.HitRate, PostsPublished: m.PostsPublished, ComputedAt: m.ComputedAt}
}

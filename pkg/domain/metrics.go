package domain

import "time"

// DailyMetrics is the per-day rollup of recommendation and channel activity
type DailyMetrics struct {
	Date            string // calendar date in the configured timezone
	Recommendations int
	Sessions        int // distinct users who got a recommendation
	Feedback        map[FeedbackKind]int
	HitRate         float64 // hits / (hits + misses + anothers)
	PostsPublished  int
	ComputedAt      time.Time
}

// AlertKind identifies an operational alert
type AlertKind string

// alert kinds
const (
	AlertHitRateLow    AlertKind = "hit_rate_low"
	AlertNoPosts       AlertKind = "no_posts_24h"
	AlertNoCatalogSync AlertKind = "no_catalog_sync_48h"
)

// Alert is a persisted operational alert
type Alert struct {
	ID        int64
	Kind      AlertKind
	Message   string
	CreatedAt time.Time
}

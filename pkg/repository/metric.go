package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/onepick/pkg/domain"
)

// MetricRepository handles daily rollups and operational alerts
type MetricRepository struct {
	db *sqlx.DB
}

type dailySQL struct {
	Date            string  `db:"date"`
	Recommendations int     `db:"recommendations"`
	Sessions        int     `db:"sessions"`
	Hits            int     `db:"hits"`
	Misses          int     `db:"misses"`
	Anothers        int     `db:"anothers"`
	Favorites       int     `db:"favorites"`
	Shares          int     `db:"shares"`
	Seens           int     `db:"seens"`
	HitRate         float64 `db:"hit_rate"`
	PostsPublished  int     `db:"posts_published"`
	ComputedAt      string  `db:"computed_at"`
}

type alertSQL struct {
	ID        int64  `db:"id"`
	Kind      string `db:"kind"`
	Message   string `db:"message"`
	CreatedAt string `db:"created_at"`
}

// NewMetricRepository creates a new metric repository
func NewMetricRepository(db *sqlx.DB) *MetricRepository {
	return &MetricRepository{db: db}
}

// SaveDaily stores the rollup of a day, replacing a previous one for the same date
func (r *MetricRepository) SaveDaily(ctx context.Context, m domain.DailyMetrics) error {
	row := dailySQL{
		Date:            m.Date,
		Recommendations: m.Recommendations,
		Sessions:        m.Sessions,
		Hits:            m.Feedback[domain.FeedbackHit],
		Misses:          m.Feedback[domain.FeedbackMiss],
		Anothers:        m.Feedback[domain.FeedbackAnother],
		Favorites:       m.Feedback[domain.FeedbackFavorite],
		Shares:          m.Feedback[domain.FeedbackShare],
		Seens:           m.Feedback[domain.FeedbackSeen],
		HitRate:         m.HitRate,
		PostsPublished:  m.PostsPublished,
		ComputedAt:      toDBTime(m.ComputedAt),
	}
	return retryOnLock(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT OR REPLACE INTO daily_metrics (date, recommendations, sessions, hits, misses, anothers,
				favorites, shares, seens, hit_rate, posts_published, computed_at)
			VALUES (:date, :recommendations, :sessions, :hits, :misses, :anothers,
				:favorites, :shares, :seens, :hit_rate, :posts_published, :computed_at)`, row)
		if err != nil {
			return lockOrCritical(err, "save daily metrics")
		}
		return nil
	})
}

// GetDaily returns the rollup for a date
func (r *MetricRepository) GetDaily(ctx context.Context, date string) (*domain.DailyMetrics, error) {
	var row dailySQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM daily_metrics WHERE date = ?", date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get daily metrics %s: %w", date, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get daily metrics: %w", err)
	}
	return r.toDomainDaily(row)
}

// LatestDaily returns the most recent rollup, nil if none computed yet
func (r *MetricRepository) LatestDaily(ctx context.Context) (*domain.DailyMetrics, error) {
	var row dailySQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM daily_metrics ORDER BY date DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get latest daily metrics: %w", err)
	}
	return r.toDomainDaily(row)
}

// RecordAlert appends an alert
func (r *MetricRepository) RecordAlert(ctx context.Context, kind domain.AlertKind, msg string, at time.Time) error {
	return retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "INSERT INTO alerts (kind, message, created_at) VALUES (?, ?, ?)",
			string(kind), msg, toDBTime(at))
		if err != nil {
			return lockOrCritical(err, "record alert")
		}
		return nil
	})
}

// HasRecentAlert checks whether an alert of the kind was raised at or after since
func (r *MetricRepository) HasRecentAlert(ctx context.Context, kind domain.AlertKind, since time.Time) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM alerts WHERE kind = ? AND created_at >= ?)",
		string(kind), toDBTime(since))
	if err != nil {
		return false, fmt.Errorf("check recent alert: %w", err)
	}
	return exists, nil
}

// ListAlerts returns the newest alerts
func (r *MetricRepository) ListAlerts(ctx context.Context, limit int) ([]domain.Alert, error) {
	var rows []alertSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM alerts ORDER BY created_at DESC, id DESC LIMIT ?", limit); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	res := make([]domain.Alert, 0, len(rows))
	for _, row := range rows {
		created, err := fromDBTime(row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("alert %d created_at: %w", row.ID, err)
		}
		res = append(res, domain.Alert{ID: row.ID, Kind: domain.AlertKind(row.Kind), Message: row.Message, CreatedAt: created})
	}
	return res, nil
}

func (r *MetricRepository) toDomainDaily(row dailySQL) (*domain.DailyMetrics, error) {
	computed, err := fromDBTime(row.ComputedAt)
	if err != nil {
		return nil, fmt.Errorf("daily metrics %s computed_at: %w", row.Date, err)
	}
	return &domain.DailyMetrics{
		Date:            row.Date,
		Recommendations: row.Recommendations,
		Sessions:        row.Sessions,
		Feedback: map[domain.FeedbackKind]int{
			domain.FeedbackHit:      row.Hits,
			domain.FeedbackMiss:     row.Misses,
			domain.FeedbackAnother:  row.Anothers,
			domain.FeedbackFavorite: row.Favorites,
			domain.FeedbackShare:    row.Shares,
			domain.FeedbackSeen:     row.Seens,
		},
		HitRate:        row.HitRate,
		PostsPublished: row.PostsPublished,
		ComputedAt:     computed,
	}, nil
}

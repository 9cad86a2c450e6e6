package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/onepick/pkg/domain"
)

// EventRepository handles raw click events from bot deep links
type EventRepository struct {
	db *sqlx.DB
}

// ClickCount is the number of clicks on a post variant over a period
type ClickCount struct {
	PostID  string `db:"post_id"`
	Variant string `db:"variant"`
	Count   int    `db:"cnt"`
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// RecordClick appends a click event
func (r *EventRepository) RecordClick(ctx context.Context, postID string, v domain.Variant, at time.Time) error {
	return retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "INSERT INTO click_events (post_id, variant, created_at) VALUES (?, ?, ?)",
			postID, string(v), toDBTime(at))
		if err != nil {
			return lockOrCritical(err, "record click")
		}
		return nil
	})
}

// CountClicks returns click counts per post variant for events in [from, to)
func (r *EventRepository) CountClicks(ctx context.Context, from, to time.Time) ([]ClickCount, error) {
	var res []ClickCount
	err := r.db.SelectContext(ctx, &res, `
		SELECT post_id, variant, COUNT(*) AS cnt FROM click_events
		WHERE created_at >= ? AND created_at < ?
		GROUP BY post_id, variant ORDER BY post_id, variant`, toDBTime(from), toDBTime(to))
	if err != nil {
		return nil, fmt.Errorf("count clicks: %w", err)
	}
	return res, nil
}

// TotalClicks returns all click counts per variant of the given posts for events before to
func (r *EventRepository) TotalClicks(ctx context.Context, postIDs []string, to time.Time) ([]ClickCount, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`
		SELECT post_id, variant, COUNT(*) AS cnt FROM click_events
		WHERE post_id IN (?) AND created_at < ?
		GROUP BY post_id, variant ORDER BY post_id, variant`, postIDs, toDBTime(to))
	if err != nil {
		return nil, fmt.Errorf("build total clicks query: %w", err)
	}
	var res []ClickCount
	if err := r.db.SelectContext(ctx, &res, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("count total clicks: %w", err)
	}
	return res, nil
}

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

// HistoryRepository handles the append-only recommendation and feedback logs
type HistoryRepository struct {
	db *sqlx.DB
}

type recommendationSQL struct {
	ID        string  `db:"id"`
	UserID    string  `db:"user_id"`
	ItemID    string  `db:"item_id"`
	Mood      string  `db:"mood"`
	Pace      string  `db:"pace"`
	Format    string  `db:"format"`
	Mode      string  `db:"mode"`
	Score     float64 `db:"score"`
	CreatedAt string  `db:"created_at"`
}

// FeedbackCounts aggregates feedback by kind over a period
type FeedbackCounts map[domain.FeedbackKind]int

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// RecordRecommendation appends a recommendation to the log
func (r *HistoryRepository) RecordRecommendation(ctx context.Context, rec domain.Recommendation) error {
	row := recommendationSQL{
		ID:        rec.ID,
		UserID:    rec.UserID,
		ItemID:    rec.ItemID,
		Mood:      string(rec.Answers.Mood),
		Pace:      string(rec.Answers.Pace),
		Format:    string(rec.Answers.Format),
		Mode:      string(rec.Mode),
		Score:     rec.Score,
		CreatedAt: toDBTime(rec.CreatedAt),
	}
	return retryOnLock(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO recommendations (id, user_id, item_id, mood, pace, format, mode, score, created_at)
			VALUES (:id, :user_id, :item_id, :mood, :pace, :format, :mode, :score, :created_at)`, row)
		if err != nil {
			return lockOrCritical(err, "record recommendation")
		}
		return nil
	})
}

// GetRecommendation retrieves a recommendation by id
func (r *HistoryRepository) GetRecommendation(ctx context.Context, id string) (*domain.Recommendation, error) {
	var row recommendationSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM recommendations WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get recommendation %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	created, err := fromDBTime(row.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("recommendation %s created_at: %w", id, err)
	}
	return &domain.Recommendation{
		ID:        row.ID,
		UserID:    row.UserID,
		ItemID:    row.ItemID,
		Answers:   domain.Answers{Mood: domain.Mood(row.Mood), Pace: domain.Pace(row.Pace), Format: domain.ItemType(row.Format)},
		Mode:      domain.Mode(row.Mode),
		Score:     row.Score,
		CreatedAt: created,
	}, nil
}

// RecentItems returns ids of items recommended to the user at or after since
func (r *HistoryRepository) RecentItems(ctx context.Context, userID string, since time.Time) (map[string]struct{}, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		"SELECT DISTINCT item_id FROM recommendations WHERE user_id = ? AND created_at >= ?",
		userID, toDBTime(since))
	if err != nil {
		return nil, fmt.Errorf("get recent items: %w", err)
	}
	res := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res, nil
}

// HasFeedback checks whether feedback was already recorded for the recommendation
func (r *HistoryRepository) HasFeedback(ctx context.Context, recID string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, "SELECT EXISTS(SELECT 1 FROM feedback WHERE rec_id = ?)", recID); err != nil {
		return false, fmt.Errorf("check feedback exists: %w", err)
	}
	return exists, nil
}

// SaveFeedback stores the feedback event and the changed weights atomically.
// A second event for the same recommendation returns domain.ErrDuplicateFeedback.
func (r *HistoryRepository) SaveFeedback(ctx context.Context, ev domain.FeedbackEvent, changed domain.Weights) error {
	at := toDBTime(ev.CreatedAt)
	return retryOnLock(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return lockOrCritical(err, "begin transaction")
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		_, err = tx.ExecContext(ctx,
			"INSERT INTO feedback (rec_id, user_id, item_id, kind, created_at) VALUES (?, ?, ?, ?, ?)",
			ev.RecommendationID, ev.UserID, ev.ItemID, string(ev.Kind), at)
		if err != nil {
			if isConstraintError(err) {
				return &criticalError{err: fmt.Errorf("save feedback %s: %w", ev.RecommendationID, domain.ErrDuplicateFeedback)}
			}
			return lockOrCritical(err, "save feedback")
		}

		for tag, w := range changed {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO user_weights (user_id, tag, weight, updated_at) VALUES (?, ?, ?, ?)
				ON CONFLICT(user_id, tag) DO UPDATE SET weight = excluded.weight, updated_at = excluded.updated_at`,
				ev.UserID, tag, w, at)
			if err != nil {
				return lockOrCritical(err, "save weight "+tag)
			}
		}

		if err := tx.Commit(); err != nil {
			return lockOrCritical(err, "commit feedback")
		}
		return nil
	})
}

// CountRecommendations returns the number of recommendations and distinct users in [from, to)
func (r *HistoryRepository) CountRecommendations(ctx context.Context, from, to time.Time) (recs, users int, err error) {
	var res struct {
		Recs  int `db:"recs"`
		Users int `db:"users"`
	}
	err = r.db.GetContext(ctx, &res,
		"SELECT COUNT(*) AS recs, COUNT(DISTINCT user_id) AS users FROM recommendations WHERE created_at >= ? AND created_at < ?",
		toDBTime(from), toDBTime(to))
	if err != nil {
		return 0, 0, fmt.Errorf("count recommendations: %w", err)
	}
	return res.Recs, res.Users, nil
}

// CountFeedback returns feedback counts by kind in [from, to)
func (r *HistoryRepository) CountFeedback(ctx context.Context, from, to time.Time) (FeedbackCounts, error) {
	var rows []struct {
		Kind  string `db:"kind"`
		Count int    `db:"cnt"`
	}
	err := r.db.SelectContext(ctx, &rows,
		"SELECT kind, COUNT(*) AS cnt FROM feedback WHERE created_at >= ? AND created_at < ? GROUP BY kind",
		toDBTime(from), toDBTime(to))
	if err != nil {
		return nil, fmt.Errorf("count feedback: %w", err)
	}
	res := make(FeedbackCounts, len(rows))
	for _, row := range rows {
		res[domain.FeedbackKind(row.Kind)] = row.Count
	}
	return res, nil
}

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

// PostRepository handles channel posts, their engagement snapshots and experiment winner locks
type PostRepository struct {
	db *sqlx.DB
}

type postSQL struct {
	ID          string         `db:"id"`
	ItemID      string         `db:"item_id"`
	Experiment  string         `db:"experiment"`
	TextA       string         `db:"text_a"`
	TextB       string         `db:"text_b"`
	Variant     string         `db:"variant"`
	MessageID   string         `db:"message_id"`
	CreatedAt   string         `db:"created_at"`
	PublishedAt sql.NullString `db:"published_at"`
}

type metricsSQL struct {
	PostID     string `db:"post_id"`
	Variant    string `db:"variant"`
	Reactions  int    `db:"reactions"`
	Forwards   int    `db:"forwards"`
	Clicks     int    `db:"clicks"`
	UnsubDelta int    `db:"unsub_delta"`
	CapturedAt string `db:"captured_at"`
}

type lockSQL struct {
	Experiment string  `db:"experiment"`
	PostID     string  `db:"post_id"`
	Variant    string  `db:"variant"`
	Reason     string  `db:"reason"`
	ScoreA     float64 `db:"score_a"`
	ScoreB     float64 `db:"score_b"`
	LockedAt   string  `db:"locked_at"`
}

type tallySQL struct {
	Variant    string `db:"variant"`
	Posts      int    `db:"posts"`
	Reactions  int    `db:"reactions"`
	Forwards   int    `db:"forwards"`
	Clicks     int    `db:"clicks"`
	UnsubDelta int    `db:"unsub_delta"`
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// CreatePost inserts a new post
func (r *PostRepository) CreatePost(ctx context.Context, post domain.Post) error {
	row := postSQL{
		ID:         post.ID,
		ItemID:     post.ItemID,
		Experiment: post.ExperimentKey(),
		TextA:      post.TextA,
		TextB:      post.TextB,
		Variant:    string(post.Variant),
		MessageID:  post.MessageID,
		CreatedAt:  toDBTime(post.CreatedAt),
	}
	if post.PublishedAt != nil {
		row.PublishedAt = sql.NullString{String: toDBTime(*post.PublishedAt), Valid: true}
	}
	return retryOnLock(ctx, func() error {
		_, err := r.db.NamedExecContext(ctx, `
			INSERT INTO posts (id, item_id, experiment, text_a, text_b, variant, message_id, created_at, published_at)
			VALUES (:id, :item_id, :experiment, :text_a, :text_b, :variant, :message_id, :created_at, :published_at)`, row)
		if err != nil {
			return lockOrCritical(err, "create post")
		}
		return nil
	})
}

// DeletePost removes a post that was never delivered
func (r *PostRepository) DeletePost(ctx context.Context, id string) error {
	return retryOnLock(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ? AND published_at IS NULL", id); err != nil {
			return lockOrCritical(err, "delete post")
		}
		return nil
	})
}

// GetPost retrieves a post by id
func (r *PostRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	var row postSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM posts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get post %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	post, err := r.toDomain(row)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// AssignVariant sets the post variant unless one is already assigned.
// Returns the variant stored for the post after the call.
func (r *PostRepository) AssignVariant(ctx context.Context, postID string, v domain.Variant) (domain.Variant, error) {
	var res string
	err := retryOnLock(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "UPDATE posts SET variant = ? WHERE id = ? AND variant = ''", string(v), postID); err != nil {
			return lockOrCritical(err, "assign variant")
		}
		err := r.db.GetContext(ctx, &res, "SELECT variant FROM posts WHERE id = ?", postID)
		if errors.Is(err, sql.ErrNoRows) {
			return &criticalError{err: fmt.Errorf("assign variant to %s: %w", postID, domain.ErrNotFound)}
		}
		if err != nil {
			return lockOrCritical(err, "read assigned variant")
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return domain.Variant(res), nil
}

// MarkPublished records the delivery of a post
func (r *PostRepository) MarkPublished(ctx context.Context, postID, messageID string, at time.Time) error {
	return retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "UPDATE posts SET message_id = ?, published_at = ? WHERE id = ?",
			messageID, toDBTime(at), postID)
		if err != nil {
			return lockOrCritical(err, "mark post published")
		}
		return nil
	})
}

// ListPublished returns posts published at or after since, newest first
func (r *PostRepository) ListPublished(ctx context.Context, since time.Time) ([]domain.Post, error) {
	var rows []postSQL
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM posts WHERE published_at IS NOT NULL AND published_at >= ? ORDER BY published_at DESC",
		toDBTime(since))
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	res := make([]domain.Post, 0, len(rows))
	for _, row := range rows {
		post, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		res = append(res, post)
	}
	return res, nil
}

// RecentPostItems returns ids of items posted at or after since, including undelivered posts
func (r *PostRepository) RecentPostItems(ctx context.Context, since time.Time) (map[string]struct{}, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, "SELECT DISTINCT item_id FROM posts WHERE created_at >= ?", toDBTime(since)); err != nil {
		return nil, fmt.Errorf("get recent post items: %w", err)
	}
	res := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res, nil
}

// LastPublishedAt returns the time of the most recent delivered post, nil if none
func (r *PostRepository) LastPublishedAt(ctx context.Context) (*time.Time, error) {
	var last sql.NullString
	if err := r.db.GetContext(ctx, &last, "SELECT MAX(published_at) FROM posts"); err != nil {
		return nil, fmt.Errorf("get last published: %w", err)
	}
	return fromDBNullTime(last)
}

// CountPublished returns the number of posts published in [from, to)
func (r *PostRepository) CountPublished(ctx context.Context, from, to time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM posts WHERE published_at >= ? AND published_at < ?", toDBTime(from), toDBTime(to))
	if err != nil {
		return 0, fmt.Errorf("count published posts: %w", err)
	}
	return count, nil
}

// SaveMetrics stores an engagement snapshot of a post variant. Clicks are counted by the bot,
// so the snapshot never has fewer clicks than the latest stored one.
// The read of the latest clicks and the write are one statement.
func (r *PostRepository) SaveMetrics(ctx context.Context, postID string, v domain.Variant, m domain.EngagementMetrics) error {
	return retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO post_metrics (post_id, variant, reactions, forwards, clicks, unsub_delta, captured_at)
			SELECT ?, ?, ?, ?, MAX(?, COALESCE((
				SELECT clicks FROM post_metrics WHERE post_id = ? AND variant = ? ORDER BY captured_at DESC LIMIT 1
			), 0)), ?, ?
			WHERE 1
			ON CONFLICT(post_id, variant, captured_at) DO UPDATE SET
				reactions = excluded.reactions,
				forwards = excluded.forwards,
				clicks = MAX(post_metrics.clicks, excluded.clicks),
				unsub_delta = excluded.unsub_delta`,
			postID, string(v), m.Reactions, m.Forwards, m.Clicks, postID, string(v), m.UnsubDelta, toDBTime(m.CapturedAt))
		if err != nil {
			return lockOrCritical(err, "save post metrics")
		}
		return nil
	})
}

// SetClicks stores a snapshot with the total bot clicks of a post variant, other counters are
// carried forward from the latest snapshot. Clicks never go below the latest stored value,
// so setting the same total again changes nothing but the capture time.
func (r *PostRepository) SetClicks(ctx context.Context, postID string, v domain.Variant, clicks int, at time.Time) error {
	return retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO post_metrics (post_id, variant, reactions, forwards, clicks, unsub_delta, captured_at)
			SELECT ?, ?, COALESCE(l.reactions, 0), COALESCE(l.forwards, 0), MAX(?, COALESCE(l.clicks, 0)),
				COALESCE(l.unsub_delta, 0), ?
			FROM (SELECT 1) AS one
			LEFT JOIN (
				SELECT reactions, forwards, clicks, unsub_delta FROM post_metrics
				WHERE post_id = ? AND variant = ? ORDER BY captured_at DESC LIMIT 1
			) AS l ON 1
			WHERE 1
			ON CONFLICT(post_id, variant, captured_at) DO UPDATE SET clicks = MAX(post_metrics.clicks, excluded.clicks)`,
			postID, string(v), clicks, toDBTime(at), postID, string(v))
		if err != nil {
			return lockOrCritical(err, "set post clicks")
		}
		return nil
	})
}

// LatestMetrics returns the most recent snapshot of both variants of the post.
// A variant without snapshots has zero metrics.
func (r *PostRepository) LatestMetrics(ctx context.Context, postID string) (domain.PostMetrics, error) {
	var rows []metricsSQL
	err := r.db.SelectContext(ctx, &rows, `
		SELECT m.* FROM post_metrics m
		WHERE m.post_id = ? AND m.captured_at = (
			SELECT MAX(captured_at) FROM post_metrics WHERE post_id = m.post_id AND variant = m.variant
		)`, postID)
	if err != nil {
		return domain.PostMetrics{}, fmt.Errorf("get latest metrics: %w", err)
	}

	res := domain.PostMetrics{PostID: postID}
	for _, row := range rows {
		captured, err := fromDBTime(row.CapturedAt)
		if err != nil {
			return domain.PostMetrics{}, fmt.Errorf("metrics of %s captured_at: %w", postID, err)
		}
		m := domain.EngagementMetrics{Reactions: row.Reactions, Forwards: row.Forwards, Clicks: row.Clicks,
			UnsubDelta: row.UnsubDelta, CapturedAt: captured}
		switch domain.Variant(row.Variant) {
		case domain.VariantA:
			res.A = m
		case domain.VariantB:
			res.B = m
		}
	}
	return res, nil
}

// SaveScores stores the computed per-variant scores of a post
func (r *PostRepository) SaveScores(ctx context.Context, postID string, scoreA, scoreB float64, at time.Time) error {
	return retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO post_scores (post_id, score_a, score_b, computed_at) VALUES (?, ?, ?, ?)
			ON CONFLICT(post_id) DO UPDATE SET score_a = excluded.score_a, score_b = excluded.score_b,
				computed_at = excluded.computed_at`, postID, scoreA, scoreB, toDBTime(at))
		if err != nil {
			return lockOrCritical(err, "save post scores")
		}
		return nil
	})
}

// VariantTotals sums the latest snapshot of every published post of the experiment per the variant
// the post was published with. Snapshots of the other variant of a post are ignored.
func (r *PostRepository) VariantTotals(ctx context.Context, experiment string) (domain.ExperimentTally, error) {
	var rows []tallySQL
	err := r.db.SelectContext(ctx, &rows, `
		SELECT p.variant AS variant, COUNT(*) AS posts,
			COALESCE(SUM(m.reactions), 0) AS reactions,
			COALESCE(SUM(m.forwards), 0) AS forwards,
			COALESCE(SUM(m.clicks), 0) AS clicks,
			COALESCE(SUM(m.unsub_delta), 0) AS unsub_delta
		FROM posts p
		LEFT JOIN post_metrics m ON m.post_id = p.id AND m.variant = p.variant AND m.captured_at = (
			SELECT MAX(captured_at) FROM post_metrics WHERE post_id = p.id AND variant = p.variant
		)
		WHERE p.experiment = ? AND p.published_at IS NOT NULL AND p.variant IN ('a', 'b')
		GROUP BY p.variant`, experiment)
	if err != nil {
		return domain.ExperimentTally{}, fmt.Errorf("get variant totals of %s: %w", experiment, err)
	}

	res := domain.ExperimentTally{Experiment: experiment}
	for _, row := range rows {
		t := domain.VariantTally{Posts: row.Posts, Metrics: domain.EngagementMetrics{Reactions: row.Reactions,
			Forwards: row.Forwards, Clicks: row.Clicks, UnsubDelta: row.UnsubDelta}}
		if domain.Variant(row.Variant) == domain.VariantB {
			res.B = t
			continue
		}
		res.A = t
	}
	return res, nil
}

// IncrementEvaluations bumps the undecided evaluation counter of an experiment and returns the new value
func (r *PostRepository) IncrementEvaluations(ctx context.Context, experiment string, at time.Time) (int, error) {
	var count int
	err := retryOnLock(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return lockOrCritical(err, "begin transaction")
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		_, err = tx.ExecContext(ctx, `
			INSERT INTO experiment_evaluations (experiment, count, last_at) VALUES (?, 1, ?)
			ON CONFLICT(experiment) DO UPDATE SET count = count + 1, last_at = excluded.last_at`, experiment, toDBTime(at))
		if err != nil {
			return lockOrCritical(err, "increment evaluations")
		}
		if err := tx.GetContext(ctx, &count, "SELECT count FROM experiment_evaluations WHERE experiment = ?", experiment); err != nil {
			return lockOrCritical(err, "read evaluations")
		}
		if err := tx.Commit(); err != nil {
			return lockOrCritical(err, "commit evaluations")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// GetWinnerLock returns the winner lock of an experiment, nil if the experiment is not locked
func (r *PostRepository) GetWinnerLock(ctx context.Context, experiment string) (*domain.WinnerLock, error) {
	var row lockSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM winner_locks WHERE experiment = ?", experiment)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get winner lock: %w", err)
	}
	locked, err := fromDBTime(row.LockedAt)
	if err != nil {
		return nil, fmt.Errorf("lock of %s locked_at: %w", experiment, err)
	}
	return &domain.WinnerLock{Experiment: row.Experiment, PostID: row.PostID, Variant: domain.Variant(row.Variant),
		Reason: domain.LockReason(row.Reason), ScoreA: row.ScoreA, ScoreB: row.ScoreB, LockedAt: locked}, nil
}

// InsertWinnerLock writes the lock unless the experiment is already locked.
// Returns the lock stored for the experiment and whether this call created it.
func (r *PostRepository) InsertWinnerLock(ctx context.Context, lock domain.WinnerLock) (domain.WinnerLock, bool, error) {
	row := lockSQL{Experiment: lock.Experiment, PostID: lock.PostID, Variant: string(lock.Variant), Reason: string(lock.Reason),
		ScoreA: lock.ScoreA, ScoreB: lock.ScoreB, LockedAt: toDBTime(lock.LockedAt)}

	var inserted bool
	err := retryOnLock(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, `
			INSERT INTO winner_locks (experiment, post_id, variant, reason, score_a, score_b, locked_at)
			VALUES (:experiment, :post_id, :variant, :reason, :score_a, :score_b, :locked_at)
			ON CONFLICT(experiment) DO NOTHING`, row)
		if err != nil {
			return lockOrCritical(err, "insert winner lock")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		inserted = n > 0
		return nil
	})
	if err != nil {
		return domain.WinnerLock{}, false, err
	}
	if inserted {
		return lock, true, nil
	}

	existing, err := r.GetWinnerLock(ctx, lock.Experiment)
	if err != nil {
		return domain.WinnerLock{}, false, err
	}
	if existing == nil {
		return domain.WinnerLock{}, false, fmt.Errorf("winner lock of %s vanished", lock.Experiment)
	}
	return *existing, false, nil
}

func (r *PostRepository) toDomain(row postSQL) (domain.Post, error) {
	created, err := fromDBTime(row.CreatedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post %s created_at: %w", row.ID, err)
	}
	published, err := fromDBNullTime(row.PublishedAt)
	if err != nil {
		return domain.Post{}, fmt.Errorf("post %s published_at: %w", row.ID, err)
	}
	return domain.Post{
		ID:          row.ID,
		ItemID:      row.ItemID,
		Experiment:  row.Experiment,
		TextA:       row.TextA,
		TextB:       row.TextB,
		Variant:     domain.Variant(row.Variant),
		MessageID:   row.MessageID,
		CreatedAt:   created,
		PublishedAt: published,
	}, nil
}

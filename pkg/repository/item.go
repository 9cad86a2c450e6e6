package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/onepick/pkg/domain"
)

// ItemRepository handles catalog item database operations
type ItemRepository struct {
	db *sqlx.DB
}

// itemSQL represents an item row
type itemSQL struct {
	ID          string  `db:"id"`
	Type        string  `db:"type"`
	Title       string  `db:"title"`
	Tags        string  `db:"tags"`
	Mood        string  `db:"mood"`
	Pace        string  `db:"pace"`
	Intensity   int     `db:"intensity"`
	BaseScore   float64 `db:"base_score"`
	Meta        string  `db:"meta"`
	VoteAverage float64 `db:"vote_average"`
	VoteCount   int     `db:"vote_count"`
	Popularity  float64 `db:"popularity"`
	UpdatedAt   string  `db:"updated_at"`
}

// NewItemRepository creates a new item repository
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// UpsertItems inserts new items and refreshes existing ones in a single transaction.
// Items missing from the batch are left untouched.
func (r *ItemRepository) UpsertItems(ctx context.Context, items []domain.Item) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	rows := make([]itemSQL, 0, len(items))
	for _, item := range items {
		row, err := r.toSQL(item)
		if err != nil {
			return 0, err
		}
		rows = append(rows, row)
	}

	query := `
		INSERT INTO items (id, type, title, tags, mood, pace, intensity, base_score, meta,
			vote_average, vote_count, popularity, updated_at)
		VALUES (:id, :type, :title, :tags, :mood, :pace, :intensity, :base_score, :meta,
			:vote_average, :vote_count, :popularity, :updated_at)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			tags = excluded.tags,
			mood = excluded.mood,
			pace = excluded.pace,
			intensity = excluded.intensity,
			base_score = excluded.base_score,
			meta = excluded.meta,
			vote_average = excluded.vote_average,
			vote_count = excluded.vote_count,
			popularity = excluded.popularity,
			updated_at = excluded.updated_at
	`

	err := retryOnLock(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return lockOrCritical(err, "begin transaction")
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for _, row := range rows {
			if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
				return lockOrCritical(err, "upsert item "+row.ID)
			}
		}
		if err := tx.Commit(); err != nil {
			return lockOrCritical(err, "commit items")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// GetItem retrieves an item by id
func (r *ItemRepository) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var row itemSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM items WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get item %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	item, err := r.toDomain(row)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListCandidates returns items of the requested type whose mood matches the filter
// or is not set. Excluded ids are removed, the result is ordered by id.
func (r *ItemRepository) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]domain.Item, error) {
	query := `SELECT * FROM items WHERE type = ?`
	args := []any{string(filter.Type)}
	if filter.Mood != "" {
		query += ` AND (mood = ? OR mood = '')`
		args = append(args, string(filter.Mood))
	}
	query += ` ORDER BY id`

	var rows []itemSQL
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	res := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		if _, skip := filter.Exclude[row.ID]; skip {
			continue
		}
		item, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
		if filter.Limit > 0 && len(res) >= filter.Limit {
			break
		}
	}
	return res, nil
}

// TopItems returns the best scored items not in the exclusion set
func (r *ItemRepository) TopItems(ctx context.Context, limit int, exclude map[string]struct{}) ([]domain.Item, error) {
	var rows []itemSQL
	// over-fetch so exclusions don't starve the result
	query := `SELECT * FROM items ORDER BY base_score DESC, id LIMIT ?`
	if err := r.db.SelectContext(ctx, &rows, query, limit+len(exclude)); err != nil {
		return nil, fmt.Errorf("get top items: %w", err)
	}

	res := make([]domain.Item, 0, limit)
	for _, row := range rows {
		if _, skip := exclude[row.ID]; skip {
			continue
		}
		item, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
		if len(res) >= limit {
			break
		}
	}
	return res, nil
}

// ListItems returns the whole catalog ordered by id
func (r *ItemRepository) ListItems(ctx context.Context) ([]domain.Item, error) {
	var rows []itemSQL
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM items ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	res := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		item, err := r.toDomain(row)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

// RefreshBaseScores updates base scores of existing items and returns the number of updated rows.
// Unknown ids are ignored.
func (r *ItemRepository) RefreshBaseScores(ctx context.Context, scores map[string]float64) (int, error) {
	if len(scores) == 0 {
		return 0, nil
	}
	var updated int
	err := retryOnLock(ctx, func() error {
		updated = 0
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return lockOrCritical(err, "begin transaction")
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		for id, score := range scores {
			res, err := tx.ExecContext(ctx, "UPDATE items SET base_score = ? WHERE id = ?", score, id)
			if err != nil {
				return lockOrCritical(err, "refresh base score of "+id)
			}
			n, err := res.RowsAffected()
			if err != nil {
				return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
			}
			updated += int(n)
		}
		if err := tx.Commit(); err != nil {
			return lockOrCritical(err, "commit base scores")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// CountItems returns the number of items in the catalog
func (r *ItemRepository) CountItems(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items"); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

func (r *ItemRepository) toSQL(item domain.Item) (itemSQL, error) {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return itemSQL{}, fmt.Errorf("marshal tags of %s: %w", item.ID, err)
	}
	meta := item.Meta
	if meta == nil {
		meta = map[string]string{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return itemSQL{}, fmt.Errorf("marshal meta of %s: %w", item.ID, err)
	}
	return itemSQL{
		ID:          item.ID,
		Type:        string(item.Type),
		Title:       item.Title,
		Tags:        string(tagsJSON),
		Mood:        string(item.Mood),
		Pace:        string(item.Pace),
		Intensity:   item.Intensity,
		BaseScore:   item.BaseScore,
		Meta:        string(metaJSON),
		VoteAverage: item.VoteAverage,
		VoteCount:   item.VoteCount,
		Popularity:  item.Popularity,
		UpdatedAt:   toDBTime(item.UpdatedAt),
	}, nil
}

func (r *ItemRepository) toDomain(row itemSQL) (domain.Item, error) {
	item := domain.Item{
		ID:          row.ID,
		Type:        domain.ItemType(row.Type),
		Title:       row.Title,
		Mood:        domain.Mood(row.Mood),
		Pace:        domain.Pace(row.Pace),
		Intensity:   row.Intensity,
		BaseScore:   row.BaseScore,
		VoteAverage: row.VoteAverage,
		VoteCount:   row.VoteCount,
		Popularity:  row.Popularity,
	}
	if err := json.Unmarshal([]byte(row.Tags), &item.Tags); err != nil {
		return domain.Item{}, fmt.Errorf("unmarshal tags of %s: %w", row.ID, err)
	}
	if err := json.Unmarshal([]byte(row.Meta), &item.Meta); err != nil {
		return domain.Item{}, fmt.Errorf("unmarshal meta of %s: %w", row.ID, err)
	}
	updated, err := fromDBTime(row.UpdatedAt)
	if err != nil {
		return domain.Item{}, fmt.Errorf("item %s updated_at: %w", row.ID, err)
	}
	item.UpdatedAt = updated
	return item, nil
}

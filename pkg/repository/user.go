package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/onepick/pkg/domain"
)

// UserRepository handles per-user state: learned weights, dismissed and favorite items
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetWeights returns the learned tag weights of the user, empty if none recorded
func (r *UserRepository) GetWeights(ctx context.Context, userID string) (domain.Weights, error) {
	var rows []struct {
		Tag    string  `db:"tag"`
		Weight float64 `db:"weight"`
	}
	if err := r.db.SelectContext(ctx, &rows, "SELECT tag, weight FROM user_weights WHERE user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("get weights: %w", err)
	}
	res := make(domain.Weights, len(rows))
	for _, row := range rows {
		res[row.Tag] = row.Weight
	}
	return res, nil
}

// DismissItem marks the item as never to be recommended to the user again
func (r *UserRepository) DismissItem(ctx context.Context, userID, itemID string, at time.Time) error {
	return retryOnLock(ctx, func() error {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO dismissed_items (user_id, item_id, created_at) VALUES (?, ?, ?)
			ON CONFLICT(user_id, item_id) DO NOTHING`, userID, itemID, toDBTime(at))
		if err != nil {
			return lockOrCritical(err, "dismiss item")
		}
		return nil
	})
}

// DismissedItems returns the set of item ids dismissed by the user
func (r *UserRepository) DismissedItems(ctx context.Context, userID string) (map[string]struct{}, error) {
	var ids []string
	if err := r.db.SelectContext(ctx, &ids, "SELECT item_id FROM dismissed_items WHERE user_id = ?", userID); err != nil {
		return nil, fmt.Errorf("get dismissed items: %w", err)
	}
	res := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		res[id] = struct{}{}
	}
	return res, nil
}

// AddFavorite keeps the item in the user favorites, returns false if it was there already
func (r *UserRepository) AddFavorite(ctx context.Context, userID, itemID string, at time.Time) (bool, error) {
	var added bool
	err := retryOnLock(ctx, func() error {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO favorites (user_id, item_id, created_at) VALUES (?, ?, ?)
			ON CONFLICT(user_id, item_id) DO NOTHING`, userID, itemID, toDBTime(at))
		if err != nil {
			return lockOrCritical(err, "add favorite")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get affected rows: %w", err)}
		}
		added = n > 0
		return nil
	})
	return added, err
}

// ListFavorites returns up to limit favorites of the user, newest first.
// Items gone from the catalog are listed with an empty title.
func (r *UserRepository) ListFavorites(ctx context.Context, userID string, limit int) ([]domain.Favorite, error) {
	var rows []struct {
		UserID    string `db:"user_id"`
		ItemID    string `db:"item_id"`
		Title     string `db:"title"`
		CreatedAt string `db:"created_at"`
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT f.user_id, f.item_id, COALESCE(i.title, '') AS title, f.created_at
		FROM favorites f LEFT JOIN items i ON i.id = f.item_id
		WHERE f.user_id = ? ORDER BY f.created_at DESC, f.item_id LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	res := make([]domain.Favorite, 0, len(rows))
	for _, row := range rows {
		created, err := fromDBTime(row.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("favorite %s created_at: %w", row.ItemID, err)
		}
		res = append(res, domain.Favorite{UserID: row.UserID, ItemID: row.ItemID, Title: row.Title, CreatedAt: created})
	}
	return res, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SettingRepository handles runtime key-value settings
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	return retryOnLock(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, query, key, value, toDBTime(time.Now())); err != nil {
			return lockOrCritical(err, "set setting")
		}
		return nil
	})
}

// GetTime retrieves a timestamp setting, nil if not set
func (r *SettingRepository) GetTime(ctx context.Context, key string) (*time.Time, error) {
	value, err := r.GetSetting(ctx, key)
	if err != nil {
		return nil, err
	}
	return fromDBNullTime(sql.NullString{String: value, Valid: value != ""})
}

// SetTime stores a timestamp setting in UTC
func (r *SettingRepository) SetTime(ctx context.Context, key string, t time.Time) error {
	return r.SetSetting(ctx, key, toDBTime(t))
}

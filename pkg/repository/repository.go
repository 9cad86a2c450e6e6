// Package repository persists catalog, users, recommendation history, channel posts, events,
// daily metrics and runtime settings in SQLite.
package repository

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

//go:embed schema.sql
var schema string

// DefaultDSN is used when the config leaves the DSN empty
const DefaultDSN = "file:onepick.db?cache=shared&mode=rwc&_txlock=immediate"

// connection level settings, busy_timeout makes writers wait instead of failing right away
var pragmas = []string{
	"foreign_keys = ON",
	"journal_mode = WAL",
	"synchronous = NORMAL",
	"temp_store = MEMORY",
	"busy_timeout = 5000",
}

// Config represents database configuration
type Config struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Repositories groups the repositories sharing one connection pool
type Repositories struct {
	Item    *ItemRepository
	User    *UserRepository
	History *HistoryRepository
	Post    *PostRepository
	Event   *EventRepository
	Metric  *MetricRepository
	Setting *SettingRepository
	DB      *sqlx.DB
}

// NewRepositories opens the database, applies the schema and makes all repositories.
// An in-memory database is limited to a single connection, otherwise every connection
// would see its own empty database.
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	if cfg.DSN == "" {
		cfg.DSN = DefaultDSN
	}
	if strings.Contains(cfg.DSN, ":memory:") {
		cfg.MaxOpenConns = 1
	}

	db, err := sqlx.Open("sqlite", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := prepare(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Item:    NewItemRepository(db),
		User:    NewUserRepository(db),
		History: NewHistoryRepository(db),
		Post:    NewPostRepository(db),
		Event:   NewEventRepository(db),
		Metric:  NewMetricRepository(db),
		Setting: NewSettingRepository(db),
		DB:      db,
	}, nil
}

// Close closes the connection pool
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database is reachable
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// prepare sets pragmas and creates missing tables and indexes
func prepare(ctx context.Context, db *sqlx.DB) error {
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, "PRAGMA "+p); err != nil {
			return fmt.Errorf("set pragma %s: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

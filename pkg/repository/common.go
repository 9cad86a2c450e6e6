package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/onepick/pkg/domain"
)

// dbTimeLayout is fixed-width so stored timestamps compare correctly as text
const dbTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// errCritical marks errors the repeater must not retry
var errCritical = errors.New("critical repository error")

// criticalError wraps an error to signal repeater to stop retrying
type criticalError struct {
	err error
}

func (e *criticalError) Error() string {
	return e.err.Error()
}

func (e *criticalError) Is(target error) bool {
	return target == errCritical
}

func (e *criticalError) Unwrap() error {
	return e.err
}

// isLockError checks if an error is a SQLite lock/busy error
func isLockError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "SQLITE_BUSY") ||
		strings.Contains(errStr, "database is locked") ||
		strings.Contains(errStr, "database table is locked")
}

// isConstraintError checks if an error is a primary key or unique violation
func isConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") ||
		strings.Contains(errStr, "constraint failed: UNIQUE")
}

// retryOnLock runs fn with backoff while it returns sqlite lock errors.
// fn signals non-retryable failures by wrapping them in criticalError.
func retryOnLock(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, fn, errCritical)
	var ce *criticalError
	if errors.As(err, &ce) {
		return ce.err
	}
	return err
}

// lockOrCritical keeps lock errors retryable and wraps everything else as critical
func lockOrCritical(err error, msg string) error {
	if isLockError(err) {
		return err // repeater will retry this
	}
	return &criticalError{err: fmt.Errorf("%s: %w", msg, err)}
}

func toDBTime(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

func fromDBTime(s string) (time.Time, error) {
	return domain.ParseTime(s)
}

func fromDBNullTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	t, err := fromDBTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar date format used for seeds and daily rollups
const DateLayout = "2006-01-02"

// layouts accepted by time.Parse but carrying no zone information
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTime parses RFC3339 timestamp and converts it to UTC.
// Timestamps without explicit offset are rejected with ErrAmbiguousTime.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("parse time: empty value")
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if _, perr := time.Parse(layout, s); perr == nil {
			return time.Time{}, fmt.Errorf("parse time %q: %w", s, ErrAmbiguousTime)
		}
	}
	return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
}

// FormatTime formats time as RFC3339 in UTC
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// LocalDate returns the calendar date of t in the given location
func LocalDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}

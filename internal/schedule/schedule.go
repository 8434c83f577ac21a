// Package schedule partitions the ticker universe into a 91-day rotation and
// tracks which bucket is due next.
package schedule

import (
	"errors"
	"fmt"
	"log/slog"

	"quicktick/internal/domain"
)

// ErrInvalidDay is returned for a day number outside [1, 91].
var ErrInvalidDay = errors.New("invalid day")

// Table is an ordered list of buckets; index 0 holds day 1.
type Table [][]string

// Bucket returns a copy of the tickers assigned to day. Day must satisfy
// 1 <= day <= len(t); there is no clamping.
func (t Table) Bucket(day int) ([]string, error) {
	if day < 1 || day > len(t) {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDay, day, len(t))
	}
	src := t[day-1]
	out := make([]string, len(src))
	copy(out, src)
	return out, nil
}

// Days returns the number of buckets in the table.
func (t Table) Days() int { return len(t) }

// GetBucket returns the tickers due on day from DefaultTable.
func GetBucket(day int) ([]string, error) {
	return DefaultTable.Bucket(day)
}

// ResolveToday returns the day whose run produced cursor: cursor-1, wrapping
// 0 to 91. Out-of-range cursors yield ErrInvalidDay.
func ResolveToday(cursor int) (int, error) {
	if cursor < 1 || cursor > domain.TotalDays {
		return 0, fmt.Errorf("%w: cursor %d", ErrInvalidDay, cursor)
	}
	day := cursor - 1
	if day == 0 {
		day = domain.TotalDays
	}
	return day, nil
}

// Advance returns the cursor value that follows day, wrapping 91 to 1.
func Advance(day int) (int, error) {
	if day < 1 || day > domain.TotalDays {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if day == domain.TotalDays {
		return 1, nil
	}
	return day + 1, nil
}

// CursorReader loads the persisted cursor value.
type CursorReader interface {
	Load() (int, error)
}

// DueDay returns the bucket the next run should process. An unreadable
// cursor falls back to day 1 with a warning.
func DueDay(cr CursorReader, log *slog.Logger) int {
	cursor, err := cr.Load()
	if err != nil {
		log.Warn("cursor unreadable, defaulting to day 1", "error", err)
		return 1
	}
	return cursor
}

// LastRunDay returns the bucket processed by the most recent run, i.e.
// ResolveToday of the persisted cursor. An unreadable cursor falls back to
// day 1 with a warning.
func LastRunDay(cr CursorReader, log *slog.Logger) int {
	cursor, err := cr.Load()
	if err != nil {
		log.Warn("cursor unreadable, defaulting to day 1", "error", err)
		return 1
	}
	day, err := ResolveToday(cursor)
	if err != nil {
		log.Warn("cursor out of range, defaulting to day 1", "cursor", cursor, "error", err)
		return 1
	}
	return day
}

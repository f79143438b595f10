// Package storage holds what the event stores share: the recent-events
// statement builder and column validation.
package storage

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sympohub/dashboard/internal/dashboard"
)

var (
	ErrUnsupportedField = errors.New("unsupported field")
	ErrInvalidLimit     = errors.New("invalid limit")
)

var eventColumns = map[string]struct{}{
	dashboard.FieldID:               {},
	dashboard.FieldName:             {},
	dashboard.FieldStartDate:        {},
	dashboard.FieldParticipantCount: {},
	dashboard.FieldStatus:           {},
}

// ValidateRecentEventsQuery checks that every projected and ordering column
// exists on the events table and the limit is positive.
func ValidateRecentEventsQuery(q dashboard.RecentEventsQuery) error {
	if len(q.Fields) == 0 {
		return fmt.Errorf("%w: empty projection", ErrUnsupportedField)
	}
	for _, field := range q.Fields {
		if _, ok := eventColumns[field]; !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedField, field)
		}
	}
	if _, ok := eventColumns[q.OrderBy]; !ok {
		return fmt.Errorf("%w: order by %q", ErrUnsupportedField, q.OrderBy)
	}
	if q.Limit <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLimit, q.Limit)
	}
	return nil
}

// RecentEventsSQL renders the SELECT for q. The limit is bound through
// limitParam ("$1" for Postgres, "?" for SQLite). Callers validate q first.
func RecentEventsSQL(q dashboard.RecentEventsQuery, limitParam string) string {
	direction := "ASC"
	if q.Descending {
		direction = "DESC"
	}
	return fmt.Sprintf(`
SELECT %s
FROM events
ORDER BY %s %s
LIMIT %s`, strings.Join(q.Fields, ", "), q.OrderBy, direction, limitParam)
}

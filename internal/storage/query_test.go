package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sympohub/dashboard/internal/dashboard"
)

func TestValidateRecentEventsQuery(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateRecentEventsQuery(dashboard.DefaultRecentEventsQuery()))

	q := dashboard.DefaultRecentEventsQuery()
	q.Fields = append(q.Fields, "password")
	assert.ErrorIs(t, ValidateRecentEventsQuery(q), ErrUnsupportedField)

	q = dashboard.DefaultRecentEventsQuery()
	q.OrderBy = "start_date; DROP TABLE events"
	assert.ErrorIs(t, ValidateRecentEventsQuery(q), ErrUnsupportedField)

	q = dashboard.DefaultRecentEventsQuery()
	q.Fields = nil
	assert.ErrorIs(t, ValidateRecentEventsQuery(q), ErrUnsupportedField)

	q = dashboard.DefaultRecentEventsQuery()
	q.Limit = 0
	assert.ErrorIs(t, ValidateRecentEventsQuery(q), ErrInvalidLimit)
}

func TestRecentEventsSQL(t *testing.T) {
	t.Parallel()

	stmt := RecentEventsSQL(dashboard.DefaultRecentEventsQuery(), "$1")
	assert.Contains(t, stmt, "SELECT id, name, start_date, participant_count, status")
	assert.Contains(t, stmt, "ORDER BY start_date DESC")
	assert.True(t, strings.HasSuffix(stmt, "LIMIT $1"))

	q := dashboard.DefaultRecentEventsQuery()
	q.Descending = false
	assert.Contains(t, RecentEventsSQL(q, "?"), "ORDER BY start_date ASC")
}

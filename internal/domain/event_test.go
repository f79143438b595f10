package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventStatus(t *testing.T) {
	t.Parallel()

	for _, status := range EventStatuses() {
		got, err := ParseEventStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, got)
		assert.True(t, status.Valid())
	}

	_, err := ParseEventStatus("archived")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
	assert.False(t, EventStatus("").Valid())
}

func TestEvent_StartDateString(t *testing.T) {
	t.Parallel()

	event := Event{StartDate: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2025-03-01", event.StartDateString())
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sympohub/dashboard/internal/clock"
	"github.com/sympohub/dashboard/internal/domain"
)

type recordingWriter struct {
	events []domain.Event
}

func (w *recordingWriter) CreateEvents(_ context.Context, events []domain.Event) error {
	w.events = append(w.events, events...)
	return nil
}

func TestSeed(t *testing.T) {
	w := &recordingWriter{}
	clk := clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))

	n, err := Seed(context.Background(), w, clk)
	require.NoError(t, err)
	assert.Equal(t, len(sampleEvents), n)
	require.Len(t, w.events, n)

	seen := map[string]bool{}
	for _, event := range w.events {
		assert.NotEmpty(t, event.Name)
		assert.True(t, event.Status.Valid())
		assert.GreaterOrEqual(t, event.ParticipantCount, 0)
		assert.False(t, seen[event.ID], "duplicate id %s", event.ID)
		seen[event.ID] = true
	}
	assert.Equal(t, "2025-03-15", w.events[0].StartDateString())
}

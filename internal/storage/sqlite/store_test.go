package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sympohub/dashboard/internal/dashboard"
	"github.com/sympohub/dashboard/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), "  ")
	assert.Error(t, err)
}

func TestStore_RecentEvents(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	events := []domain.Event{
		{ID: "e1", Name: "Winter Forum", StartDate: day(2025, 1, 20), ParticipantCount: 40, Status: domain.EventStatusCompleted},
		{ID: "e2", Name: "Symposium A", StartDate: day(2025, 3, 1), ParticipantCount: 120, Status: domain.EventStatusActive},
		{ID: "e3", Name: "Workshop", StartDate: day(2024, 11, 2), ParticipantCount: 15, Status: domain.EventStatusCancelled},
		{ID: "e4", Name: "Summit", StartDate: day(2025, 6, 10), ParticipantCount: 300, Status: domain.EventStatusPending},
		{ID: "e5", Name: "Meetup", StartDate: day(2025, 2, 2), ParticipantCount: 25, Status: domain.EventStatusActive},
	}
	require.NoError(t, store.CreateEvents(ctx, events))

	got, err := store.RecentEvents(ctx, dashboard.DefaultRecentEventsQuery())
	require.NoError(t, err)
	require.Len(t, got, 4)

	ids := make([]string, 0, len(got))
	for _, event := range got {
		ids = append(ids, event.ID)
	}
	assert.Equal(t, []string{"e4", "e2", "e5", "e1"}, ids)
	assert.Equal(t, "Symposium A", got[1].Name)
	assert.Equal(t, day(2025, 3, 1), got[1].StartDate)
	assert.Equal(t, 120, got[1].ParticipantCount)
	assert.Equal(t, domain.EventStatusActive, got[1].Status)
}

func TestStore_EmptyTable(t *testing.T) {
	store := openTestStore(t)

	got, err := store.RecentEvents(context.Background(), dashboard.DefaultRecentEventsQuery())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_CreateEventDuplicate(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	event := domain.Event{ID: "dup", Name: "Forum", StartDate: day(2025, 1, 1), Status: domain.EventStatusActive}
	require.NoError(t, store.CreateEvent(ctx, event))
	assert.ErrorIs(t, store.CreateEvent(ctx, event), domain.ErrEventAlreadyExists)

	listed, err := store.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestStore_CreateEventsRollsBack(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	events := []domain.Event{
		{ID: "ok", Name: "Forum", StartDate: day(2025, 1, 1), Status: domain.EventStatusActive},
		{ID: "bad", Name: "Broken", StartDate: day(2025, 1, 2), ParticipantCount: -1, Status: domain.EventStatusActive},
	}
	assert.Error(t, store.CreateEvents(ctx, events))

	listed, err := store.ListEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestStore_Ping(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Ping(context.Background()))

	require.NoError(t, store.Close())
	assert.Error(t, store.Ping(context.Background()))
}

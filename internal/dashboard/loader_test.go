package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/i18n"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLoader_IssuesFixedQuery(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	loader := NewLoader(src, nil)

	_, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, src.queries, 1)
	q := src.queries[0]
	assert.Equal(t, []string{"id", "name", "start_date", "participant_count", "status"}, q.Fields)
	assert.Equal(t, "start_date", q.OrderBy)
	assert.True(t, q.Descending)
	assert.Equal(t, 4, q.Limit)
}

func TestLoader_FailureNotifiesWithSourceMessage(t *testing.T) {
	t.Parallel()

	src := &fakeSource{err: errors.New("connection timeout")}
	recorder := &NotificationRecorder{}
	loader := NewLoader(src, recorder)

	events, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, events)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "connection timeout", loadErr.Message)
	assert.ErrorIs(t, err, src.err)

	notes := recorder.Notifications()
	require.Len(t, notes, 1)
	assert.Equal(t, VariantDestructive, notes[0].Variant)
	assert.Equal(t, "데이터 로드 실패", notes[0].Title)
	assert.Equal(t, "connection timeout", notes[0].Description)
}

func TestLoader_FailureTitleLocalized(t *testing.T) {
	t.Parallel()

	recorder := &NotificationRecorder{}
	loader := NewLoader(&fakeSource{err: errors.New("boom")}, recorder,
		WithPrinter(i18n.Printer(language.English)))

	_, err := loader.Load(context.Background())
	require.Error(t, err)
	require.Len(t, recorder.Notifications(), 1)
	assert.Equal(t, "Failed to load data", recorder.Notifications()[0].Title)
}

func TestLoader_CancelledContextDoesNotNotify(t *testing.T) {
	t.Parallel()

	src := &fakeSource{release: make(chan struct{})}
	recorder := &NotificationRecorder{}
	loader := NewLoader(src, recorder)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, recorder.Notifications())
}

func TestLoader_TruncatesOversizedResult(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	for i := 0; i < 6; i++ {
		src.events = append(src.events, domain.Event{
			ID:        string(rune('a' + i)),
			Name:      "Event",
			StartDate: day(2025, 1, 10-i),
			Status:    domain.EventStatusActive,
		})
	}

	events, err := NewLoader(src, nil).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, events, RecentEventsLimit)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "d", events[3].ID)
}

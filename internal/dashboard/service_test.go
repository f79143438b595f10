package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sympohub/dashboard/internal/i18n"
)

func TestService_ShellDoesNotQuery(t *testing.T) {
	t.Parallel()

	src := &fakeSource{events: sampleEvents(2)}
	svc := NewService(src, nil)

	page := svc.Shell(i18n.Printer(language.Korean))
	assert.Equal(t, StateLoading, page.Table.State)
	assert.Equal(t, "데이터를 불러오는 중...", page.Table.Placeholder)
	assert.Len(t, page.Tiles, 3)
	assert.Len(t, page.Actions, 3)
	assert.Zero(t, src.callCount())
}

func TestService_LoadEmpty(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeSource{}, nil)
	page, err := svc.Load(context.Background(), i18n.Printer(language.Korean))
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, page.Table.State)
	assert.False(t, page.Table.LoadFailed)
	assert.Empty(t, page.Notifications)
}

func TestService_LoadFailure(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeSource{err: errors.New("connection timeout")}, nil)
	page, err := svc.Load(context.Background(), i18n.Printer(language.Korean))
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, page.Table.State)
	require.Len(t, page.Notifications, 1)
	assert.Equal(t, "connection timeout", page.Notifications[0].Description)
}

func TestService_LoadCancelled(t *testing.T) {
	t.Parallel()

	src := &fakeSource{release: make(chan struct{})}
	svc := NewService(src, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.Load(ctx, i18n.Printer(language.Korean))
	assert.ErrorIs(t, err, context.Canceled)
}

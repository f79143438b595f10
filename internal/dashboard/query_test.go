package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/sympohub/dashboard/internal/i18n"
)

func TestWithQueryTimeout_Disabled(t *testing.T) {
	t.Parallel()

	src := &fakeSource{}
	assert.Same(t, src, WithQueryTimeout(src, 0))
}

func TestWithQueryTimeout_ReportsDeadlineAsLoadFailure(t *testing.T) {
	t.Parallel()

	src := &fakeSource{events: sampleEvents(1), release: make(chan struct{})}
	svc := NewService(WithQueryTimeout(src, 20*time.Millisecond), nil)

	page, err := svc.Load(context.Background(), i18n.Printer(language.Korean))
	require.NoError(t, err)
	assert.Equal(t, StateEmpty, page.Table.State)
	assert.True(t, page.Table.LoadFailed)
	require.Len(t, page.Notifications, 1)
	assert.Equal(t, context.DeadlineExceeded.Error(), page.Notifications[0].Description)
}

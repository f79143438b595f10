package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/i18n"
)

func TestIndicatorFor_CoversEveryStatus(t *testing.T) {
	t.Parallel()

	seenTones := map[Tone]bool{}
	for _, status := range domain.EventStatuses() {
		indicator, ok := IndicatorFor(status)
		assert.Truef(t, ok, "status %q has no indicator", status)
		assert.Equal(t, status, indicator.Status)
		assert.NotEmpty(t, indicator.LabelKey)
		seenTones[indicator.Tone] = true
	}
	assert.Len(t, seenTones, len(domain.EventStatuses()), "each status should have a distinct tone")
}

func TestIndicatorFor_Unknown(t *testing.T) {
	t.Parallel()

	indicator, ok := IndicatorFor(domain.EventStatus("archived"))
	assert.False(t, ok)
	assert.Equal(t, ToneNeutral, indicator.Tone)
	assert.Equal(t, "archived", indicator.LabelKey)
}

func TestIndicatorFor_LabelKeys(t *testing.T) {
	t.Parallel()

	want := map[domain.EventStatus]string{
		domain.EventStatusActive:    i18n.KeyStatusActive,
		domain.EventStatusPending:   i18n.KeyStatusPending,
		domain.EventStatusCompleted: i18n.KeyStatusCompleted,
		domain.EventStatusCancelled: i18n.KeyStatusCancelled,
	}
	for status, key := range want {
		indicator, _ := IndicatorFor(status)
		assert.Equal(t, key, indicator.LabelKey)
	}
}

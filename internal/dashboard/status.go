package dashboard

import (
	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/i18n"
)

// Tone selects the visual treatment of a status indicator.
type Tone string

const (
	ToneSuccess     Tone = "success"
	ToneWarning     Tone = "warning"
	ToneNeutral     Tone = "neutral"
	ToneDestructive Tone = "destructive"
)

// StatusIndicator is the display treatment for an event status.
type StatusIndicator struct {
	Status   domain.EventStatus `json:"status"`
	LabelKey string             `json:"-"`
	Label    string             `json:"label"`
	Tone     Tone               `json:"tone"`
}

// IndicatorFor maps a status to its indicator. Every value returned by
// domain.EventStatuses must have a case here; ok is false otherwise.
func IndicatorFor(status domain.EventStatus) (StatusIndicator, bool) {
	switch status {
	case domain.EventStatusActive:
		return StatusIndicator{Status: status, LabelKey: i18n.KeyStatusActive, Tone: ToneSuccess}, true
	case domain.EventStatusPending:
		return StatusIndicator{Status: status, LabelKey: i18n.KeyStatusPending, Tone: ToneWarning}, true
	case domain.EventStatusCompleted:
		return StatusIndicator{Status: status, LabelKey: i18n.KeyStatusCompleted, Tone: ToneNeutral}, true
	case domain.EventStatusCancelled:
		return StatusIndicator{Status: status, LabelKey: i18n.KeyStatusCancelled, Tone: ToneDestructive}, true
	}
	return StatusIndicator{Status: status, LabelKey: string(status), Tone: ToneNeutral}, false
}

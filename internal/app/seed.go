package app

import (
	"context"
	"fmt"

	"github.com/sympohub/dashboard/internal/clock"
	"github.com/sympohub/dashboard/internal/domain"
)

// EventWriter stores events in bulk.
type EventWriter interface {
	CreateEvents(ctx context.Context, events []domain.Event) error
}

var sampleEvents = []struct {
	name         string
	offsetDays   int
	participants int
	status       domain.EventStatus
}{
	{"2025 춘계 학술 심포지엄", 14, 120, domain.EventStatusPending},
	{"국제 의료기기 컨퍼런스", 3, 340, domain.EventStatusActive},
	{"신약 개발 워크숍", -10, 85, domain.EventStatusCompleted},
	{"디지털 헬스케어 포럼", -21, 210, domain.EventStatusCompleted},
	{"연구자 네트워킹 데이", -35, 60, domain.EventStatusCancelled},
}

// SampleEvents builds the demo data set around the clock's current date.
func SampleEvents(clk clock.Clock) []domain.Event {
	today := clock.Today(clk)
	events := make([]domain.Event, 0, len(sampleEvents))
	for _, s := range sampleEvents {
		events = append(events, domain.Event{
			ID:               newUUID(),
			Name:             s.name,
			StartDate:        today.AddDate(0, 0, s.offsetDays),
			ParticipantCount: s.participants,
			Status:           s.status,
		})
	}
	return events
}

// Seed writes the sample events and returns how many were stored.
func Seed(ctx context.Context, w EventWriter, clk clock.Clock) (int, error) {
	events := SampleEvents(clk)
	if err := w.CreateEvents(ctx, events); err != nil {
		return 0, fmt.Errorf("seed events: %w", err)
	}
	return len(events), nil
}

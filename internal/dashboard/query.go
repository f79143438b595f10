package dashboard

import (
	"context"
	"time"

	"github.com/sympohub/dashboard/internal/domain"
)

// RecentEventsLimit caps the number of events shown on the dashboard.
const RecentEventsLimit = 4

// Projected event columns.
const (
	FieldID               = "id"
	FieldName             = "name"
	FieldStartDate        = "start_date"
	FieldParticipantCount = "participant_count"
	FieldStatus           = "status"
)

// RecentEventsQuery describes the read the loader issues: a projection,
// a single sort key and a row limit.
type RecentEventsQuery struct {
	Fields     []string
	OrderBy    string
	Descending bool
	Limit      int
}

// DefaultRecentEventsQuery returns the fixed dashboard query shape.
func DefaultRecentEventsQuery() RecentEventsQuery {
	return RecentEventsQuery{
		Fields: []string{
			FieldID,
			FieldName,
			FieldStartDate,
			FieldParticipantCount,
			FieldStatus,
		},
		OrderBy:    FieldStartDate,
		Descending: true,
		Limit:      RecentEventsLimit,
	}
}

// EventSource is the read-only query capability over the events collection.
type EventSource interface {
	RecentEvents(ctx context.Context, q RecentEventsQuery) ([]domain.Event, error)
}

type timeoutSource struct {
	source  EventSource
	timeout time.Duration
}

// WithQueryTimeout bounds every RecentEvents call on source by d. A deadline
// hit surfaces as a store error, so it is reported like any other failure.
// A non-positive d returns source unchanged.
func WithQueryTimeout(source EventSource, d time.Duration) EventSource {
	if d <= 0 {
		return source
	}
	return &timeoutSource{source: source, timeout: d}
}

func (s *timeoutSource) RecentEvents(ctx context.Context, q RecentEventsQuery) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.source.RecentEvents(ctx, q)
}

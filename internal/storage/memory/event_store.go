// Package memory is an in-process event store for demos and tests.
package memory

import (
	"cmp"
	"context"
	"sort"
	"sync"

	"github.com/sympohub/dashboard/internal/dashboard"
	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/storage"
)

type EventStore struct {
	sync.RWMutex
	events map[string]domain.Event
	order  []string
}

var _ dashboard.EventSource = (*EventStore)(nil)

func NewEventStore() *EventStore {
	return &EventStore{events: make(map[string]domain.Event)}
}

func (s *EventStore) CreateEvent(_ context.Context, event domain.Event) error {
	s.Lock()
	defer s.Unlock()

	if event.ID == "" {
		return domain.ErrInvalidID
	}
	if _, ok := s.events[event.ID]; ok {
		return domain.ErrEventAlreadyExists
	}
	s.events[event.ID] = event
	s.order = append(s.order, event.ID)
	return nil
}

func (s *EventStore) CreateEvents(ctx context.Context, events []domain.Event) error {
	for _, event := range events {
		if err := s.CreateEvent(ctx, event); err != nil {
			return err
		}
	}
	return nil
}

func (s *EventStore) ListEvents(_ context.Context) ([]domain.Event, error) {
	s.RLock()
	defer s.RUnlock()
	return s.sortedLocked(dashboard.FieldStartDate, true), nil
}

// RecentEvents implements dashboard.EventSource. Unprojected fields are
// left at their zero value, matching the SQL stores.
func (s *EventStore) RecentEvents(ctx context.Context, q dashboard.RecentEventsQuery) ([]domain.Event, error) {
	if err := storage.ValidateRecentEventsQuery(q); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.RLock()
	sorted := s.sortedLocked(q.OrderBy, q.Descending)
	s.RUnlock()

	if len(sorted) > q.Limit {
		sorted = sorted[:q.Limit]
	}
	out := make([]domain.Event, 0, len(sorted))
	for _, event := range sorted {
		out = append(out, project(event, q.Fields))
	}
	return out, nil
}

// sortedLocked orders by the orderBy column; ties keep insertion order,
// newest first.
func (s *EventStore) sortedLocked(orderBy string, descending bool) []domain.Event {
	out := make([]domain.Event, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.events[s.order[i]])
	}
	sort.SliceStable(out, func(i, j int) bool {
		c := compareBy(orderBy, out[i], out[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareBy(orderBy string, a, b domain.Event) int {
	switch orderBy {
	case dashboard.FieldID:
		return cmp.Compare(a.ID, b.ID)
	case dashboard.FieldName:
		return cmp.Compare(a.Name, b.Name)
	case dashboard.FieldParticipantCount:
		return cmp.Compare(a.ParticipantCount, b.ParticipantCount)
	case dashboard.FieldStatus:
		return cmp.Compare(a.Status, b.Status)
	default:
		return a.StartDate.Compare(b.StartDate)
	}
}

func project(event domain.Event, fields []string) domain.Event {
	var out domain.Event
	for _, field := range fields {
		switch field {
		case dashboard.FieldID:
			out.ID = event.ID
		case dashboard.FieldName:
			out.Name = event.Name
		case dashboard.FieldStartDate:
			out.StartDate = event.StartDate
		case dashboard.FieldParticipantCount:
			out.ParticipantCount = event.ParticipantCount
		case dashboard.FieldStatus:
			out.Status = event.Status
		}
	}
	return out
}

package dashboard

import (
	"context"
	"sync"

	"github.com/sympohub/dashboard/internal/domain"
)

type fakeSource struct {
	mu          sync.Mutex
	events      []domain.Event
	err         error
	release     chan struct{}
	queries     []RecentEventsQuery
	calls       int
	inFlight    int
	maxInFlight int
}

func (f *fakeSource) RecentEvents(ctx context.Context, q RecentEventsQuery) ([]domain.Event, error) {
	f.mu.Lock()
	f.calls++
	f.queries = append(f.queries, q)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	release := f.release
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if release != nil {
		select {
		case <-release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Event, len(f.events))
	copy(out, f.events)
	return out, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSource) peakInFlight() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxInFlight
}

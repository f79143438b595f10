package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"golang.org/x/text/message"

	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/i18n"
)

var (
	// ErrAlreadyActive is returned by Activate while an activation is held.
	ErrAlreadyActive = errors.New("view already active")
	// ErrNotActive is returned by Wait when there is nothing to wait for.
	ErrNotActive = errors.New("view not active")
)

// State is the render state of the recent-events table.
type State int

const (
	StateLoading State = iota
	StateEmpty
	StatePopulated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// MarshalText renders the state name in JSON payloads.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EventLoader runs the single read behind an activation.
type EventLoader interface {
	Load(ctx context.Context) ([]domain.Event, error)
}

// Row is one rendered table row.
type Row struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Date         string          `json:"date"`
	Participants string          `json:"participants"`
	Status       StatusIndicator `json:"status"`
}

// Snapshot is what the table shows at a point in time. Placeholder is set
// (and Rows empty) in the loading and empty states.
type Snapshot struct {
	State       State  `json:"state"`
	Rows        []Row  `json:"rows"`
	Placeholder string `json:"placeholder,omitempty"`
	LoadFailed  bool   `json:"load_failed"`
}

type activation struct {
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// View is the recent-events summary bound to at most one activation at a
// time. State only changes in response to the current activation's load.
type View struct {
	loader  EventLoader
	printer *message.Printer
	logger  *slog.Logger

	mu      sync.Mutex
	state   State
	events  []domain.Event
	failed  bool
	current *activation
	last    *activation
}

// ViewOption configures a View.
type ViewOption func(*View)

// WithViewPrinter sets the printer used for placeholders and row cells.
func WithViewPrinter(p *message.Printer) ViewOption {
	return func(v *View) {
		if p != nil {
			v.printer = p
		}
	}
}

// WithViewLogger sets the view logger.
func WithViewLogger(logger *slog.Logger) ViewOption {
	return func(v *View) {
		if logger != nil {
			v.logger = logger
		}
	}
}

// NewView returns a view in the loading state.
func NewView(loader EventLoader, opts ...ViewOption) *View {
	v := &View{
		loader:  loader,
		printer: i18n.Printer(i18n.Default()),
		logger:  slog.Default(),
		state:   StateLoading,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.logger = v.logger.With(slog.String("component", "dashboard_view"))
	return v
}

// Activate starts an activation and issues its load in the background.
// The view returns to the loading state. The load of a previous activation,
// if still running, finishes before the new one is issued.
func (v *View) Activate(ctx context.Context) error {
	v.mu.Lock()
	if v.current != nil {
		v.mu.Unlock()
		return ErrAlreadyActive
	}

	actCtx, cancel := context.WithCancel(ctx)
	act := &activation{ctx: actCtx, cancel: cancel, done: make(chan struct{})}
	prev := v.last
	v.current = act
	v.last = act
	v.state = StateLoading
	v.events = nil
	v.failed = false
	v.mu.Unlock()

	go v.run(act, prev)
	return nil
}

// Deactivate releases the current activation. A load still in flight is
// cancelled and its result discarded.
func (v *View) Deactivate() {
	v.mu.Lock()
	act := v.current
	v.current = nil
	v.mu.Unlock()

	if act != nil {
		act.cancel()
	}
}

// Wait blocks until the current activation's load has settled.
func (v *View) Wait(ctx context.Context) error {
	v.mu.Lock()
	act := v.current
	v.mu.Unlock()
	if act == nil {
		return ErrNotActive
	}

	select {
	case <-act.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the current render state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Snapshot renders the current state into table content.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	state := v.state
	events := v.events
	failed := v.failed
	v.mu.Unlock()

	snap := Snapshot{State: state, LoadFailed: failed, Rows: []Row{}}
	switch state {
	case StateLoading:
		snap.Placeholder = v.printer.Sprintf(i18n.KeyTableLoading)
	case StateEmpty:
		snap.Placeholder = v.printer.Sprintf(i18n.KeyTableEmpty)
	case StatePopulated:
		snap.Rows = make([]Row, 0, len(events))
		for _, event := range events {
			snap.Rows = append(snap.Rows, v.row(event))
		}
	}
	return snap
}

func (v *View) row(event domain.Event) Row {
	indicator, ok := IndicatorFor(event.Status)
	if !ok {
		v.logger.Warn("unknown event status", "event_id", event.ID, "status", string(event.Status))
	}
	indicator.Label = v.printer.Sprintf(indicator.LabelKey)

	return Row{
		ID:           event.ID,
		Name:         event.Name,
		Date:         event.StartDateString(),
		Participants: v.printer.Sprintf(i18n.KeyParticipantCount, strconv.Itoa(event.ParticipantCount)),
		Status:       indicator,
	}
}

func (v *View) run(act, prev *activation) {
	defer close(act.done)

	if prev != nil {
		select {
		case <-prev.done:
		case <-act.ctx.Done():
			return
		}
	}

	events, err := v.loader.Load(act.ctx)
	v.apply(act, events, err)
}

func (v *View) apply(act *activation, events []domain.Event, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.current != act || act.ctx.Err() != nil {
		v.logger.Debug("discarding load result for inactive view")
		return
	}

	if err != nil {
		v.failed = true
		v.events = nil
		v.state = StateEmpty
		return
	}

	v.events = events
	if len(events) == 0 {
		v.state = StateEmpty
		return
	}
	v.state = StatePopulated
}

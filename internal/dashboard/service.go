package dashboard

import (
	"context"
	"log/slog"

	"golang.org/x/text/message"
)

// Page is everything the dashboard screen renders.
type Page struct {
	Tiles         []Tile         `json:"tiles"`
	Actions       []QuickAction  `json:"actions"`
	Table         Snapshot       `json:"table"`
	Notifications []Notification `json:"notifications"`
}

// Service assembles dashboard pages over an event source.
type Service struct {
	source    EventSource
	logger    *slog.Logger
	overrides []TileOverride
}

// NewService returns a dashboard service reading from source.
func NewService(source EventSource, logger *slog.Logger, overrides ...TileOverride) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		source:    source,
		logger:    logger,
		overrides: overrides,
	}
}

// Shell returns the page in its initial loading state without touching the
// event source.
func (s *Service) Shell(p *message.Printer) Page {
	view := NewView(nil, WithViewPrinter(p), WithViewLogger(s.logger))
	return Page{
		Tiles:         StaticTiles(p, s.overrides...),
		Actions:       QuickActions(p),
		Table:         view.Snapshot(),
		Notifications: []Notification{},
	}
}

// Load runs one activation bound to ctx and returns the settled page.
// The error is non-nil only when ctx ends before the load settles; a failed
// load is reported through Page.Notifications and an empty table.
func (s *Service) Load(ctx context.Context, p *message.Printer) (Page, error) {
	recorder := &NotificationRecorder{}
	loader := NewLoader(s.source, recorder, WithPrinter(p), WithLoaderLogger(s.logger))
	view := NewView(loader, WithViewPrinter(p), WithViewLogger(s.logger))

	if err := view.Activate(ctx); err != nil {
		return Page{}, err
	}
	defer view.Deactivate()

	if err := view.Wait(ctx); err != nil {
		return Page{}, err
	}
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}

	return Page{
		Tiles:         StaticTiles(p, s.overrides...),
		Actions:       QuickActions(p),
		Table:         view.Snapshot(),
		Notifications: recorder.Notifications(),
	}, nil
}

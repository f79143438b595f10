package dashboard

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/message"

	"github.com/sympohub/dashboard/internal/domain"
	"github.com/sympohub/dashboard/internal/i18n"
)

const tracerName = "github.com/sympohub/dashboard/internal/dashboard"

// LoadError is raised when the event source reports a transport or query
// failure. Message is the source error's human-readable text.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return "load recent events: " + e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader issues the dashboard's recent-events query.
type Loader struct {
	source   EventSource
	notifier Notifier
	printer  *message.Printer
	logger   *slog.Logger
	tracer   trace.Tracer
	query    RecentEventsQuery
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets the logger used for diagnostic messages.
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithPrinter sets the printer used to localize the failure title.
func WithPrinter(p *message.Printer) LoaderOption {
	return func(l *Loader) {
		if p != nil {
			l.printer = p
		}
	}
}

// WithTracer overrides the tracer; the global provider is used otherwise.
func WithTracer(tracer trace.Tracer) LoaderOption {
	return func(l *Loader) {
		if tracer != nil {
			l.tracer = tracer
		}
	}
}

// NewLoader returns a loader reading from source and reporting failures to
// notifier. A nil notifier logs notifications through the loader's logger.
func NewLoader(source EventSource, notifier Notifier, opts ...LoaderOption) *Loader {
	l := &Loader{
		source:   source,
		notifier: notifier,
		printer:  i18n.Printer(i18n.Default()),
		logger:   slog.Default(),
		tracer:   otel.Tracer(tracerName),
		query:    DefaultRecentEventsQuery(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With(slog.String("component", "dashboard_loader"))
	if l.notifier == nil {
		l.notifier = LogNotifier{Logger: l.logger}
	}
	return l
}

// Load runs the query once. On failure it notifies with the source error's
// message and returns a *LoadError. When ctx is already done the failure is
// returned without a notification: nobody is left to read it.
func (l *Loader) Load(ctx context.Context) ([]domain.Event, error) {
	ctx, span := l.tracer.Start(ctx, "dashboard.load_recent_events",
		trace.WithAttributes(attribute.Int("dashboard.limit", l.query.Limit)))
	defer span.End()

	l.logger.DebugContext(ctx, "connecting to event store", "limit", l.query.Limit)

	events, err := l.source.RecentEvents(ctx, l.query)
	if err != nil {
		loadErr := &LoadError{Message: err.Error(), Err: err}
		span.RecordError(err)
		span.SetStatus(codes.Error, loadErr.Message)

		if ctx.Err() != nil {
			l.logger.DebugContext(ctx, "recent events load abandoned", "error", err)
			return nil, loadErr
		}

		l.logger.ErrorContext(ctx, "recent events load failed", "error", err)
		l.notifier.Notify(ctx, Notification{
			Variant:     VariantDestructive,
			Title:       l.printer.Sprintf(i18n.KeyLoadFailedTitle),
			Description: loadErr.Message,
		})
		return nil, loadErr
	}

	if len(events) > l.query.Limit {
		events = events[:l.query.Limit]
	}

	l.logger.InfoContext(ctx, "event store connected", "rows", len(events))
	span.SetAttributes(attribute.Int("dashboard.rows", len(events)))
	return events, nil
}

package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/text/language"

	"github.com/sympohub/dashboard/internal/i18n"
)

// Deps are the services the router dispatches to.
type Deps struct {
	Dashboard   DashboardService
	Admin       AdminEventService
	Health      Pinger
	Logger      *slog.Logger
	CORSOrigins []string
	// Locale is used when the request expresses no language preference.
	Locale language.Tag
}

// NewRouter wires every HTTP route behind the shared middleware stack.
func NewRouter(deps Deps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	locale := deps.Locale
	if locale == language.Und {
		locale = i18n.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.CORSOrigins))

	r.NotFound(NotFoundHandler().ServeHTTP)
	r.MethodNotAllowed(MethodNotAllowedHandler().ServeHTTP)

	r.Get("/health", HealthHandler(deps.Health))

	if deps.Dashboard != nil {
		dash := &dashboardHandler{
			svc:      deps.Dashboard,
			fallback: locale,
			logger:   logger.With("component", "dashboard_http"),
		}
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, DashboardPath, http.StatusFound)
		})
		r.Get(DashboardPath, dash.handlePage)
		r.Get(DashboardEventsPath, dash.handleEvents)
		r.Get(DashboardAPIPath, dash.handleAPI)
	}

	if deps.Admin != nil {
		r.Route("/api/admin/events", func(r chi.Router) {
			r.Get("/", HandleListEvents(deps.Admin))
			r.Post("/", HandleCreateEvent(deps.Admin))
		})
	}

	return r
}

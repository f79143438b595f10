package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sympohub/dashboard/internal/dashboard"
	"github.com/sympohub/dashboard/internal/i18n"
	"github.com/sympohub/dashboard/internal/templates"
)

const (
	// DashboardPath serves the full dashboard page.
	DashboardPath = "/admin"
	// DashboardEventsPath serves the settled recent-events table.
	DashboardEventsPath = "/admin/dashboard/events"
	// DashboardAPIPath serves the dashboard as JSON.
	DashboardAPIPath = "/api/dashboard"

	hxRequestHeader = "HX-Request"
	hxTriggerHeader = "HX-Trigger"
	toastEvent      = "showToast"
)

// DashboardService builds dashboard pages.
type DashboardService interface {
	Shell(p *message.Printer) dashboard.Page
	Load(ctx context.Context, p *message.Printer) (dashboard.Page, error)
}

type dashboardHandler struct {
	svc      DashboardService
	fallback language.Tag
	logger   *slog.Logger
}

func (h *dashboardHandler) localizer(w http.ResponseWriter, r *http.Request) (*message.Printer, language.Tag) {
	tag, persist := i18n.ResolveTag(r, h.fallback)
	if persist {
		i18n.PersistLanguage(w, tag)
	}
	return i18n.Printer(tag), tag
}

// handlePage renders the dashboard with the table in its loading state; the
// table body then fetches DashboardEventsPath.
func (h *dashboardHandler) handlePage(w http.ResponseWriter, r *http.Request) {
	p, tag := h.localizer(w, r)
	view := templates.DashboardPageView{
		Labels:     dashboardLabels(p),
		Lang:       tag.String(),
		Page:       h.svc.Shell(p),
		ContentURL: DashboardEventsPath + "?" + url.Values{i18n.LangParam: {tag.String()}}.Encode(),
	}

	body := templates.DashboardPage(view)
	if !isHTMXRequest(r) {
		body = templates.Layout(view.Labels.Title, view.Lang, body)
	}
	templ.Handler(body).ServeHTTP(w, r)
}

// handleEvents runs one load and renders the table body. A failed load still
// renders the empty table, plus the toast out of band.
func (h *dashboardHandler) handleEvents(w http.ResponseWriter, r *http.Request) {
	p, _ := h.localizer(w, r)
	page, err := h.svc.Load(r.Context(), p)
	if err != nil {
		h.logger.DebugContext(r.Context(), "dashboard load abandoned", "error", err)
		return
	}

	if len(page.Notifications) > 0 {
		if trigger, err := toastTrigger(page.Notifications[0]); err == nil {
			w.Header().Set(hxTriggerHeader, trigger)
		}
	}

	templ.Handler(templates.EventsFragment(page.Table, page.Notifications)).ServeHTTP(w, r)
}

type dashboardResponse struct {
	State         dashboard.State          `json:"state"`
	Events        []dashboard.Row          `json:"events"`
	Tiles         []dashboard.Tile         `json:"tiles"`
	Actions       []dashboard.QuickAction  `json:"actions"`
	Notifications []dashboard.Notification `json:"notifications"`
	Locale        string                   `json:"locale"`
}

func (h *dashboardHandler) handleAPI(w http.ResponseWriter, r *http.Request) {
	p, tag := h.localizer(w, r)
	page, err := h.svc.Load(r.Context(), p)
	if err != nil {
		h.logger.DebugContext(r.Context(), "dashboard load abandoned", "error", err)
		return
	}

	rows := page.Table.Rows
	if rows == nil {
		rows = []dashboard.Row{}
	}
	notes := page.Notifications
	if notes == nil {
		notes = []dashboard.Notification{}
	}
	writeJSON(w, http.StatusOK, dashboardResponse{
		State:         page.Table.State,
		Events:        rows,
		Tiles:         page.Tiles,
		Actions:       page.Actions,
		Notifications: notes,
		Locale:        tag.String(),
	})
}

func dashboardLabels(p *message.Printer) templates.DashboardLabels {
	return templates.DashboardLabels{
		Title:        p.Sprintf(i18n.KeyDashboardTitle),
		Welcome:      p.Sprintf(i18n.KeyDashboardWelcome),
		RecentEvents: p.Sprintf(i18n.KeyRecentEvents),
		QuickActions: p.Sprintf(i18n.KeyQuickActions),
		NewEvent:     p.Sprintf(i18n.KeyActionNewEvent),
		ColumnName:   p.Sprintf(i18n.KeyColumnName),
		ColumnDate:   p.Sprintf(i18n.KeyColumnDate),
		ColumnCount:  p.Sprintf(i18n.KeyColumnParticipants),
		ColumnStatus: p.Sprintf(i18n.KeyColumnStatus),
	}
}

// toastTrigger encodes n as an HX-Trigger value. Header bytes are read as
// Latin-1 by browsers, so non-ASCII runes are written as JSON \u escapes.
func toastTrigger(n dashboard.Notification) (string, error) {
	payload, err := json.Marshal(map[string]dashboard.Notification{toastEvent: n})
	if err != nil {
		return "", err
	}
	return asciiJSON(payload), nil
}

func asciiJSON(payload []byte) string {
	var b strings.Builder
	b.Grow(len(payload))
	for _, r := range string(payload) {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case r > 0xFFFF:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, "\\u%04x\\u%04x", r1, r2)
		default:
			fmt.Fprintf(&b, "\\u%04x", r)
		}
	}
	return b.String()
}

func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(hxRequestHeader), "true")
}

// Package templates renders the admin dashboard HTML as templ components.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import "github.com/sympohub/dashboard/internal/dashboard"

// HTMXScript is the htmx bundle loaded by the layout.
const HTMXScript = "https://unpkg.com/htmx.org@2.0.4"

// ToastRegionID is the element toasts are swapped into.
const ToastRegionID = "toast-region"

// EventsTableBodyID is the tbody swapped by the lazy table load.
const EventsTableBodyID = "recent-events-body"

// DashboardLabels carries the localized static text of the page.
type DashboardLabels struct {
	Title        string
	Welcome      string
	RecentEvents string
	QuickActions string
	NewEvent     string
	ColumnName   string
	ColumnDate   string
	ColumnCount  string
	ColumnStatus string
}

func (l DashboardLabels) columns() []string {
	return []string{l.ColumnName, l.ColumnDate, l.ColumnCount, l.ColumnStatus}
}

// DashboardPageView is the data rendered by DashboardPage.
type DashboardPageView struct {
	Labels DashboardLabels
	Lang   string
	Page   dashboard.Page
	// ContentURL is fetched by htmx on load to replace the table body.
	ContentURL string
}

package ui

import "dashbuilder/internal/drag"

// Panel IDs double as drop zone names.
const (
	PanelCatalog   = string(drag.ZoneCatalog)
	PanelDashboard = string(drag.ZoneDashboard)
)

const (
	// SidebarWidth is the catalog panel width in columns.
	SidebarWidth = 28
	// chromeHeight is the rows taken by the toolbar, notice line and hint line.
	chromeHeight = 3
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// builderLayout places the catalog sidebar left of the dashboard. With the
// sidebar hidden the dashboard takes the full width.
type builderLayout struct {
	catalog     *CatalogView
	dashboard   *DashboardView
	showSidebar bool
}

// Ensure builderLayout implements Layout.
var _ Layout = (*builderLayout)(nil)

func (l *builderLayout) sidebarWidth() int {
	if l.showSidebar {
		return SidebarWidth
	}
	return 0
}

// Panels implements Layout.
func (l *builderLayout) Panels() []Panel {
	var panels []Panel
	if l.showSidebar {
		panels = append(panels, Panel{
			ID:   PanelCatalog,
			View: l.catalog,
			Bounds: func(width, height int) (int, int, int, int) {
				return 0, chromeHeight, SidebarWidth, max(height-chromeHeight, 0)
			},
		})
	}
	panels = append(panels, Panel{
		ID:   PanelDashboard,
		View: l.dashboard,
		Bounds: func(width, height int) (int, int, int, int) {
			x := l.sidebarWidth()
			return x, chromeHeight, max(width-x, 0), max(height-chromeHeight, 0)
		},
	})
	return panels
}

// FocusOrder implements Layout.
func (l *builderLayout) FocusOrder() []string {
	if l.showSidebar {
		return []string{PanelCatalog, PanelDashboard}
	}
	return []string{PanelDashboard}
}

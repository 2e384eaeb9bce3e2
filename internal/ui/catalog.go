package ui

import (
	"dashbuilder/internal/widget"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// typeItem implements list.Item for a catalog entry.
type typeItem struct {
	widget.Type
}

func (t typeItem) FilterValue() string { return t.Name }
func (t typeItem) Title() string       { return t.Name }
func (t typeItem) Description() string { return t.ID }

// CatalogView is the sidebar listing the widget types that can be dragged
// onto the dashboard.
type CatalogView struct {
	list    list.Model
	catalog *widget.Catalog
	focused bool
	// dragging is the catalog index being dragged, or -1.
	dragging int
	// marker is the hovered catalog index while a drag is over the sidebar, or -1.
	marker int
}

// Ensure CatalogView implements View.
var _ View = (*CatalogView)(nil)

// NewCatalogView creates the sidebar for c.
func NewCatalogView(c *widget.Catalog) *CatalogView {
	items := make([]list.Item, 0, c.Len())
	for _, t := range c.Types() {
		items = append(items, typeItem{Type: t})
	}
	l := list.New(items, NewCompactListDelegate(), SidebarWidth-4, 10)
	l.Title = "Widget Types"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	l.Styles.TitleBar = lipgloss.NewStyle().PaddingBottom(1)

	return &CatalogView{list: l, catalog: c, dragging: -1, marker: -1}
}

// Selected returns the index under the cursor.
func (c *CatalogView) Selected() int {
	return c.list.Index()
}

// SelectedType returns the catalog entry under the cursor.
func (c *CatalogView) SelectedType() (widget.Type, bool) {
	return c.catalog.At(c.list.Index())
}

// SetFocused marks the sidebar as the focused panel.
func (c *CatalogView) SetFocused(f bool) {
	c.focused = f
}

// SetDrag updates the drag decorations. Pass -1 to clear either.
func (c *CatalogView) SetDrag(dragging, marker int) {
	c.dragging = dragging
	c.marker = marker
	if marker >= 0 {
		c.list.Select(marker)
	}
}

// Init implements View.
func (c *CatalogView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *CatalogView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(panelSizeMsg); ok {
		frame := Styles.BoxCompact.GetHorizontalFrameSize()
		c.list.SetSize(max(msg.Width-frame, 0), max(msg.Height-Styles.BoxCompact.GetVerticalFrameSize()-1, 0))
		return c, nil
	}
	var cmd tea.Cmd
	c.list, cmd = c.list.Update(msg)
	return c, cmd
}

// View implements View.
func (c *CatalogView) View() string {
	box := Styles.BoxCompact
	if c.focused {
		box = box.BorderForeground(lipgloss.Color(ColorHighlight))
	}
	if c.marker >= 0 {
		box = box.BorderForeground(lipgloss.Color(ColorWarning))
	}

	footer := Styles.Hint.Render("m: drag to dashboard")
	switch {
	case c.marker >= 0:
		footer = Styles.TitleWarning.Render("drop here: no effect")
	case c.dragging >= 0:
		if t, ok := c.catalog.At(c.dragging); ok {
			footer = Styles.Selected.Render("dragging " + t.Name)
		}
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, c.list.View(), footer))
}

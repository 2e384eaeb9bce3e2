package ui

import (
	"fmt"
	"strings"

	"dashbuilder/internal/drag"
	"dashbuilder/internal/layout"
	"dashbuilder/internal/ui/textutil"
	"dashbuilder/internal/widget"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// cellWidth is the width of one grid cell including its border.
	cellWidth = 28
	// cellHeight is the height of one grid cell including its border.
	cellHeight = 5
)

// ghostID marks the drop placeholder in a drag preview.
const ghostID = "\x00drop"

// placeholders is the stand-in content per widget type.
var placeholders = map[string]string{
	widget.TypeText:  "Lorem ipsum dolor sit",
	widget.TypeChart: "▁▂▃▅▇▅▃▂▁▂▃▅",
	widget.TypeImage: "[ image ]",
}

// DashboardView renders placed widgets as a grid of panels.
type DashboardView struct {
	widgets  []widget.Instance
	catalog  *widget.Catalog
	selected int
	offset   int // first visible row
	width    int
	height   int
	focused  bool

	// drag preview; dragActive is false outside a gesture
	dragActive bool
	dragSource drag.Location
	dragHover  drag.Location
	dragItem   string
}

// Ensure DashboardView implements View.
var _ View = (*DashboardView)(nil)

// NewDashboardView creates a dashboard showing widgets.
func NewDashboardView(c *widget.Catalog, widgets []widget.Instance) *DashboardView {
	d := &DashboardView{catalog: c, width: 80, height: 20}
	d.SetWidgets(widgets)
	return d
}

// SetWidgets replaces the displayed widgets, keeping the cursor in range.
func (d *DashboardView) SetWidgets(widgets []widget.Instance) {
	d.widgets = append([]widget.Instance(nil), widgets...)
	d.Select(d.selected)
}

// Widgets returns the displayed widgets.
func (d *DashboardView) Widgets() []widget.Instance {
	return d.widgets
}

// Selected returns the cursor index. It is 0 on an empty dashboard.
func (d *DashboardView) Selected() int {
	return d.selected
}

// Select moves the cursor to i, clamped to the placed widgets.
func (d *DashboardView) Select(i int) {
	d.selected = clamp(i, 0, len(d.widgets)-1)
	d.scrollTo(d.selected)
}

// SelectedWidget returns the widget under the cursor.
func (d *DashboardView) SelectedWidget() (widget.Instance, bool) {
	if d.selected < 0 || d.selected >= len(d.widgets) {
		return widget.Instance{}, false
	}
	return d.widgets[d.selected], true
}

// SetFocused marks the dashboard as the focused panel.
func (d *DashboardView) SetFocused(f bool) {
	d.focused = f
}

// SetDrag shows a drag preview for g, or clears it when g is inactive.
func (d *DashboardView) SetDrag(g *Gesture) {
	if g == nil || !g.Active() {
		d.dragActive = false
		return
	}
	d.dragActive = true
	d.dragSource = g.Source()
	d.dragHover = g.Hover()
	d.dragItem = g.DraggableID()
	if d.dragHover.Zone == drag.ZoneDashboard {
		d.scrollTo(d.dragHover.Index)
	}
}

// Columns returns how many widgets fit on a row.
func (d *DashboardView) Columns() int {
	return max(d.width/cellWidth, 1)
}

func (d *DashboardView) visibleRows() int {
	return max((d.height-1)/cellHeight, 1)
}

func (d *DashboardView) scrollTo(i int) {
	row := i / d.Columns()
	rows := d.visibleRows()
	if row < d.offset {
		d.offset = row
	} else if row >= d.offset+rows {
		d.offset = row - rows + 1
	}
}

// Init implements View.
func (d *DashboardView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (d *DashboardView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case panelSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		d.scrollTo(d.selected)
	case tea.KeyMsg:
		cols := d.Columns()
		switch msg.String() {
		case "left", "h":
			d.Select(d.selected - 1)
		case "right", "l":
			d.Select(d.selected + 1)
		case "up", "k":
			d.Select(d.selected - cols)
		case "down", "j":
			d.Select(d.selected + cols)
		case "home", "g":
			d.Select(0)
		case "end", "G":
			d.Select(len(d.widgets) - 1)
		}
	}
	return d, nil
}

// preview returns the widgets as they would look if the drag dropped now.
func (d *DashboardView) preview() []widget.Instance {
	if !d.dragActive || d.dragHover.Zone != drag.ZoneDashboard {
		return d.widgets
	}
	s := layout.NewStore(d.widgets)
	switch d.dragSource.Zone {
	case drag.ZoneDashboard:
		s.Reorder(d.dragSource.Index, d.dragHover.Index)
	case drag.ZoneCatalog:
		s.Insert(widget.Instance{ID: ghostID, Type: d.dragItem}, d.dragHover.Index)
	}
	return s.Widgets()
}

// View implements View.
func (d *DashboardView) View() string {
	header := Styles.Title.Render(fmt.Sprintf("Dashboard (%d)", len(d.widgets)))
	if d.focused {
		header = Styles.Selected.Render(fmt.Sprintf("Dashboard (%d)", len(d.widgets)))
	}

	items := d.preview()
	if len(items) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header,
			Styles.Empty.Render("No widgets yet. Pick one from the sidebar with m."))
	}

	cols := d.Columns()
	var rows []string
	for start := d.offset * cols; start < len(items) && len(rows) < d.visibleRows(); start += cols {
		end := min(start+cols, len(items))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cells = append(cells, d.renderCell(items[i], i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, rows...)...)
}

func (d *DashboardView) renderCell(w widget.Instance, i int) string {
	style := Styles.Widget
	switch {
	case w.ID == ghostID:
		style = Styles.DropMarker
	case d.dragActive && d.dragSource.Zone == drag.ZoneDashboard && w.ID == d.dragItem:
		style = Styles.WidgetDragged
	case !d.dragActive && d.focused && i == d.selected:
		style = Styles.WidgetSelected
	}
	inner := cellWidth - style.GetHorizontalFrameSize()
	style = style.Width(cellWidth - style.GetHorizontalBorderSize())

	typeName := d.catalog.DisplayName(w.Type)
	if w.ID == ghostID {
		lines := []string{
			textutil.Truncate("+ "+typeName, inner),
			Styles.Muted.Render("drop here"),
			"",
		}
		return style.Render(strings.Join(lines, "\n"))
	}

	title := w.Title
	if title == "" {
		title = "(untitled)"
	}
	lines := []string{
		Styles.Normal.Bold(true).Render(textutil.Truncate(title, inner)),
		Styles.Muted.Render(textutil.Truncate(typeName, inner)),
		Styles.Hint.Render(textutil.Truncate(placeholderFor(w.Type), inner)),
	}
	return style.Render(strings.Join(lines, "\n"))
}

func placeholderFor(typeID string) string {
	if p, ok := placeholders[typeID]; ok {
		return p
	}
	return "Widget content"
}

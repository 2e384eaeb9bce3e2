package ui

import (
	"time"

	"dashbuilder/internal/app"
	"dashbuilder/internal/drag"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultNoticeTTL is how long a success notice stays on screen. Failure
// notices stay until replaced.
const DefaultNoticeTTL = 3 * time.Second

// Options tune the root model.
type Options struct {
	ShowSidebar bool
	// NoticeTTL of zero keeps every notice until the next one.
	NoticeTTL time.Duration
}

// AppModel is the root model: a catalog sidebar next to the dashboard,
// with a keyboard drag gesture and modals on top.
type AppModel struct {
	App        *app.App
	Mode       AppMode
	Catalog    *CatalogView
	Dashboard  *DashboardView
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Modals     ModalStack

	gesture   Gesture
	layout    *builderLayout
	notice    app.Notice
	noticeSeq int
	noticeTTL time.Duration
	width     int
	height    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model over a.
func NewAppModel(a *app.App, opts Options) *AppModel {
	catalog := NewCatalogView(a.Catalog())
	dashboard := NewDashboardView(a.Catalog(), a.Widgets())
	l := &builderLayout{catalog: catalog, dashboard: dashboard, showSidebar: opts.ShowSidebar}

	m := &AppModel{
		App:        a,
		Mode:       ModeBrowse,
		Catalog:    catalog,
		Dashboard:  dashboard,
		KeyHandler: NewKeyHandler(newRegistry()),
		layout:     l,
		noticeTTL:  opts.NoticeTTL,
		width:      80,
		height:     24,
	}
	m.Focus = &FocusManager{OnChange: func(_, _ string) { m.syncFocus() }}
	m.Focus.SetOrder(l.FocusOrder())
	m.Focus.SetFocus(PanelDashboard)
	m.syncFocus()
	return m
}

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	save := func() tea.Msg { return SaveLayoutMsg{} }
	load := func() tea.Msg { return LoadLayoutMsg{} }
	reg.Bind("q", "quit", tea.Quit, ModeBrowse)
	reg.Bind("ctrl+c", "", tea.Quit)
	reg.Bind("ctrl+s", "save", save, ModeBrowse)
	reg.Bind("ctrl+o", "load", load, ModeBrowse)
	reg.Bind("e", "edit title", func() tea.Msg { return ShowEditTitleMsg{} }, ModeBrowse)
	reg.Bind("SPC s", "Save layout", save)
	reg.Bind("SPC l", "Load layout", load)
	reg.Bind("SPC b", "Toggle sidebar", func() tea.Msg { return ToggleSidebarMsg{} })
	reg.Bind("SPC q", "Quit", tea.Quit)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Notice returns the notice currently shown.
func (m *AppModel) Notice() app.Notice {
	return m.notice
}

// Dragging reports whether a drag gesture is in progress.
func (m *AppModel) Dragging() bool {
	return m.gesture.Active()
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if n := a.App.BootNotice(); n.Kind != app.NoticeNone {
		return func() tea.Msg { return noticeMsg{Notice: n} }
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, a.update(msg)
}

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case SaveLayoutMsg:
		return m.showNotice(m.App.Save())
	case LoadLayoutMsg:
		n := m.App.Load()
		m.refresh()
		return m.showNotice(n)
	case ToggleSidebarMsg:
		m.layout.showSidebar = !m.layout.showSidebar
		m.Focus.SetOrder(m.layout.FocusOrder())
		m.resize()
		return nil
	case ShowEditTitleMsg:
		return m.openEditor()
	case RetitleMsg:
		m.App.Retitle(msg.ID, msg.Title)
		m.refresh()
		m.dismissModal()
		return nil
	case DismissModalMsg:
		m.dismissModal()
		return nil
	case noticeMsg:
		return m.showNotice(msg.Notice)
	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = app.Notice{}
		}
		return nil
	}

	// Anything else (cursor blink and the like) goes to the modal on top.
	if cmd, ok := m.Modals.Update(msg); ok {
		return cmd
	}
	return nil
}

// handleKey routes a key: modal first, then an active drag, then global
// bindings, then the focused panel.
func (m *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}

	if m.Modals.Len() > 0 {
		if m.Modals.Dismisses(s) {
			m.dismissModal()
			return nil
		}
		cmd, _ := m.Modals.Update(msg)
		return cmd
	}

	if m.gesture.Active() {
		ev, done := m.gesture.Handle(msg, m.Dashboard.Columns())
		if done {
			m.finishDrag(ev)
		} else {
			m.syncDrag()
		}
		return nil
	}

	if consumed, cmd := m.KeyHandler.Handle(msg, m.Mode); consumed {
		return cmd
	}

	switch s {
	case "tab":
		m.Focus.Next()
		return nil
	case "shift+tab":
		m.Focus.Prev()
		return nil
	case "m":
		m.pickUp()
		return nil
	}

	var cmd tea.Cmd
	if m.Focus.Is(PanelCatalog) {
		_, cmd = m.Catalog.Update(msg)
	} else {
		_, cmd = m.Dashboard.Update(msg)
	}
	return cmd
}

// pickUp starts a drag from the selected entry of the focused panel.
func (m *AppModel) pickUp() {
	n, catLen := m.App.Len(), m.App.Catalog().Len()
	if m.Focus.Is(PanelCatalog) {
		t, ok := m.Catalog.SelectedType()
		if !ok {
			return
		}
		src := drag.Location{Zone: drag.ZoneCatalog, Index: m.Catalog.Selected()}
		m.gesture.PickUp(src, t.ID, n, catLen)
	} else {
		w, ok := m.Dashboard.SelectedWidget()
		if !ok {
			return
		}
		src := drag.Location{Zone: drag.ZoneDashboard, Index: m.Dashboard.Selected()}
		m.gesture.PickUp(src, w.ID, n, catLen)
	}
	m.Mode = ModeDragging
	m.syncDrag()
}

func (m *AppModel) finishDrag(ev drag.Event) {
	res := m.App.Drag(ev)
	m.Mode = ModeBrowse
	m.refresh()
	switch res.Action {
	case drag.ActionReorder, drag.ActionInsert:
		m.Dashboard.Select(ev.Destination.Index)
		m.Focus.SetFocus(PanelDashboard)
	}
	m.syncDrag()
}

func (m *AppModel) syncDrag() {
	m.Dashboard.SetDrag(&m.gesture)
	dragging, marker := -1, -1
	if m.gesture.Active() {
		if src := m.gesture.Source(); src.Zone == drag.ZoneCatalog {
			dragging = src.Index
		}
		if h := m.gesture.Hover(); h.Zone == drag.ZoneCatalog {
			marker = h.Index
		}
	}
	m.Catalog.SetDrag(dragging, marker)
}

func (m *AppModel) openEditor() tea.Cmd {
	if !m.Focus.Is(PanelDashboard) {
		return nil
	}
	w, ok := m.Dashboard.SelectedWidget()
	if !ok {
		return nil
	}
	modal := NewEditTitleModal(w)
	m.Modals.Push(Modal{View: modal, DismissKey: "esc"})
	m.Mode = ModeEditing
	return modal.Init()
}

func (m *AppModel) dismissModal() {
	m.Modals.Pop()
	if m.Modals.Len() == 0 {
		m.Mode = ModeBrowse
	}
}

// refresh copies the live layout into the dashboard view.
func (m *AppModel) refresh() {
	m.Dashboard.SetWidgets(m.App.Widgets())
}

func (m *AppModel) showNotice(n app.Notice) tea.Cmd {
	m.notice = n
	m.noticeSeq++
	if m.noticeTTL <= 0 || n.Kind.IsError() {
		return nil
	}
	seq := m.noticeSeq
	return tea.Tick(m.noticeTTL, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

func (m *AppModel) resize() {
	for _, p := range m.layout.Panels() {
		p.Resize(m.width, m.height)
	}
}

func (m *AppModel) syncFocus() {
	m.Catalog.SetFocused(m.Focus.Is(PanelCatalog))
	m.Dashboard.SetFocused(m.Focus.Is(PanelDashboard))
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.render()
}

func (m *AppModel) render() string {
	toolbar := Styles.Toolbar.Width(m.width).Render("Dashboard Builder  " + Styles.Muted.Render(m.Mode.String()))

	var panels []string
	for _, p := range m.layout.Panels() {
		_, _, w, h := p.Bounds(m.width, m.height)
		panels = append(panels, lipgloss.NewStyle().Width(w).MaxHeight(h).Render(p.View.View()))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)

	if top, ok := m.Modals.Top(); ok {
		body = lipgloss.Place(m.width, max(m.height-chromeHeight, 0), lipgloss.Center, lipgloss.Center, top.View.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, toolbar, m.statusLine(), body, m.helpLine())
}

func (m *AppModel) statusLine() string {
	if m.gesture.Active() {
		h := m.gesture.Hover()
		return Styles.Selected.Render("Dragging") + Styles.Muted.Render(
			" over "+string(h.Zone)+": arrows move, tab switches zone, enter drops, esc cancels")
	}
	if m.notice.Kind == app.NoticeNone {
		return ""
	}
	if m.notice.Kind.IsError() {
		return Styles.NoticeError.Render(m.notice.String())
	}
	return Styles.NoticeOK.Render(m.notice.String())
}

func (m *AppModel) helpLine() string {
	if m.Mode != ModeBrowse {
		return ""
	}
	extra := []key.Binding{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "panel")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "drag")),
		key.NewBinding(key.WithKeys("SPC"), key.WithHelp("SPC", "commands")),
	}
	return RenderKeybindHelp(m.KeyHandler, m.Mode, m.width, extra...)
}

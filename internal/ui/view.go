package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; it follows Bubble Tea's Init/Update/View
// but returns View from Update so panels and overlays can be swapped freely.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

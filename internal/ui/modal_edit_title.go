package ui

import (
	"strings"

	"dashbuilder/internal/widget"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditTitleModal edits the title of one placed widget.
type EditTitleModal struct {
	WidgetID string
	input    textinput.Model
	blank    bool // enter was pressed on a blank title
}

// Ensure EditTitleModal implements View.
var _ View = (*EditTitleModal)(nil)

// NewEditTitleModal creates a modal prefilled with w's title.
func NewEditTitleModal(w widget.Instance) *EditTitleModal {
	ti := textinput.New()
	ti.Placeholder = "Widget title"
	ti.CharLimit = 120
	ti.Width = 40
	ti.SetValue(w.Title)
	ti.CursorEnd()
	ti.Focus()
	return &EditTitleModal{WidgetID: w.ID, input: ti}
}

// Value returns the text currently in the input.
func (m *EditTitleModal) Value() string {
	return m.input.Value()
}

// Init implements View.
func (m *EditTitleModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *EditTitleModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				m.blank = true
				return m, nil
			}
			id := m.WidgetID
			return m, func() tea.Msg { return RetitleMsg{ID: id, Title: title} }
		}
	}
	m.blank = false
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *EditTitleModal) View() string {
	content := Styles.Title.Render("Edit widget title") + "\n\n"
	content += m.input.View() + "\n\n"
	if m.blank {
		content += Styles.NoticeError.Render("Title cannot be empty.") + "\n"
	}
	content += Styles.Hint.Render("Enter: save  Esc: cancel")
	return Styles.Box.Render(content)
}

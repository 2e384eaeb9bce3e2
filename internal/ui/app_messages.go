package ui

import "dashbuilder/internal/app"

// SaveLayoutMsg asks the app to persist the current layout (ctrl+s, SPC s).
type SaveLayoutMsg struct{}

// LoadLayoutMsg asks the app to replace the layout with the saved one (ctrl+o, SPC l).
type LoadLayoutMsg struct{}

// ToggleSidebarMsg shows or hides the widget catalog (SPC b).
type ToggleSidebarMsg struct{}

// ShowEditTitleMsg opens the title editor for the selected widget (e).
type ShowEditTitleMsg struct{}

// RetitleMsg is sent when the user confirms a new title.
type RetitleMsg struct {
	ID    string
	Title string
}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// noticeMsg shows a persistence outcome in the status line.
type noticeMsg struct {
	Notice app.Notice
}

// clearNoticeMsg hides the notice with the given sequence number, unless a
// newer one replaced it.
type clearNoticeMsg struct {
	seq int
}

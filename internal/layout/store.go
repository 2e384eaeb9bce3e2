// Package layout holds the ordered list of placed widgets and the only
// mutations allowed on it: reorder, insert, retitle, and wholesale replace.
//
// Order is the only positional information kept; it is the rendering order
// on the dashboard grid.
package layout

import "dashbuilder/internal/widget"

const (
	// DefaultWidgetType is the type of the single widget in a fresh layout.
	DefaultWidgetType = widget.TypeText
	// DefaultWidgetTitle is the title of the single widget in a fresh layout.
	DefaultWidgetTitle = "Welcome Widget"
)

// Store is the live layout. It is not safe for concurrent use; all callers
// run on the UI event loop.
type Store struct {
	widgets []widget.Instance
}

// NewStore creates a store holding a copy of widgets.
func NewStore(widgets []widget.Instance) *Store {
	s := &Store{}
	s.ReplaceAll(widgets)
	return s
}

// Default returns the built-in starting layout: one text widget titled
// "Welcome Widget" with a fresh id.
func Default(ids widget.IDGenerator) []widget.Instance {
	return []widget.Instance{{
		ID:    ids.NewID(),
		Type:  DefaultWidgetType,
		Title: DefaultWidgetTitle,
	}}
}

// Widgets returns a copy of the layout in order.
func (s *Store) Widgets() []widget.Instance {
	out := make([]widget.Instance, len(s.widgets))
	copy(out, s.widgets)
	return out
}

// Len returns the number of placed widgets.
func (s *Store) Len() int {
	return len(s.widgets)
}

// At returns the widget at index i.
func (s *Store) At(i int) (widget.Instance, bool) {
	if i < 0 || i >= len(s.widgets) {
		return widget.Instance{}, false
	}
	return s.widgets[i], true
}

// IndexOf returns the index of the widget with id, or -1.
func (s *Store) IndexOf(id string) int {
	for i, w := range s.widgets {
		if w.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the widget with id.
func (s *Store) Find(id string) (widget.Instance, bool) {
	i := s.IndexOf(id)
	if i < 0 {
		return widget.Instance{}, false
	}
	return s.widgets[i], true
}

// Reorder removes the widget at from and reinserts it at to. to is clamped
// to the length of the list after removal. An out-of-range from is a caller
// bug and leaves the layout untouched.
func (s *Store) Reorder(from, to int) {
	if from < 0 || from >= len(s.widgets) {
		return
	}
	moved := s.widgets[from]
	rest := make([]widget.Instance, 0, len(s.widgets))
	rest = append(rest, s.widgets[:from]...)
	rest = append(rest, s.widgets[from+1:]...)
	s.widgets = insertAt(rest, moved, to)
}

// Insert places w at index at, shifting later widgets right. at == Len()
// appends; values outside [0, Len()] are clamped.
func (s *Store) Insert(w widget.Instance, at int) {
	s.widgets = insertAt(s.widgets, w, at)
}

// Retitle sets the title of the widget with id. Returns false, changing
// nothing, when no widget has that id.
func (s *Store) Retitle(id, title string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		// Lookup miss: unreachable from the edit form, so not reported.
		return false
	}
	s.widgets[i].Title = title
	return true
}

// ReplaceAll swaps the whole layout for a copy of widgets. Nothing is
// validated: unknown types and empty fields are accepted as-is.
func (s *Store) ReplaceAll(widgets []widget.Instance) {
	s.widgets = make([]widget.Instance, len(widgets))
	copy(s.widgets, widgets)
}

func insertAt(list []widget.Instance, w widget.Instance, at int) []widget.Instance {
	if at < 0 {
		at = 0
	}
	if at > len(list) {
		at = len(list)
	}
	out := make([]widget.Instance, 0, len(list)+1)
	out = append(out, list[:at]...)
	out = append(out, w)
	out = append(out, list[at:]...)
	return out
}

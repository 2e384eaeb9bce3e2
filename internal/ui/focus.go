package ui

// FocusManager tracks and rotates focus across panels.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

func (f *FocusManager) index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

func (f *FocusManager) moveTo(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

// Next advances focus to the next panel in order and returns it.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.moveTo(f.Order[(f.index()+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous panel in order and returns it.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	i := f.index() - 1
	if i < 0 {
		i = len(f.Order) - 1
	}
	f.moveTo(f.Order[i])
	return f.Current
}

// SetFocus sets focus to the given panel ID.
// Returns false, leaving focus alone, if the ID is not in Order.
func (f *FocusManager) SetFocus(id string) bool {
	for _, o := range f.Order {
		if o == id {
			f.moveTo(id)
			return true
		}
	}
	return false
}

// SetOrder replaces the focus order. If the focused panel is no longer in
// the order, focus moves to the first panel.
func (f *FocusManager) SetOrder(order []string) {
	f.Order = order
	if f.index() < 0 && len(order) > 0 {
		f.moveTo(order[0])
	}
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

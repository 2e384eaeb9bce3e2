package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// panelSizeMsg tells a panel's view how much room it has.
type panelSizeMsg struct {
	Width  int
	Height int
}

// Resize sends the panel's computed size to its view.
func (p Panel) Resize(width, height int) View {
	_, _, w, h := p.Bounds(width, height)
	v, _ := p.View.Update(panelSizeMsg{Width: w, Height: h})
	return v
}

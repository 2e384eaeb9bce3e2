package ui

import (
	"dashbuilder/internal/drag"

	tea "github.com/charmbracelet/bubbletea"
)

// Gesture is a keyboard drag in progress. It only tracks where the item
// would land; the layout is not touched until the drop event is applied.
type Gesture struct {
	active      bool
	source      drag.Location
	draggableID string
	hover       drag.Location
	dashLen     int
	catalogLen  int
}

// PickUp starts a drag of the item at src. dashLen and catalogLen are the
// zone sizes at pick-up. A catalog item starts hovering after the last
// widget; a widget starts hovering over its own slot.
func (g *Gesture) PickUp(src drag.Location, draggableID string, dashLen, catalogLen int) {
	*g = Gesture{
		active:      true,
		source:      src,
		draggableID: draggableID,
		dashLen:     dashLen,
		catalogLen:  catalogLen,
	}
	if src.Zone == drag.ZoneCatalog {
		g.hover = drag.Location{Zone: drag.ZoneDashboard, Index: dashLen}
	} else {
		g.hover = src
	}
}

// Active reports whether something is picked up.
func (g *Gesture) Active() bool { return g.active }

// Source returns where the dragged item came from.
func (g *Gesture) Source() drag.Location { return g.source }

// Hover returns the current drop marker position.
func (g *Gesture) Hover() drag.Location { return g.hover }

// DraggableID returns the dragged catalog type id or widget id.
func (g *Gesture) DraggableID() string { return g.draggableID }

// maxIndex is the last valid hover index in the hovered zone, or -1 when
// the zone has no slots.
func (g *Gesture) maxIndex() int {
	switch {
	case g.hover.Zone == drag.ZoneCatalog:
		return g.catalogLen - 1
	case g.source.Zone == drag.ZoneDashboard:
		// A reorder lands on an existing slot.
		return g.dashLen - 1
	default:
		// An insert may also land after the last widget.
		return g.dashLen
	}
}

func (g *Gesture) move(delta int) {
	g.hover.Index = clamp(g.hover.Index+delta, 0, g.maxIndex())
}

func (g *Gesture) toggleZone() {
	if g.hover.Zone == drag.ZoneCatalog {
		g.hover.Zone = drag.ZoneDashboard
	} else {
		g.hover.Zone = drag.ZoneCatalog
	}
	g.hover.Index = clamp(g.hover.Index, 0, g.maxIndex())
}

// Handle applies a key to the gesture. cols is the dashboard grid width,
// used for vertical moves. When the key ends the gesture, done is true and
// ev is the completion event: enter drops at the marker, esc releases the
// item with no destination.
func (g *Gesture) Handle(msg tea.KeyMsg, cols int) (ev drag.Event, done bool) {
	if !g.active {
		return drag.Event{}, false
	}
	if cols < 1 {
		cols = 1
	}
	step := cols
	if g.hover.Zone == drag.ZoneCatalog {
		step = 1
	}
	switch msg.String() {
	case "left", "h":
		g.move(-1)
	case "right", "l":
		g.move(1)
	case "up", "k":
		g.move(-step)
	case "down", "j":
		g.move(step)
	case "home", "g":
		g.hover.Index = 0
	case "end", "G":
		g.hover.Index = max(g.maxIndex(), 0)
	case "tab", "shift+tab":
		g.toggleZone()
	case "enter", "m":
		dst := g.hover
		return g.finish(&dst), true
	case "esc":
		return g.finish(nil), true
	}
	return drag.Event{}, false
}

func (g *Gesture) finish(dst *drag.Location) drag.Event {
	ev := drag.Event{Source: g.source, Destination: dst, DraggableID: g.draggableID}
	*g = Gesture{}
	return ev
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}

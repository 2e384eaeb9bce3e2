// Package drag translates drag-completion events into layout mutations.
//
// Two gestures are modelled: moving a placed widget within the dashboard
// (reorder) and dropping a catalog entry onto the dashboard (insert). Every
// other gesture, including a drop outside any zone, leaves the layout alone.
package drag

import (
	"dashbuilder/internal/layout"
	"dashbuilder/internal/widget"
)

// Zone names a drop region.
type Zone string

const (
	ZoneCatalog   Zone = "catalog"
	ZoneDashboard Zone = "dashboard"
)

// Location is a position inside a zone.
type Location struct {
	Zone  Zone
	Index int
}

// Event describes a finished drag gesture. Destination is nil when the
// item was released outside every drop target.
type Event struct {
	Source      Location
	Destination *Location
	// DraggableID is the catalog type id for catalog drags and the instance
	// id for dashboard drags.
	DraggableID string
}

// Action is the mutation a drag produced.
type Action int

const (
	ActionNone Action = iota
	ActionReorder
	ActionInsert
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionReorder:
		return "reorder"
	case ActionInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// Reason explains an ActionNone result.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonCancelled
	ReasonUnknownType
	ReasonUnsupported
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonCancelled:
		return "cancelled"
	case ReasonUnknownType:
		return "unknown widget type"
	case ReasonUnsupported:
		return "unsupported transition"
	default:
		return "unknown"
	}
}

// Result reports what Apply did.
type Result struct {
	Action Action
	Reason Reason
	// Inserted is set for ActionInsert.
	Inserted widget.Instance
}

// Coordinator applies drag events to a layout store.
type Coordinator struct {
	store   *layout.Store
	catalog *widget.Catalog
	ids     widget.IDGenerator
}

// NewCoordinator creates a coordinator over store. catalog resolves dragged
// catalog entries; ids issues ids for inserted widgets.
func NewCoordinator(store *layout.Store, catalog *widget.Catalog, ids widget.IDGenerator) *Coordinator {
	return &Coordinator{store: store, catalog: catalog, ids: ids}
}

// Apply performs at most one layout mutation for ev. Each call is
// independent of previous ones.
func (c *Coordinator) Apply(ev Event) Result {
	if ev.Destination == nil {
		return Result{Action: ActionNone, Reason: ReasonCancelled}
	}
	dst := *ev.Destination

	switch {
	case ev.Source.Zone == ZoneDashboard && dst.Zone == ZoneDashboard:
		c.store.Reorder(ev.Source.Index, dst.Index)
		return Result{Action: ActionReorder}

	case ev.Source.Zone == ZoneCatalog && dst.Zone == ZoneDashboard:
		t, ok := c.catalog.Lookup(ev.DraggableID)
		if !ok {
			// The UI only offers catalog entries, so this is not reported.
			return Result{Action: ActionNone, Reason: ReasonUnknownType}
		}
		w := widget.New(t, c.ids)
		c.store.Insert(w, dst.Index)
		return Result{Action: ActionInsert, Inserted: w}

	default:
		return Result{Action: ActionNone, Reason: ReasonUnsupported}
	}
}

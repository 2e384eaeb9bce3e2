// Package app is the application object: it owns the live layout and wires
// it to the drag coordinator and the persistence adapter.
package app

import (
	"strings"

	"dashbuilder/internal/drag"
	"dashbuilder/internal/layout"
	"dashbuilder/internal/persist"
	"dashbuilder/internal/widget"

	"go.uber.org/zap"
)

// Deps are the collaborators App is built from.
type Deps struct {
	Adapter *persist.Adapter
	// Catalog defaults to widget.DefaultCatalog().
	Catalog *widget.Catalog
	// IDs defaults to widget.UUIDGenerator.
	IDs widget.IDGenerator
	// Logger defaults to a no-op logger.
	Logger *zap.Logger
}

// App holds the single live layout for the process.
type App struct {
	store       *layout.Store
	catalog     *widget.Catalog
	ids         widget.IDGenerator
	coordinator *drag.Coordinator
	adapter     *persist.Adapter
	log         *zap.Logger
	boot        Notice
}

// New builds the app and runs the boot sequence: the saved layout if it
// loads, otherwise the built-in default.
func New(d Deps) *App {
	if d.Catalog == nil {
		d.Catalog = widget.DefaultCatalog()
	}
	if d.IDs == nil {
		d.IDs = widget.UUIDGenerator{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}

	boot := persist.Boot(d.Adapter, d.IDs)
	store := layout.NewStore(boot.Widgets)

	a := &App{
		store:       store,
		catalog:     d.Catalog,
		ids:         d.IDs,
		coordinator: drag.NewCoordinator(store, d.Catalog, d.IDs),
		adapter:     d.Adapter,
		log:         d.Logger,
	}

	fields := []zap.Field{
		zap.String("status", boot.Load.Status.String()),
		zap.Int("widgets", len(boot.Widgets)),
		zap.Bool("fallback", boot.Fallback),
	}
	if boot.Load.Err != nil {
		fields = append(fields, zap.Error(boot.Load.Err))
		a.log.Warn("saved layout unusable, starting from default", fields...)
		a.boot = NoticeForLoad(boot.Load)
	} else {
		a.log.Info("layout booted", fields...)
	}
	return a
}

// BootNotice returns the notice raised at boot, if the saved layout was
// unreadable. Its Kind is NoticeNone otherwise.
func (a *App) BootNotice() Notice {
	return a.boot
}

// Catalog returns the widget catalog.
func (a *App) Catalog() *widget.Catalog {
	return a.catalog
}

// Widgets returns a copy of the current layout.
func (a *App) Widgets() []widget.Instance {
	return a.store.Widgets()
}

// Len returns the number of placed widgets.
func (a *App) Len() int {
	return a.store.Len()
}

// Find returns the widget with id.
func (a *App) Find(id string) (widget.Instance, bool) {
	return a.store.Find(id)
}

// Drag applies a finished drag gesture.
func (a *App) Drag(ev drag.Event) drag.Result {
	res := a.coordinator.Apply(ev)
	fields := []zap.Field{
		zap.String("action", res.Action.String()),
		zap.String("source_zone", string(ev.Source.Zone)),
		zap.Int("source_index", ev.Source.Index),
		zap.String("item", ev.DraggableID),
	}
	if ev.Destination != nil {
		fields = append(fields,
			zap.String("dest_zone", string(ev.Destination.Zone)),
			zap.Int("dest_index", ev.Destination.Index))
	}
	if res.Action == drag.ActionNone {
		fields = append(fields, zap.String("reason", res.Reason.String()))
	}
	if res.Action == drag.ActionInsert {
		fields = append(fields, zap.String("widget_id", res.Inserted.ID))
	}
	a.log.Debug("drag applied", fields...)
	return res
}

// Retitle sets a widget's title. The title is trimmed; an empty result is
// rejected. Returns false when nothing changed, including when id is
// unknown (a silent miss).
func (a *App) Retitle(id, title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	return a.store.Retitle(id, title)
}

// Save writes the current layout. The in-memory layout is never changed.
func (a *App) Save() Notice {
	widgets := a.store.Widgets()
	if err := a.adapter.Save(widgets); err != nil {
		a.log.Error("save layout", zap.String("key", a.adapter.Key()), zap.Error(err))
		return newNotice(NoticeSaveFailed, err)
	}
	a.log.Info("layout saved", zap.String("key", a.adapter.Key()), zap.Int("widgets", len(widgets)))
	return newNotice(NoticeSaved, nil)
}

// Load replaces the layout with the saved one. Any outcome other than a
// successful decode leaves the current layout in place.
func (a *App) Load() Notice {
	res := a.adapter.Load()
	if res.OK() {
		a.store.ReplaceAll(res.Widgets)
		a.log.Info("layout loaded", zap.String("key", a.adapter.Key()), zap.Int("widgets", len(res.Widgets)))
		return newNotice(NoticeLoaded, nil)
	}
	if res.Err != nil {
		a.log.Warn("load layout", zap.String("status", res.Status.String()), zap.Error(res.Err))
	}
	return NoticeForLoad(res)
}

// NoticeForLoad maps a load outcome to its user notice.
func NoticeForLoad(res persist.LoadResult) Notice {
	switch res.Status {
	case persist.StatusLoaded:
		return newNotice(NoticeLoaded, nil)
	case persist.StatusNotFound:
		return newNotice(NoticeNothingToLoad, nil)
	case persist.StatusCorrupt:
		return newNotice(NoticeLoadCorrupt, res.Err)
	case persist.StatusWrongShape:
		return newNotice(NoticeLoadWrongShape, res.Err)
	default:
		return newNotice(NoticeLoadFailed, res.Err)
	}
}

package persist

import (
	"dashbuilder/internal/layout"
	"dashbuilder/internal/widget"
)

// BootResult is the layout to start with and how it was obtained.
type BootResult struct {
	Widgets []widget.Instance
	// Load is the outcome of reading the saved slot.
	Load LoadResult
	// Fallback is true when Widgets is the built-in default layout.
	Fallback bool
}

// Boot loads the saved layout, falling back to layout.Default for any
// outcome other than StatusLoaded.
func Boot(a *Adapter, ids widget.IDGenerator) BootResult {
	res := a.Load()
	if res.OK() {
		return BootResult{Widgets: res.Widgets, Load: res}
	}
	return BootResult{
		Widgets:  layout.Default(ids),
		Load:     res,
		Fallback: true,
	}
}

// Package widget defines the widget catalog and placed widget instances.
package widget

// Type is a catalog entry: a kind of panel the user can place.
type Type struct {
	ID   string
	Name string
}

// Instance is a widget placed on the dashboard.
// Type is not checked against the catalog once the instance exists; a loaded
// layout may reference types this build does not know.
type Instance struct {
	ID    string `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// New builds an instance of t with a fresh id and the type's display name as title.
func New(t Type, ids IDGenerator) Instance {
	return Instance{
		ID:    ids.NewID(),
		Type:  t.ID,
		Title: t.Name,
	}
}

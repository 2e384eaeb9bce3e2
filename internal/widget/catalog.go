package widget

// Built-in widget type IDs.
const (
	TypeText  = "text"
	TypeChart = "chart"
	TypeImage = "image"
)

// Catalog is an ordered, read-only list of widget types.
type Catalog struct {
	types []Type
}

// NewCatalog creates a catalog from types in the given order.
// The slice is copied; later changes to types do not affect the catalog.
func NewCatalog(types ...Type) *Catalog {
	c := &Catalog{types: make([]Type, len(types))}
	copy(c.types, types)
	return c
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		Type{ID: TypeText, Name: "Text Widget"},
		Type{ID: TypeChart, Name: "Chart Widget"},
		Type{ID: TypeImage, Name: "Image Widget"},
	)
}

// Types returns a copy of the catalog entries in order.
func (c *Catalog) Types() []Type {
	out := make([]Type, len(c.types))
	copy(out, c.types)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.types)
}

// At returns the entry at index i. ok is false when i is out of range.
func (c *Catalog) At(i int) (Type, bool) {
	if i < 0 || i >= len(c.types) {
		return Type{}, false
	}
	return c.types[i], true
}

// Lookup finds the entry with the given id.
func (c *Catalog) Lookup(id string) (Type, bool) {
	for _, t := range c.types {
		if t.ID == id {
			return t, true
		}
	}
	return Type{}, false
}

// DisplayName returns the catalog name for typeID, or typeID itself when the
// type is unknown.
func (c *Catalog) DisplayName(typeID string) string {
	if t, ok := c.Lookup(typeID); ok {
		return t.Name
	}
	return typeID
}

package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Order(t *testing.T) {
	c := DefaultCatalog()
	require.Equal(t, 3, c.Len())

	want := []string{TypeText, TypeChart, TypeImage}
	for i, id := range want {
		got, ok := c.At(i)
		require.True(t, ok)
		assert.Equal(t, id, got.ID)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := DefaultCatalog()

	chart, ok := c.Lookup("chart")
	require.True(t, ok)
	assert.Equal(t, "Chart Widget", chart.Name)

	_, ok = c.Lookup("gauge")
	assert.False(t, ok, "unknown type should not be found")
}

func TestCatalog_At_OutOfRange(t *testing.T) {
	c := DefaultCatalog()
	_, ok := c.At(-1)
	assert.False(t, ok)
	_, ok = c.At(c.Len())
	assert.False(t, ok)
}

func TestCatalog_TypesIsCopy(t *testing.T) {
	c := DefaultCatalog()
	types := c.Types()
	types[0].Name = "changed"

	first, _ := c.At(0)
	assert.Equal(t, "Text Widget", first.Name)
}

func TestCatalog_DisplayName(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, "Image Widget", c.DisplayName("image"))
	assert.Equal(t, "legacy", c.DisplayName("legacy"))
}

func TestNew_UsesTypeNameAndFreshID(t *testing.T) {
	ids := IDFunc(func() string { return "fixed-id" })
	w := New(Type{ID: "chart", Name: "Chart Widget"}, ids)

	assert.Equal(t, Instance{ID: "fixed-id", Type: "chart", Title: "Chart Widget"}, w)
}

func TestUUIDGenerator_Unique(t *testing.T) {
	var g UUIDGenerator
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %q", id)
		seen[id] = true
	}
}

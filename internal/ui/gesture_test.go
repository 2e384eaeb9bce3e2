package ui

import (
	"testing"

	"dashbuilder/internal/drag"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGesture_CatalogPickUpHoversAfterLastWidget(t *testing.T) {
	var g Gesture
	g.PickUp(drag.Location{Zone: drag.ZoneCatalog, Index: 1}, "chart", 2, 3)

	require.True(t, g.Active())
	assert.Equal(t, drag.Location{Zone: drag.ZoneDashboard, Index: 2}, g.Hover())
}

func TestGesture_DropEmitsEvent(t *testing.T) {
	var g Gesture
	g.PickUp(drag.Location{Zone: drag.ZoneCatalog, Index: 1}, "chart", 2, 3)

	_, done := g.Handle(keyMsg("left"), 1)
	require.False(t, done)
	ev, done := g.Handle(keyMsg("enter"), 1)
	require.True(t, done)

	require.NotNil(t, ev.Destination)
	assert.Equal(t, drag.Location{Zone: drag.ZoneCatalog, Index: 1}, ev.Source)
	assert.Equal(t, drag.Location{Zone: drag.ZoneDashboard, Index: 1}, *ev.Destination)
	assert.Equal(t, "chart", ev.DraggableID)
	assert.False(t, g.Active(), "gesture ends on drop")
}

func TestGesture_EscEmitsEventWithoutDestination(t *testing.T) {
	var g Gesture
	g.PickUp(drag.Location{Zone: drag.ZoneDashboard, Index: 0}, "w1", 3, 3)

	ev, done := g.Handle(keyMsg("esc"), 1)
	require.True(t, done)
	assert.Nil(t, ev.Destination)
	assert.Equal(t, "w1", ev.DraggableID)
	assert.False(t, g.Active())
}

func TestGesture_ClampsMarker(t *testing.T) {
	tests := []struct {
		name string
		src  drag.Location
		keys []string
		want int
	}{
		{"reorder stops at last slot", drag.Location{Zone: drag.ZoneDashboard, Index: 1}, []string{"l", "l", "l"}, 2},
		{"reorder stops at first slot", drag.Location{Zone: drag.ZoneDashboard, Index: 1}, []string{"h", "h"}, 0},
		{"insert may land after last", drag.Location{Zone: drag.ZoneCatalog, Index: 0}, []string{"l", "l"}, 3},
		{"insert moves back", drag.Location{Zone: drag.ZoneCatalog, Index: 0}, []string{"h", "h", "h", "h", "h"}, 0},
		{"end key", drag.Location{Zone: drag.ZoneDashboard, Index: 0}, []string{"G"}, 2},
		{"home key", drag.Location{Zone: drag.ZoneDashboard, Index: 2}, []string{"g"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var g Gesture
			g.PickUp(tt.src, "x", 3, 3)
			for _, k := range tt.keys {
				g.Handle(keyMsg(k), 1)
			}
			assert.Equal(t, tt.want, g.Hover().Index)
		})
	}
}

func TestGesture_VerticalMovesByColumns(t *testing.T) {
	var g Gesture
	g.PickUp(drag.Location{Zone: drag.ZoneDashboard, Index: 0}, "x", 7, 3)

	g.Handle(keyMsg("j"), 3)
	assert.Equal(t, 3, g.Hover().Index)
	g.Handle(keyMsg("down"), 3)
	assert.Equal(t, 6, g.Hover().Index)
	g.Handle(keyMsg("k"), 3)
	assert.Equal(t, 3, g.Hover().Index)
}

func TestGesture_TabSwitchesZone(t *testing.T) {
	var g Gesture
	g.PickUp(drag.Location{Zone: drag.ZoneDashboard, Index: 2}, "w3", 3, 2)

	g.Handle(keyMsg("tab"), 1)
	assert.Equal(t, drag.Location{Zone: drag.ZoneCatalog, Index: 1}, g.Hover(), "index clamps to the catalog")

	ev, done := g.Handle(keyMsg("enter"), 1)
	require.True(t, done)
	require.NotNil(t, ev.Destination)
	assert.Equal(t, drag.ZoneCatalog, ev.Destination.Zone)
}

func TestGesture_EmptyDashboardInsert(t *testing.T) {
	var g Gesture
	g.PickUp(drag.Location{Zone: drag.ZoneCatalog, Index: 0}, "text", 0, 3)
	g.Handle(keyMsg("l"), 1)
	g.Handle(keyMsg("h"), 1)

	assert.Equal(t, drag.Location{Zone: drag.ZoneDashboard, Index: 0}, g.Hover())
}

func TestGesture_InactiveIgnoresKeys(t *testing.T) {
	var g Gesture
	_, done := g.Handle(keyMsg("enter"), 1)
	assert.False(t, done)
}

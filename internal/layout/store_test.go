package layout

import (
	"fmt"
	"testing"

	"dashbuilder/internal/widget"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWidgets() []widget.Instance {
	return []widget.Instance{
		{ID: "w1", Type: "text", Title: "First"},
		{ID: "w2", Type: "text", Title: "Second"},
	}
}

func ids(ws []widget.Instance) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.ID
	}
	return out
}

// seqIDs returns a deterministic generator: id-1, id-2, ...
func seqIDs() widget.IDGenerator {
	n := 0
	return widget.IDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})
}

func TestDefault(t *testing.T) {
	got := Default(seqIDs())
	require.Len(t, got, 1)
	assert.Equal(t, widget.Instance{ID: "id-1", Type: "text", Title: "Welcome Widget"}, got[0])
}

func TestStore_Reorder_Scenario(t *testing.T) {
	s := NewStore(twoWidgets())
	s.Reorder(0, 1)
	assert.Equal(t, []string{"w2", "w1"}, ids(s.Widgets()))
}

func TestStore_Reorder_IsPermutation(t *testing.T) {
	base := []widget.Instance{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}
	for from := 0; from < len(base); from++ {
		for to := 0; to < len(base); to++ {
			t.Run(fmt.Sprintf("%d_to_%d", from, to), func(t *testing.T) {
				s := NewStore(base)
				s.Reorder(from, to)
				got := s.Widgets()
				require.Len(t, got, len(base))
				assert.ElementsMatch(t, ids(base), ids(got))
				assert.Equal(t, base[from].ID, got[to].ID, "moved widget lands at destination")
			})
		}
	}
}

func TestStore_Reorder_AdjacentRoundTrip(t *testing.T) {
	base := []widget.Instance{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}}
	for i := 0; i+1 < len(base); i++ {
		for _, pair := range [][2]int{{i, i + 1}, {i + 1, i}} {
			s := NewStore(base)
			s.Reorder(pair[0], pair[1])
			s.Reorder(pair[1], pair[0])
			if diff := cmp.Diff(base, s.Widgets()); diff != "" {
				t.Errorf("reorder(%d,%d) round trip mismatch (-want +got):\n%s", pair[0], pair[1], diff)
			}
		}
	}
}

func TestStore_Reorder_ClampsDestination(t *testing.T) {
	s := NewStore([]widget.Instance{{ID: "a"}, {ID: "b"}, {ID: "c"}})
	s.Reorder(0, 10)
	assert.Equal(t, []string{"b", "c", "a"}, ids(s.Widgets()))

	s.Reorder(2, -3)
	assert.Equal(t, []string{"a", "b", "c"}, ids(s.Widgets()))
}

func TestStore_Reorder_InvalidSourceIsNoop(t *testing.T) {
	s := NewStore(twoWidgets())
	s.Reorder(5, 0)
	s.Reorder(-1, 0)
	assert.Equal(t, twoWidgets(), s.Widgets())
}

func TestStore_Insert_PreservesSurvivors(t *testing.T) {
	base := []widget.Instance{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	for k := 0; k <= len(base); k++ {
		t.Run(fmt.Sprintf("at_%d", k), func(t *testing.T) {
			s := NewStore(base)
			w := widget.Instance{ID: "new", Type: "chart", Title: "Chart Widget"}
			s.Insert(w, k)

			got := s.Widgets()
			require.Len(t, got, len(base)+1)
			assert.Equal(t, w, got[k])

			var survivors []string
			for _, g := range got {
				if g.ID != "new" {
					survivors = append(survivors, g.ID)
				}
			}
			assert.Equal(t, ids(base), survivors, "existing ids keep relative order")
		})
	}
}

func TestStore_Insert_Uniqueness(t *testing.T) {
	gen := widget.UUIDGenerator{}
	s := NewStore(Default(gen))
	chart := widget.Type{ID: "chart", Name: "Chart Widget"}
	for i := 0; i < 50; i++ {
		s.Insert(widget.New(chart, gen), i%(s.Len()+1))
	}

	seen := make(map[string]bool)
	for _, w := range s.Widgets() {
		require.False(t, seen[w.ID], "duplicate id %s", w.ID)
		seen[w.ID] = true
	}
	assert.Len(t, seen, 51)
}

func TestStore_Retitle_IsLocal(t *testing.T) {
	s := NewStore(twoWidgets())
	ok := s.Retitle("w2", "Renamed")
	require.True(t, ok)

	want := twoWidgets()
	want[1].Title = "Renamed"
	if diff := cmp.Diff(want, s.Widgets()); diff != "" {
		t.Errorf("retitle changed more than the title (-want +got):\n%s", diff)
	}
}

func TestStore_Retitle_MissIsSilentNoop(t *testing.T) {
	s := NewStore(twoWidgets())
	ok := s.Retitle("nope", "Renamed")
	assert.False(t, ok)
	assert.Equal(t, twoWidgets(), s.Widgets())
}

func TestStore_ReplaceAll_AcceptsUnknownTypes(t *testing.T) {
	s := NewStore(twoWidgets())
	loaded := []widget.Instance{{ID: "x", Type: "gauge", Title: ""}}
	s.ReplaceAll(loaded)

	assert.Equal(t, loaded, s.Widgets())
	loaded[0].Title = "mutated"
	w, _ := s.At(0)
	assert.Empty(t, w.Title, "store keeps its own copy")
}

func TestStore_Lookups(t *testing.T) {
	s := NewStore(twoWidgets())
	assert.Equal(t, 1, s.IndexOf("w2"))
	assert.Equal(t, -1, s.IndexOf("w9"))

	w, ok := s.Find("w1")
	require.True(t, ok)
	assert.Equal(t, "First", w.Title)

	_, ok = s.At(2)
	assert.False(t, ok)
}

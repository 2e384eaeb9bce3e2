package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingView records how many messages reached it.
type countingView struct{ n int }

func (v *countingView) Init() tea.Cmd { return nil }
func (v *countingView) Update(tea.Msg) (View, tea.Cmd) {
	v.n++
	return v, nil
}
func (v *countingView) View() string { return "" }

func TestModalStack(t *testing.T) {
	var s ModalStack
	_, ok := s.Update(tea.KeyMsg{})
	assert.False(t, ok, "empty stack routes nothing")
	assert.False(t, s.Dismisses("esc"))
	s.Pop()

	bottom, top := &countingView{}, &countingView{}
	s.Push(Modal{View: bottom, DismissKey: "esc"})
	s.Push(Modal{View: top})
	require.Equal(t, 2, s.Len())

	_, ok = s.Update(tea.KeyMsg{})
	assert.True(t, ok)
	assert.Equal(t, 1, top.n)
	assert.Equal(t, 0, bottom.n, "only the top modal sees input")
	assert.False(t, s.Dismisses("esc"), "top modal has no dismiss key")

	s.Pop()
	got, ok := s.Top()
	require.True(t, ok)
	assert.Same(t, bottom, got.View)
	assert.True(t, s.Dismisses("esc"))
	assert.False(t, s.Dismisses("q"))
}

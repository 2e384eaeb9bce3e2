package ui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a view drawn over the panels. While it is on screen it gets
// every key except its dismiss key.
type Modal struct {
	View       View
	DismissKey string
}

// ModalStack holds open modals; the last pushed is on top.
type ModalStack struct {
	modals []Modal
}

func (s *ModalStack) Push(m Modal) {
	s.modals = append(s.modals, m)
}

// Pop closes the top modal. It is a no-op on an empty stack.
func (s *ModalStack) Pop() {
	if n := len(s.modals); n > 0 {
		s.modals = s.modals[:n-1]
	}
}

// Top returns the modal on top, if any.
func (s *ModalStack) Top() (Modal, bool) {
	if len(s.modals) == 0 {
		return Modal{}, false
	}
	return s.modals[len(s.modals)-1], true
}

func (s *ModalStack) Len() int {
	return len(s.modals)
}

// Dismisses reports whether key closes the top modal.
func (s *ModalStack) Dismisses(key string) bool {
	top, ok := s.Top()
	return ok && top.DismissKey != "" && key == top.DismissKey
}

// Update routes msg to the top modal and keeps the view it returns. ok is
// false when no modal is open.
func (s *ModalStack) Update(msg tea.Msg) (cmd tea.Cmd, ok bool) {
	if len(s.modals) == 0 {
		return nil, false
	}
	top := &s.modals[len(s.modals)-1]
	top.View, cmd = top.View.Update(msg)
	return cmd, true
}

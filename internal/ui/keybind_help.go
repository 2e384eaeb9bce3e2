package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap implements help.KeyMap over the registry for one mode.
type KeyMap struct {
	registry   *KeybindRegistry
	keyHandler *KeyHandler
	mode       AppMode
	// extra are view-level keys that live outside the registry.
	extra []key.Binding
}

// NewKeyMap creates a KeyMap. While the handler waits for a leader
// sequence the map lists the possible continuations.
func NewKeyMap(registry *KeybindRegistry, keyHandler *KeyHandler, mode AppMode, extra ...key.Binding) *KeyMap {
	return &KeyMap{registry: registry, keyHandler: keyHandler, mode: mode, extra: extra}
}

// ShortHelp implements help.KeyMap.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return km.extra
	}
	if km.keyHandler != nil && km.keyHandler.LeaderWaiting {
		return km.leaderBindings()
	}
	return append(append([]key.Binding(nil), km.extra...), km.registry.Bindings(km.mode)...)
}

// FullHelp implements help.KeyMap.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	return [][]key.Binding{short}
}

func (km *KeyMap) leaderBindings() []key.Binding {
	hints := km.registry.LeaderHints(km.keyHandler.CurrentSeq(), km.mode)
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	return append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
}

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Muted
	m.Styles.ShortSeparator = Styles.Muted
	return m
}

// RenderKeybindHelp renders the hint line for mode. After SPC it shows the
// possible next keys in a box labelled with the sequence so far.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode, width int, extra ...key.Binding) string {
	if keyHandler == nil {
		return ""
	}
	h := newHelpModel()
	h.Width = width
	content := h.ShortHelpView(NewKeyMap(keyHandler.Registry, keyHandler, mode, extra...).ShortHelp())
	if !keyHandler.LeaderWaiting {
		return content
	}
	return Styles.BoxCompact.
		BorderForeground(lipgloss.Color(ColorAccent)).
		Render(Styles.Muted.Render(keyHandler.CurrentSeq()) + " " + content)
}

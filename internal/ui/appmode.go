package ui

// AppMode is what the keyboard currently drives.
type AppMode int

const (
	// ModeBrowse moves the cursor in the focused panel.
	ModeBrowse AppMode = iota
	// ModeDragging moves the drop marker of a picked-up item.
	ModeDragging
	// ModeEditing sends keys to the title editor.
	ModeEditing
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeDragging:
		return "Dragging"
	case ModeEditing:
		return "Editing"
	default:
		return "Unknown"
	}
}

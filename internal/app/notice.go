package app

import "fmt"

// NoticeKind identifies a user-facing outcome. Every save and load outcome
// has its own kind so the UI can show one distinguishable message each.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeSaved
	NoticeSaveFailed
	NoticeLoaded
	NoticeNothingToLoad
	NoticeLoadCorrupt
	NoticeLoadWrongShape
	NoticeLoadFailed
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeNone:
		return "none"
	case NoticeSaved:
		return "saved"
	case NoticeSaveFailed:
		return "save_failed"
	case NoticeLoaded:
		return "loaded"
	case NoticeNothingToLoad:
		return "nothing_to_load"
	case NoticeLoadCorrupt:
		return "load_corrupt"
	case NoticeLoadWrongShape:
		return "load_wrong_shape"
	case NoticeLoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}

// IsError reports whether the notice describes a failure.
func (k NoticeKind) IsError() bool {
	switch k {
	case NoticeSaveFailed, NoticeLoadCorrupt, NoticeLoadWrongShape, NoticeLoadFailed:
		return true
	}
	return false
}

// Notice is a message for the user about the last save or load.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
}

func newNotice(kind NoticeKind, err error) Notice {
	return Notice{Kind: kind, Message: noticeMessage(kind), Err: err}
}

func noticeMessage(k NoticeKind) string {
	switch k {
	case NoticeSaved:
		return "Dashboard saved!"
	case NoticeSaveFailed:
		return "Failed to save dashboard."
	case NoticeLoaded:
		return "Dashboard loaded!"
	case NoticeNothingToLoad:
		return "No saved dashboard found."
	case NoticeLoadCorrupt:
		return "Failed to load dashboard: saved data is corrupt."
	case NoticeLoadWrongShape:
		return "Saved data is not in correct format."
	case NoticeLoadFailed:
		return "Failed to load dashboard."
	default:
		return ""
	}
}

// String renders the notice for display, with the cause for failures.
func (n Notice) String() string {
	if n.Err != nil && n.Kind.IsError() {
		return fmt.Sprintf("%s (%v)", n.Message, n.Err)
	}
	return n.Message
}

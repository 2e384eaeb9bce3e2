package persist

import (
	"fmt"

	"dashbuilder/internal/jsonutil"
	"dashbuilder/internal/widget"
)

// Status tags the outcome of a load.
type Status int

const (
	// StatusLoaded means Widgets holds the decoded layout.
	StatusLoaded Status = iota
	// StatusNotFound means nothing was saved. Not an error.
	StatusNotFound
	// StatusCorrupt means the stored bytes are not valid JSON.
	StatusCorrupt
	// StatusWrongShape means the JSON is valid but not an array of records.
	StatusWrongShape
	// StatusReadFailed means the store itself could not be read.
	StatusReadFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoaded:
		return "loaded"
	case StatusNotFound:
		return "not_found"
	case StatusCorrupt:
		return "corrupt"
	case StatusWrongShape:
		return "wrong_shape"
	case StatusReadFailed:
		return "read_failed"
	default:
		return "unknown"
	}
}

// LoadResult is the tagged outcome of Adapter.Load.
type LoadResult struct {
	Status  Status
	Widgets []widget.Instance
	Err     error
}

// OK reports whether Widgets can be installed.
func (r LoadResult) OK() bool {
	return r.Status == StatusLoaded
}

// Decode parses a stored layout. Only the top level is checked: it must be
// an array. Each element's id, type and title are read as strings (other
// scalars are stringified, missing fields are empty) and extra fields are
// ignored. An element that is not an object yields a widget with every
// field empty.
func Decode(data []byte) LoadResult {
	var raw interface{}
	if err := jsonutil.UnmarshalWithContext(data, &raw, "decode layout"); err != nil {
		return LoadResult{Status: StatusCorrupt, Err: err}
	}
	items, ok := raw.([]interface{})
	if !ok {
		return LoadResult{
			Status: StatusWrongShape,
			Err:    fmt.Errorf("decode layout: expected array, got %s", jsonutil.Kind(raw)),
		}
	}

	widgets := make([]widget.Instance, 0, len(items))
	for _, item := range items {
		rec, _ := item.(map[string]interface{}) // nil map reads as all-missing
		widgets = append(widgets, widget.Instance{
			ID:    jsonutil.Field(rec, "id"),
			Type:  jsonutil.Field(rec, "type"),
			Title: jsonutil.Field(rec, "title"),
		})
	}
	return LoadResult{Status: StatusLoaded, Widgets: widgets}
}

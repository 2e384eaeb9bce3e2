// Package persist saves and loads the layout to one slot of a key-value
// byte store, encoded as a JSON array of {"id","type","title"} records.
//
// Failures never escape as panics: Save returns an error wrapping
// ErrSaveFailed, and Load returns a tagged LoadResult.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dashbuilder/internal/kvstore"
	"dashbuilder/internal/telemetry"
	"dashbuilder/internal/widget"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// DefaultKey is the storage key the layout is saved under.
const DefaultKey = "dashboardLayout"

// ErrSaveFailed wraps every Save failure.
var ErrSaveFailed = errors.New("save failed")

// Adapter reads and writes the layout slot.
type Adapter struct {
	store  kvstore.Store
	key    string
	tracer oteltrace.Tracer
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithKey overrides DefaultKey.
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithTracer sets the tracer used for save/load spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(a *Adapter) {
		if t != nil {
			a.tracer = t
		}
	}
}

// NewAdapter creates an adapter over store.
func NewAdapter(store kvstore.Store, opts ...Option) *Adapter {
	a := &Adapter{
		store:  store,
		key:    DefaultKey,
		tracer: telemetry.Disabled().Tracer(),
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Key returns the storage key in use.
func (a *Adapter) Key() string {
	return a.key
}

// Save encodes widgets and writes them to the slot. On failure the slot
// keeps its previous value.
func (a *Adapter) Save(widgets []widget.Instance) error {
	_, span := a.tracer.Start(context.Background(), "layout.save",
		oteltrace.WithAttributes(
			attribute.String("dashbuilder.storage.key", a.key),
			attribute.Int("dashbuilder.layout.widgets", len(widgets)),
		))
	defer span.End()

	data, err := Encode(widgets)
	if err == nil {
		err = a.store.Set(a.key, data)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}
	span.SetAttributes(attribute.Int("dashbuilder.layout.bytes", len(data)))
	return nil
}

// Load reads and decodes the slot.
func (a *Adapter) Load() LoadResult {
	_, span := a.tracer.Start(context.Background(), "layout.load",
		oteltrace.WithAttributes(attribute.String("dashbuilder.storage.key", a.key)))
	defer span.End()

	res := a.load()
	span.SetAttributes(attribute.String("dashbuilder.load.status", res.Status.String()))
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Status.String())
	}
	return res
}

func (a *Adapter) load() LoadResult {
	data, ok, err := a.store.Get(a.key)
	if err != nil {
		return LoadResult{Status: StatusReadFailed, Err: err}
	}
	if !ok || len(data) == 0 {
		return LoadResult{Status: StatusNotFound}
	}
	return Decode(data)
}

// Clear removes the saved layout.
func (a *Adapter) Clear() error {
	return a.store.Delete(a.key)
}

// Encode serializes widgets as a JSON array. A nil slice encodes as [].
func Encode(widgets []widget.Instance) ([]byte, error) {
	if widgets == nil {
		widgets = []widget.Instance{}
	}
	return json.Marshal(widgets)
}

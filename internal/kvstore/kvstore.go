// Package kvstore provides the durable key-value byte store the layout is
// persisted to. Access is synchronous; there is a single writer.
package kvstore

import (
	"errors"
	"fmt"
)

// ErrQuotaExceeded is returned by Set when the value would not fit.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store is a synchronous byte store keyed by string.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent;
	// err is reserved for read failures.
	Get(key string) (value []byte, ok bool, err error)
	// Set writes value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

// Options configures Open.
type Options struct {
	Backend Backend
	// DataDir holds the store's files. Empty means DefaultDataDir().
	DataDir string
	// QuotaBytes caps the size of a single value. Zero disables the cap.
	QuotaBytes int
}

// Open creates the store described by opts.
func Open(opts Options) (Store, error) {
	var (
		s   Store
		err error
	)
	switch opts.Backend {
	case BackendFile, "":
		s, err = NewFileStore(opts.DataDir)
	case BackendSQLite:
		s, err = OpenSQLite(opts.DataDir)
	case BackendMemory:
		s = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	if opts.QuotaBytes > 0 {
		s = WithQuota(s, opts.QuotaBytes)
	}
	return s, nil
}

type quotaStore struct {
	Store
	max int
}

// WithQuota wraps s so that Set rejects values larger than maxBytes with
// ErrQuotaExceeded, mirroring browser storage limits.
func WithQuota(s Store, maxBytes int) Store {
	return &quotaStore{Store: s, max: maxBytes}
}

func (q *quotaStore) Set(key string, value []byte) error {
	if len(value) > q.max {
		return fmt.Errorf("set %q: %d bytes over %d byte limit: %w", key, len(value), q.max, ErrQuotaExceeded)
	}
	return q.Store.Set(key, value)
}

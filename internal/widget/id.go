package widget

import "github.com/google/uuid"

// IDGenerator produces fresh instance ids. No collision detection is done;
// implementations must make collisions negligible.
type IDGenerator interface {
	NewID() string
}

// IDFunc adapts a function to IDGenerator.
type IDFunc func() string

// NewID implements IDGenerator.
func (f IDFunc) NewID() string { return f() }

// UUIDGenerator issues random (v4) UUIDs.
type UUIDGenerator struct{}

// Ensure UUIDGenerator implements IDGenerator.
var _ IDGenerator = UUIDGenerator{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

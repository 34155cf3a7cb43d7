package timer

import "github.com/google/uuid"

// IDPrefix starts every generated timer id.
const IDPrefix = "timer-"

// maxIDAttempts bounds the collision retry loop in CreateTimer.
const maxIDAttempts = 32

// IDGenerator produces candidate timer ids. The manager retries on
// collision with a live timer, so generators need not be collision-free.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates "timer-<uuid>" ids.
type UUIDGenerator struct{}

// NewID returns a fresh random id.
func (UUIDGenerator) NewID() string {
	return IDPrefix + uuid.NewString()
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string {
	return f()
}

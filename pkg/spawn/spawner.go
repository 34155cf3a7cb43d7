package spawn

import (
	"errors"
	"strings"
	"sync/atomic"
)

// Spawner runs tasks on background execution units.
type Spawner interface {
	// Name identifies the environment ("goroutine", "pool").
	Name() string

	// Spawn runs task on a new unit. It returns without waiting for task.
	Spawn(task func()) error

	// Close releases the environment. Spawn fails afterwards.
	Close() error
}

// Mode selects a Spawner implementation.
type Mode string

const (
	// ModeAuto picks the pool when a pool size is set, goroutines otherwise.
	ModeAuto Mode = "auto"

	// ModeGoroutine runs each task on its own goroutine.
	ModeGoroutine Mode = "goroutine"

	// ModePool runs tasks on a bounded ants pool.
	ModePool Mode = "pool"
)

// ParseMode parses a mode name (case-insensitive). Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ModeAuto, nil
	case "goroutine":
		return ModeGoroutine, nil
	case "pool":
		return ModePool, nil
	default:
		return "", &UnsupportedEnvironmentError{Environment: s}
	}
}

// Goroutine spawns one goroutine per task.
type Goroutine struct {
	closed atomic.Bool
}

// NewGoroutine creates a goroutine spawner.
func NewGoroutine() *Goroutine {
	return &Goroutine{}
}

// Name returns "goroutine".
func (g *Goroutine) Name() string { return string(ModeGoroutine) }

// Spawn starts task on a new goroutine.
func (g *Goroutine) Spawn(task func()) error {
	if g.closed.Load() {
		return &UnsupportedEnvironmentError{
			Environment: g.Name(),
			Cause:       errors.New("spawner closed"),
		}
	}
	go task()
	return nil
}

// Close marks the spawner closed. Running goroutines are not affected.
func (g *Goroutine) Close() error {
	g.closed.Store(true)
	return nil
}

var _ Spawner = (*Goroutine)(nil)

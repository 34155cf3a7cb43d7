package timer

import "github.com/ticktock-timers/ticktock-go/pkg/wire"

// Handle controls one timer. All methods return without waiting for the
// worker to act; results arrive through the timer's callbacks.
//
// Once the timer has been stopped, has completed or has faulted, every
// method returns ErrTimerNotFound and has no effect.
type Handle struct {
	id string
	m  *Manager
}

// ID returns the timer id.
func (h *Handle) ID() string { return h.id }

// Start begins a run. Ignored unless the timer is idle.
func (h *Handle) Start() error { return h.m.Send(h.id, wire.CmdStart) }

// Pause freezes elapsed time. Ignored unless running.
func (h *Handle) Pause() error { return h.m.Send(h.id, wire.CmdPause) }

// Resume continues from the frozen elapsed time. Ignored unless paused.
func (h *Handle) Resume() error { return h.m.Send(h.id, wire.CmdResume) }

// Reset halts ticking and reports the kind's zero value. Start runs again.
func (h *Handle) Reset() error { return h.m.Send(h.id, wire.CmdReset) }

// Stop tears the timer down.
func (h *Handle) Stop() error { return h.m.Stop(h.id) }

package worker

import (
	"time"

	"github.com/ticktock-timers/ticktock-go/pkg/timefmt"
	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Cadence is the interval between ticks while a timer is running.
const Cadence = time.Second

// Jitter is the scheduling slack absorbed when a tick samples the clock.
const Jitter = 50 * time.Millisecond

// State is the run state of a worker.
type State uint8

const (
	// StateIdle is the state before start and after reset.
	StateIdle State = iota

	// StateRunning emits a tick on every cadence firing.
	StateRunning

	// StatePaused holds elapsed time frozen.
	StatePaused

	// StateCompleted follows the terminal tick.
	StateCompleted

	// StateStopped follows an explicit stop or a fault.
	StateStopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	case StateCompleted:
		return "COMPLETED"
	case StateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal returns true for Completed and Stopped.
func (s State) IsTerminal() bool {
	return s == StateCompleted || s == StateStopped
}

// Evaluate computes the display string for a timer of kind and duration
// that has been running for elapsed, and whether this is the terminal tick.
//
// Countdown shows the floored remaining time and completes with "00:00:00"
// once nothing remains. Stopwatch shows the floored elapsed time and
// completes with exactly the duration, even when elapsed overshoots it.
func Evaluate(kind wire.Kind, duration, elapsed time.Duration) (string, bool) {
	if kind == wire.KindCountdown {
		remaining := duration - elapsed
		if remaining <= 0 {
			return timefmt.Zero, true
		}
		return timefmt.Format(remaining), false
	}

	if elapsed >= duration {
		return timefmt.Format(duration), true
	}
	return timefmt.Format(elapsed), false
}

// Snap moves elapsed onto the nearest cadence boundary when it lies within
// Jitter of it. A tick delivered a little late then still reports the
// second it was scheduled for.
func Snap(elapsed time.Duration) time.Duration {
	nearest := elapsed.Round(Cadence)
	if diff := elapsed - nearest; diff <= Jitter && diff >= -Jitter {
		return nearest
	}
	return elapsed
}

// ZeroValue returns the display string reported after a reset.
func ZeroValue(kind wire.Kind, duration time.Duration) string {
	if kind == wire.KindCountdown {
		return timefmt.Format(duration)
	}
	return timefmt.Zero
}

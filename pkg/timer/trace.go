package timer

import (
	"time"

	"github.com/ticktock-timers/ticktock-go/pkg/log"
	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Registry states recorded in the event trace.
const (
	StateActive    = "ACTIVE"
	StateStopped   = "STOPPED"
	StateCompleted = "COMPLETED"
	StateFaulted   = "FAULTED"
	StateClosed    = "CLOSED"
)

func (m *Manager) traceCommand(id string, kind Kind, cmd *wire.Command) {
	m.trace.Log(log.Event{
		Timestamp: time.Now(),
		TimerID:   id,
		Direction: log.DirectionOut,
		Category:  log.CategoryCommand,
		Kind:      kind,
		Command: &log.CommandEvent{
			Type:       cmd.Type,
			DurationMs: cmd.DurationMs,
		},
	})
}

func (m *Manager) traceResponse(resp *wire.Response, kind Kind, stale bool) {
	m.trace.Log(log.Event{
		Timestamp: time.Now(),
		TimerID:   resp.ID,
		Direction: log.DirectionIn,
		Category:  log.CategoryResponse,
		Kind:      kind,
		Response: &log.ResponseEvent{
			TimeString: resp.TimeString,
			Done:       resp.Done,
			Stale:      stale,
		},
	})
}

func (m *Manager) traceState(id string, kind Kind, from, to, reason string) {
	m.trace.Log(log.Event{
		Timestamp: time.Now(),
		TimerID:   id,
		Direction: log.DirectionOut,
		Category:  log.CategoryState,
		Kind:      kind,
		StateChange: &log.StateChangeEvent{
			OldState: from,
			NewState: to,
			Reason:   reason,
		},
	})
}

func (m *Manager) traceError(id string, kind Kind, msg, context string) {
	m.trace.Log(log.Event{
		Timestamp: time.Now(),
		TimerID:   id,
		Direction: log.DirectionIn,
		Category:  log.CategoryError,
		Kind:      kind,
		Error: &log.ErrorEventData{
			Message: msg,
			Context: context,
		},
	})
}

package log

import (
	"time"

	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Event represents a timer trace event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (wall clock, nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// TimerID identifies the timer the event belongs to.
	TimerID string `cbor:"2,keyasint"`

	// Direction indicates message flow relative to the manager.
	Direction Direction `cbor:"3,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Kind is the timer kind, when known.
	Kind wire.Kind `cbor:"5,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Command     *CommandEvent     `cbor:"10,keyasint,omitempty"`
	Response    *ResponseEvent    `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates a message from a worker to the manager.
	DirectionIn Direction = 0
	// DirectionOut indicates a message from the manager to a worker.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryCommand indicates a command sent to a worker.
	CategoryCommand Category = 0
	// CategoryResponse indicates a tick or completion from a worker.
	CategoryResponse Category = 1
	// CategoryState indicates a registry lifecycle change.
	CategoryState Category = 2
	// CategoryError indicates a fault or delivery failure.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryCommand:
		return "COMMAND"
	case CategoryResponse:
		return "RESPONSE"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	return c <= CategoryError
}

// CommandEvent captures a command sent to a worker.
type CommandEvent struct {
	// Type is the command.
	Type wire.CommandType `cbor:"1,keyasint"`

	// DurationMs is the configured duration (init only).
	DurationMs int64 `cbor:"2,keyasint,omitempty"`
}

// ResponseEvent captures a response posted by a worker.
type ResponseEvent struct {
	// TimeString is the formatted HH:MM:SS value.
	TimeString string `cbor:"1,keyasint"`

	// Done marks the terminal tick.
	Done bool `cbor:"2,keyasint,omitempty"`

	// Stale marks a response dropped because its timer was no longer registered.
	Stale bool `cbor:"3,keyasint,omitempty"`
}

// StateChangeEvent captures a timer's registry lifecycle.
type StateChangeEvent struct {
	// OldState is the previous state (may be empty).
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// ErrorEventData captures faults and delivery failures.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}

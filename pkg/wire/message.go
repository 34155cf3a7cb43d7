package wire

import (
	"errors"
	"fmt"
)

// Message validation errors.
var (
	ErrInvalidCommand  = errors.New("invalid command")
	ErrInvalidResponse = errors.New("invalid response")
)

// Command is sent from the manager to a worker.
//
// CBOR encoding:
//
//	{
//	  1: type,        // uint8: 1=init .. 6=stop
//	  2: id,          // string
//	  3: kind,        // uint8: 1=countdown, 2=stopwatch (init only)
//	  4: durationMs   // int64 (init only)
//	}
type Command struct {
	Type       CommandType `cbor:"1,keyasint"`
	ID         string      `cbor:"2,keyasint"`
	Kind       Kind        `cbor:"3,keyasint,omitempty"`
	DurationMs int64       `cbor:"4,keyasint,omitempty"`
}

// Validate checks if the command is well formed.
func (c *Command) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("%w: unknown type %d", ErrInvalidCommand, c.Type)
	}
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCommand)
	}
	if c.Type == CmdInit {
		if !c.Kind.IsValid() {
			return fmt.Errorf("%w: unknown kind %d", ErrInvalidCommand, c.Kind)
		}
		if c.DurationMs < 0 {
			return fmt.Errorf("%w: negative duration %d", ErrInvalidCommand, c.DurationMs)
		}
	}
	return nil
}

// Response is posted from a worker to the manager.
//
// CBOR encoding:
//
//	{
//	  1: timeString,  // "HH:MM:SS"
//	  2: id,          // string
//	  3: done,        // bool, true only on the terminal tick
//	  4: error        // string, set only on a worker fault
//	}
type Response struct {
	TimeString string `cbor:"1,keyasint"`
	ID         string `cbor:"2,keyasint"`
	Done       bool   `cbor:"3,keyasint,omitempty"`
	Error      string `cbor:"4,keyasint,omitempty"`
}

// IsFault returns true if the response reports a worker fault.
func (r *Response) IsFault() bool {
	return r.Error != ""
}

// Validate checks if the response is well formed.
func (r *Response) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidResponse)
	}
	if r.Done && r.IsFault() {
		return fmt.Errorf("%w: fault cannot be a completion", ErrInvalidResponse)
	}
	return nil
}

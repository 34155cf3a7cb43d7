package wire

import (
	"fmt"
	"strings"
)

// CommandType identifies a worker command.
type CommandType uint8

const (
	// CmdInit configures the worker with its id, kind and duration.
	CmdInit CommandType = 1

	// CmdStart begins a run from the idle state.
	CmdStart CommandType = 2

	// CmdPause freezes elapsed time.
	CmdPause CommandType = 3

	// CmdResume continues a paused run from the frozen elapsed time.
	CmdResume CommandType = 4

	// CmdReset cancels the cadence and reports the zero value.
	CmdReset CommandType = 5

	// CmdStop tears the worker down.
	CmdStop CommandType = 6
)

// String returns the command name.
func (c CommandType) String() string {
	switch c {
	case CmdInit:
		return "init"
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdReset:
		return "reset"
	case CmdStop:
		return "stop"
	default:
		return "unknown"
	}
}

// IsValid returns true if the command type is known.
func (c CommandType) IsValid() bool {
	return c >= CmdInit && c <= CmdStop
}

// ParseCommandType parses a command name (case-insensitive).
func ParseCommandType(s string) (CommandType, error) {
	switch strings.ToLower(s) {
	case "init":
		return CmdInit, nil
	case "start":
		return CmdStart, nil
	case "pause":
		return CmdPause, nil
	case "resume", "continue":
		return CmdResume, nil
	case "reset":
		return CmdReset, nil
	case "stop":
		return CmdStop, nil
	default:
		return 0, fmt.Errorf("invalid command: %s", s)
	}
}

// Kind selects the tick arithmetic of a timer.
type Kind uint8

const (
	// KindCountdown counts remaining time down to zero.
	KindCountdown Kind = 1

	// KindStopwatch counts elapsed time up to the duration.
	KindStopwatch Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindCountdown:
		return "countdown"
	case KindStopwatch:
		return "stopwatch"
	default:
		return "unknown"
	}
}

// IsValid returns true if the kind is known.
func (k Kind) IsValid() bool {
	return k == KindCountdown || k == KindStopwatch
}

// ParseKind parses a kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "countdown":
		return KindCountdown, nil
	case "stopwatch":
		return KindStopwatch, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (must be countdown or stopwatch)", s)
	}
}

package timer

import (
	"errors"
	"fmt"

	"github.com/ticktock-timers/ticktock-go/pkg/spawn"
)

// Manager errors.
var (
	ErrTimerNotFound  = errors.New("timer not found")
	ErrInvalidOptions = errors.New("invalid timer options")
	ErrManagerClosed  = errors.New("timer manager closed")
	ErrWorkerFault    = errors.New("timer worker fault")
	ErrIDExhausted    = errors.New("could not generate a unique timer id")
)

// ErrUnsupportedEnvironment matches every *UnsupportedEnvironmentError.
var ErrUnsupportedEnvironment = spawn.ErrUnsupportedEnvironment

// UnsupportedEnvironmentError is returned by CreateTimer when no worker
// can be spawned.
type UnsupportedEnvironmentError = spawn.UnsupportedEnvironmentError

// WorkerFaultError is delivered to OnError when a worker reports a fault.
// The timer has already been removed when the callback runs.
type WorkerFaultError struct {
	ID     string
	Reason string
}

func (e *WorkerFaultError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrWorkerFault, e.ID, e.Reason)
}

// Is matches ErrWorkerFault.
func (e *WorkerFaultError) Is(target error) bool {
	return target == ErrWorkerFault
}

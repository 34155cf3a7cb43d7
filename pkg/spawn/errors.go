package spawn

import (
	"errors"
	"fmt"
)

// ErrUnsupportedEnvironment indicates that no background execution unit
// can be created in the current environment.
var ErrUnsupportedEnvironment = errors.New("unsupported execution environment")

// UnsupportedEnvironmentError reports why a worker could not be spawned.
type UnsupportedEnvironmentError struct {
	Environment string
	Cause       error
}

func (e *UnsupportedEnvironmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", ErrUnsupportedEnvironment, e.Environment, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrUnsupportedEnvironment, e.Environment)
}

func (e *UnsupportedEnvironmentError) Unwrap() error {
	return e.Cause
}

// Is matches ErrUnsupportedEnvironment.
func (e *UnsupportedEnvironmentError) Is(target error) bool {
	return target == ErrUnsupportedEnvironment
}

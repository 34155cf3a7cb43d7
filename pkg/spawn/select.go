package spawn

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Select builds the Spawner for mode.
//
// ModeAuto picks the pool when poolSize > 0 and goroutines otherwise.
// ModePool requires poolSize > 0. Any other mode is unsupported.
func Select(mode Mode, poolSize int, logger *logrus.Logger) (Spawner, error) {
	switch mode {
	case ModeAuto, "":
		if poolSize > 0 {
			return NewPool(poolSize, logger)
		}
		return NewGoroutine(), nil
	case ModeGoroutine:
		return NewGoroutine(), nil
	case ModePool:
		return NewPool(poolSize, logger)
	default:
		return nil, &UnsupportedEnvironmentError{
			Environment: string(mode),
			Cause:       errors.New("unknown mode"),
		}
	}
}

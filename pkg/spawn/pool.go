package spawn

import (
	"fmt"

	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"
)

// Pool runs tasks on an ants pool of fixed capacity.
//
// Each timer worker occupies one pool slot for its whole life, so the
// capacity bounds the number of concurrently live timers. The pool is
// non-blocking: Spawn fails immediately when every slot is taken.
type Pool struct {
	pool   *ants.Pool
	logger logrus.FieldLogger
}

// NewPool creates a pool with room for size concurrent tasks.
// logger may be nil.
func NewPool(size int, logger *logrus.Logger) (*Pool, error) {
	if size <= 0 {
		return nil, &UnsupportedEnvironmentError{
			Environment: string(ModePool),
			Cause:       fmt.Errorf("invalid pool size %d", size),
		}
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	p := &Pool{logger: logger}
	pool, err := ants.NewPool(size,
		ants.WithNonblocking(true),
		ants.WithLogger(logger),
		ants.WithPanicHandler(p.handlePanic),
	)
	if err != nil {
		return nil, &UnsupportedEnvironmentError{Environment: string(ModePool), Cause: err}
	}
	p.pool = pool
	return p, nil
}

// Name returns "pool".
func (p *Pool) Name() string { return string(ModePool) }

// Spawn submits task to the pool. A full or released pool yields
// *UnsupportedEnvironmentError wrapping ants.ErrPoolOverload or
// ants.ErrPoolClosed.
func (p *Pool) Spawn(task func()) error {
	if err := p.pool.Submit(task); err != nil {
		return &UnsupportedEnvironmentError{Environment: p.Name(), Cause: err}
	}
	return nil
}

// Running returns the number of tasks currently occupying a slot.
func (p *Pool) Running() int { return p.pool.Running() }

// Cap returns the pool capacity.
func (p *Pool) Cap() int { return p.pool.Cap() }

// Close releases the pool. Tasks already running keep their slot until
// they return.
func (p *Pool) Close() error {
	p.pool.Release()
	return nil
}

func (p *Pool) handlePanic(v any) {
	p.logger.WithField("panic", v).Error("pool task panicked")
}

var _ Spawner = (*Pool)(nil)

package clock

import "time"

// Clock is a monotonic time source with a ticker factory.
type Clock interface {
	// Now returns the time elapsed since the clock's origin.
	// Successive calls never decrease.
	Now() time.Duration

	// NewTicker returns a ticker that fires every d.
	NewTicker(d time.Duration) Ticker
}

// Ticker delivers periodic firings until stopped.
type Ticker interface {
	// C returns the channel on which firings are delivered.
	C() <-chan time.Time

	// Stop turns off the ticker. No further firings are sent after Stop returns.
	Stop()
}

// realClock reads the runtime's monotonic clock.
type realClock struct {
	origin time.Time
}

// Real returns a Clock backed by the runtime's monotonic reading.
// Its origin is the moment Real was called.
func Real() Clock {
	return &realClock{origin: time.Now()}
}

// Now returns the monotonic time since the clock was created.
func (c *realClock) Now() time.Duration {
	return time.Since(c.origin)
}

// NewTicker wraps time.NewTicker.
func (c *realClock) NewTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

// Compile-time interface satisfaction checks.
var (
	_ Clock  = (*realClock)(nil)
	_ Ticker = (*realTicker)(nil)
)

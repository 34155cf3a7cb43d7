package timer

import (
	"fmt"
	"time"

	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Kind selects countdown or stopwatch arithmetic.
type Kind = wire.Kind

// Timer kinds.
const (
	Countdown = wire.KindCountdown
	Stopwatch = wire.KindStopwatch
)

// Options configures a timer at creation. It is immutable afterwards.
type Options struct {
	// Kind is Countdown or Stopwatch.
	Kind Kind

	// Duration is the countdown target or the stopwatch auto-complete point.
	// Sub-millisecond precision is dropped.
	Duration time.Duration

	// OnTick receives every display value. Required.
	OnTick func(display, id string)

	// OnComplete is called once after the terminal tick.
	OnComplete func(id string)

	// OnError receives spawn failures and worker faults.
	OnError func(err error)
}

// Validate checks the options.
func (o *Options) Validate() error {
	if !o.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidOptions, o.Kind)
	}
	if o.Duration < 0 {
		return fmt.Errorf("%w: negative duration %s", ErrInvalidOptions, o.Duration)
	}
	if o.OnTick == nil {
		return fmt.Errorf("%w: OnTick is required", ErrInvalidOptions)
	}
	return nil
}

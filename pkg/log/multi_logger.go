package log

import (
	"fmt"
	"sync/atomic"
)

// MultiLogger fans each event out to several sinks, typically the console
// adapter and a FileLogger. A sink that panics is skipped for that event;
// the remaining sinks and the caller carry on.
type MultiLogger struct {
	sinks  []Logger
	panics atomic.Uint64
	last   atomic.Value // string
}

// NewMultiLogger returns a fan-out over the non-nil sinks.
func NewMultiLogger(sinks ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

func (m *MultiLogger) Log(event Event) {
	for i, s := range m.sinks {
		m.deliver(i, s, event)
	}
}

func (m *MultiLogger) deliver(i int, s Logger, event Event) {
	defer func() {
		if r := recover(); r != nil {
			m.panics.Add(1)
			m.last.Store(fmt.Sprintf("sink %d: %v", i, r))
		}
	}()
	s.Log(event)
}

// Panics reports how many deliveries panicked and describes the latest.
func (m *MultiLogger) Panics() (uint64, string) {
	last, _ := m.last.Load().(string)
	return m.panics.Load(), last
}

var _ Logger = (*MultiLogger)(nil)

package log

// Logger receives the timer event trace. The manager calls Log from its
// dispatch goroutine and from API callers, so implementations must be
// safe for concurrent use and should not block: a slow Log delays ticks.
type Logger interface {
	Log(event Event)
}

// NoopLogger drops every event. The zero value is ready to use.
type NoopLogger struct{}

func (NoopLogger) Log(Event) {}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(Event)

func (f LoggerFunc) Log(e Event) { f(e) }

// Only forwards to l the events whose category is one of cats.
func Only(l Logger, cats ...Category) Logger {
	var mask uint8
	for _, c := range cats {
		if c.IsValid() {
			mask |= 1 << c
		}
	}
	return LoggerFunc(func(e Event) {
		if e.Category.IsValid() && mask&(1<<e.Category) != 0 {
			l.Log(e)
		}
	})
}

var (
	_ Logger = NoopLogger{}
	_ Logger = LoggerFunc(nil)
)

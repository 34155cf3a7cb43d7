package log

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter writes timer events to a logrus logger at debug level.
// Useful for development when you want to see the trace in the console.
type LogrusAdapter struct {
	logger logrus.FieldLogger
}

// NewLogrusAdapter creates a LogrusAdapter that writes to logger.
func NewLogrusAdapter(logger logrus.FieldLogger) *LogrusAdapter {
	return &LogrusAdapter{logger: logger}
}

// Log writes the event as a structured debug entry.
func (a *LogrusAdapter) Log(event Event) {
	fields := logrus.Fields{
		"timer_id":  event.TimerID,
		"direction": event.Direction.String(),
		"category":  event.Category.String(),
	}
	if event.Kind.IsValid() {
		fields["kind"] = event.Kind.String()
	}

	switch {
	case event.Command != nil:
		fields["command"] = event.Command.Type.String()
		if event.Command.DurationMs > 0 {
			fields["duration_ms"] = event.Command.DurationMs
		}
	case event.Response != nil:
		fields["display"] = event.Response.TimeString
		if event.Response.Done {
			fields["done"] = true
		}
		if event.Response.Stale {
			fields["stale"] = true
		}
	case event.StateChange != nil:
		fields["old_state"] = event.StateChange.OldState
		fields["new_state"] = event.StateChange.NewState
		if event.StateChange.Reason != "" {
			fields["reason"] = event.StateChange.Reason
		}
	case event.Error != nil:
		fields["error_msg"] = event.Error.Message
		if event.Error.Context != "" {
			fields["error_context"] = event.Error.Context
		}
	}

	a.logger.WithFields(fields).Debug("timer event")
}

// Compile-time interface satisfaction check.
var _ Logger = (*LogrusAdapter)(nil)

// Package log provides the timer event trace.
//
// The trace is separate from operational logging (logrus). It captures every
// command the manager sends, every response a worker posts, registry
// lifecycle changes and faults as machine-readable events, so a run can be
// replayed and inspected after the fact.
//
// # Basic Usage
//
// Applications configure tracing by providing a Logger implementation:
//
//	// For development: write events to a logrus logger at debug level
//	cfg.EventLogger = log.NewLogrusAdapter(logrus.StandardLogger())
//
//	// For later inspection: append events to a trace file
//	cfg.EventLogger, _ = log.NewFileLogger("/var/log/ticktock/timers.tlog")
//
//	// Both: use MultiLogger, optionally narrowing a sink with Only
//	cfg.EventLogger = log.NewMultiLogger(log.Only(adapter, log.CategoryError), fileLogger)
//
// # Event Types
//
//   - Command: manager to worker (CommandEvent)
//   - Response: worker to manager (ResponseEvent)
//   - State: registry lifecycle of a timer (StateChangeEvent)
//   - Error: worker faults and delivery failures (ErrorEventData)
//
// # File Format
//
// Trace files are a stream of CBOR-encoded events with the .tlog extension.
// The "ticktock log" commands view and summarize them.
package log

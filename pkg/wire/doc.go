// Package wire defines the messages exchanged between the timer manager and
// its workers, and their CBOR encoding.
//
// The manager and a worker never share memory. Every instruction travels as
// an encoded Command and every result comes back as an encoded Response, the
// same way a browser page and a web worker exchange structured messages.
//
// # Message Types
//
//   - Command: manager to worker (init, start, pause, resume, reset, stop)
//   - Response: worker to manager (tick, completion, or fault)
//
// # CBOR Integer Keys
//
// All maps use integer keys for compactness:
//
//	Command  {1: type, 2: id, 3: kind, 4: durationMs}
//	Response {1: timeString, 2: id, 3: done, 4: error}
//
// The schema version is version.Protocol.
package wire

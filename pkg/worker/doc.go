// Package worker implements the per-timer state machine that runs on a
// background execution unit.
//
// A Worker owns one timer's clock readings. It receives CBOR-encoded
// wire.Command messages through its mailbox and posts CBOR-encoded
// wire.Response messages to the outbox it was given. Nothing else is
// shared with the manager.
//
// State machine:
//
//	Idle --start--> Running --pause--> Paused --resume--> Running
//	Running|Paused --reset--> Idle
//	Running --terminal tick--> Completed
//	any --stop--> Stopped
//
// Completed and Stopped are terminal: Run returns.
//
// Each tick samples the clock once and passes the elapsed time through Snap
// before Evaluate, so a firing that arrives a few milliseconds late still
// reports the second it was scheduled for.
package worker

// Package clock provides the monotonic time source used by timer workers.
//
// Workers never read the wall clock. Every elapsed or remaining value is
// computed from Clock.Now, which is a monotonic offset from the clock's
// origin and therefore unaffected by NTP corrections or manual changes to
// the system time.
//
// # Real and Fake
//
// Real returns the process clock backed by the runtime's monotonic reading.
// NewFake returns a manually advanced clock for tests:
//
//	clk := clock.NewFake()
//	ticker := clk.NewTicker(time.Second)
//	clk.Advance(time.Second) // ticker fires once
//
// Fake tickers behave like time.Ticker: each has a one-slot channel and
// firings are dropped while the slot is full.
package clock

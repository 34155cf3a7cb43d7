package clock

import (
	"sync"
	"time"
)

// fakeEpoch anchors the time.Time values sent on fake ticker channels.
var fakeEpoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Fake is a Clock whose time only moves when Advance is called.
// It is safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	now     time.Duration
	tickers []*fakeTicker
}

// NewFake creates a fake clock at offset zero.
func NewFake() *Fake {
	return &Fake{}
}

// Now returns the current fake time.
func (f *Fake) Now() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// NewTicker creates a ticker whose first firing is d after the current fake time.
func (f *Fake) NewTicker(d time.Duration) Ticker {
	if d <= 0 {
		panic("clock: non-positive interval for NewTicker")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	t := &fakeTicker{
		clock:  f,
		period: d,
		next:   f.now + d,
		ch:     make(chan time.Time, 1),
	}
	f.tickers = append(f.tickers, t)
	return t
}

// Advance moves the clock forward by d and fires every ticker whose
// deadline has been reached. Like time.Ticker, a ticker delivers at most
// one firing per call: missed periods are skipped, and a firing that finds
// the channel full is dropped. Deadlines keep their original phase.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now += d
	for _, t := range f.tickers {
		if t.next > f.now {
			continue
		}
		select {
		case t.ch <- fakeEpoch.Add(f.now):
		default:
		}
		missed := (f.now-t.next)/t.period + 1
		t.next += missed * t.period
	}
}

// ActiveTickers returns the number of tickers that have not been stopped.
func (f *Fake) ActiveTickers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

func (f *Fake) removeTicker(t *fakeTicker) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.tickers {
		if existing == t {
			f.tickers = append(f.tickers[:i], f.tickers[i+1:]...)
			return
		}
	}
}

type fakeTicker struct {
	clock  *Fake
	period time.Duration
	next   time.Duration
	ch     chan time.Time
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {
	t.clock.removeTicker(t)
}

// Compile-time interface satisfaction checks.
var (
	_ Clock  = (*Fake)(nil)
	_ Ticker = (*fakeTicker)(nil)
)

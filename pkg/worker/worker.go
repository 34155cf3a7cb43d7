package worker

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ticktock-timers/ticktock-go/pkg/clock"
	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// DefaultMailboxSize is the command buffer used when Config.MailboxSize is zero.
const DefaultMailboxSize = 16

// Config configures a Worker.
type Config struct {
	// ID is the timer id. It is stamped on every response, including
	// faults reported before init arrives.
	ID string

	// Clock supplies monotonic readings and the cadence ticker.
	// Defaults to clock.Real().
	Clock clock.Clock

	// Outbox receives encoded wire.Response messages.
	Outbox chan<- []byte

	// MailboxSize is the command buffer capacity.
	MailboxSize int

	// Logger receives debug output. Defaults to a discarding logger.
	Logger logrus.FieldLogger
}

// Worker runs one timer's state machine.
//
// Post and Terminate may be called from any goroutine. All other state is
// owned by the goroutine executing Run.
type Worker struct {
	id      string
	clock   clock.Clock
	outbox  chan<- []byte
	mailbox chan []byte
	logger  logrus.FieldLogger

	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
	doneOnce sync.Once
	started  atomic.Bool

	// published mirrors state for readers outside Run.
	published atomic.Uint32

	// Owned by Run.
	kind        wire.Kind
	duration    time.Duration
	initialized bool
	state       State
	start       time.Duration
	elapsed     time.Duration
	ticker      clock.Ticker
	// last is the most recent non-terminal display emitted since start.
	last string
}

// New creates a worker. Run must be called to start processing.
func New(cfg Config) *Worker {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real()
	}
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = DefaultMailboxSize
	}
	logger := cfg.Logger
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}

	return &Worker{
		id:      cfg.ID,
		clock:   cfg.Clock,
		outbox:  cfg.Outbox,
		mailbox: make(chan []byte, cfg.MailboxSize),
		logger:  logger.WithField("timer_id", cfg.ID),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// ID returns the timer id.
func (w *Worker) ID() string {
	return w.id
}

// State returns the most recently published run state.
func (w *Worker) State() State {
	return State(w.published.Load())
}

// Post delivers an encoded command to the mailbox.
// It returns false if the worker has exited or been terminated.
func (w *Worker) Post(data []byte) bool {
	select {
	case <-w.done:
		return false
	case <-w.quit:
		return false
	default:
	}

	select {
	case w.mailbox <- data:
		return true
	case <-w.quit:
		return false
	case <-w.done:
		return false
	}
}

// TryPost delivers an encoded command without waiting for mailbox space.
// It returns false if the mailbox is full or the worker has exited.
func (w *Worker) TryPost(data []byte) bool {
	select {
	case <-w.done:
		return false
	case <-w.quit:
		return false
	default:
	}

	select {
	case w.mailbox <- data:
		return true
	default:
		return false
	}
}

// Terminate asks Run to return as soon as possible without emitting
// anything further. It does not wait; use Done for that.
func (w *Worker) Terminate() {
	w.quitOnce.Do(func() { close(w.quit) })
}

// Done is closed when Run has returned.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Abandon releases a worker whose Run was never started, for instance
// because the spawner refused it. Done is closed so that waiters return.
// It has no effect once Run has begun.
func (w *Worker) Abandon() {
	if w.started.CompareAndSwap(false, true) {
		w.Terminate()
		w.closeDone()
	}
}

func (w *Worker) closeDone() {
	w.doneOnce.Do(func() { close(w.done) })
}

// Run processes commands and cadence firings until the timer completes,
// is stopped, faults, or is terminated.
func (w *Worker) Run() {
	if !w.started.CompareAndSwap(false, true) {
		return
	}
	defer w.closeDone()
	defer w.stopTicker()
	defer func() {
		if r := recover(); r != nil {
			w.fault(fmt.Sprintf("panic: %v", r))
		}
	}()

	for {
		// Pending commands always win over a cadence firing.
		if !w.drain() {
			return
		}

		var tickC <-chan time.Time
		if w.ticker != nil {
			tickC = w.ticker.C()
		}

		select {
		case data := <-w.mailbox:
			if !w.handle(data) {
				return
			}
		case <-tickC:
			// A command may have been posted while we were waiting.
			if !w.drain() {
				return
			}
			if !w.tick() {
				return
			}
		case <-w.quit:
			return
		}
	}
}

// drain handles every command already in the mailbox.
func (w *Worker) drain() bool {
	for {
		select {
		case <-w.quit:
			return false
		default:
		}

		select {
		case data := <-w.mailbox:
			if !w.handle(data) {
				return false
			}
		default:
			return true
		}
	}
}

// handle applies one command. It returns false when the worker must exit.
func (w *Worker) handle(data []byte) bool {
	cmd, err := wire.DecodeCommand(data)
	if err != nil {
		w.fault(err.Error())
		return false
	}
	if cmd.ID != w.id {
		w.fault(fmt.Sprintf("%s: addressed to %q", wire.ErrInvalidCommand, cmd.ID))
		return false
	}

	switch cmd.Type {
	case wire.CmdInit:
		if w.initialized || w.state != StateIdle {
			w.logger.Debug("ignoring repeated init")
			return true
		}
		w.kind = cmd.Kind
		w.duration = time.Duration(cmd.DurationMs) * time.Millisecond
		w.initialized = true

	case wire.CmdStart:
		if !w.initialized || w.state != StateIdle {
			w.logger.WithField("state", w.state).Debug("ignoring start")
			return true
		}
		w.start = w.clock.Now()
		w.elapsed = 0
		w.last = ""
		w.setState(StateRunning)
		w.ticker = w.clock.NewTicker(Cadence)
		return w.tick()

	case wire.CmdPause:
		if w.state != StateRunning {
			return true
		}
		w.elapsed = w.clock.Now() - w.start
		w.setState(StatePaused)

	case wire.CmdResume:
		if w.state != StatePaused {
			return true
		}
		w.start = w.clock.Now() - w.elapsed
		w.setState(StateRunning)

	case wire.CmdReset:
		if !w.initialized || w.state.IsTerminal() {
			return true
		}
		w.stopTicker()
		w.elapsed = 0
		w.last = ""
		w.setState(StateIdle)
		return w.emit(&wire.Response{TimeString: ZeroValue(w.kind, w.duration), ID: w.id})

	case wire.CmdStop:
		w.stopTicker()
		w.setState(StateStopped)
		return false
	}
	return true
}

// tick emits the current display value. Firings outside Running are
// ignored, as is a non-terminal value equal to the one last emitted.
func (w *Worker) tick() bool {
	if w.state != StateRunning {
		return true
	}

	w.elapsed = w.clock.Now() - w.start
	display, done := Evaluate(w.kind, w.duration, Snap(w.elapsed))
	if !done && display == w.last {
		return true
	}
	w.last = display
	if !w.emit(&wire.Response{TimeString: display, ID: w.id, Done: done}) {
		return false
	}
	if done {
		w.stopTicker()
		w.setState(StateCompleted)
		return false
	}
	return true
}

// fault reports an error response and marks the worker stopped.
func (w *Worker) fault(reason string) {
	w.logger.WithField("reason", reason).Warn("worker fault")
	w.setState(StateStopped)
	w.emit(&wire.Response{ID: w.id, Error: reason})
}

// emit posts a response, blocking until the manager accepts it or the
// worker is terminated.
func (w *Worker) emit(resp *wire.Response) bool {
	data, err := wire.EncodeResponse(resp)
	if err != nil {
		// Only a missing id fails here; there is nobody to report it to.
		w.logger.WithError(err).Error("failed to encode response")
		return false
	}

	select {
	case w.outbox <- data:
		return true
	case <-w.quit:
		return false
	}
}

func (w *Worker) setState(s State) {
	if w.state != s {
		w.logger.WithFields(logrus.Fields{"from": w.state, "to": s}).Debug("state change")
	}
	w.state = s
	w.published.Store(uint32(s))
}

func (w *Worker) stopTicker() {
	if w.ticker != nil {
		w.ticker.Stop()
		w.ticker = nil
	}
}

package timer

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ticktock-timers/ticktock-go/pkg/clock"
	"github.com/ticktock-timers/ticktock-go/pkg/log"
	"github.com/ticktock-timers/ticktock-go/pkg/worker"
	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Info describes a live timer.
type Info struct {
	ID       string
	Kind     Kind
	Duration time.Duration
	State    worker.State
	Created  time.Time
}

// entry is the registry record for one live worker.
type entry struct {
	opts    Options
	worker  *worker.Worker
	created time.Time
	seq     uint64
}

// Manager owns the registry of live timers and the dispatch goroutine
// that delivers worker responses to callbacks.
type Manager struct {
	mu sync.Mutex

	config Config
	logger logrus.FieldLogger
	trace  log.Logger

	// Live timers by id.
	timers  map[string]*entry
	nextSeq uint64
	closed  bool

	inbox        chan []byte
	quit         chan struct{}
	dispatchDone chan struct{}
}

// NewManager creates a manager and starts its dispatch goroutine.
// Zero-valued fields of cfg fall back to defaults, except Spawner.
func NewManager(cfg Config) *Manager {
	if cfg.Clock == nil {
		cfg.Clock = clock.Real()
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = UUIDGenerator{}
	}
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = DefaultInboxSize
	}
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = worker.DefaultMailboxSize
	}
	if cfg.EventLogger == nil {
		cfg.EventLogger = log.NoopLogger{}
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		cfg.Logger = l
	}

	m := &Manager{
		config:       cfg,
		logger:       cfg.Logger,
		trace:        cfg.EventLogger,
		timers:       make(map[string]*entry),
		inbox:        make(chan []byte, cfg.InboxSize),
		quit:         make(chan struct{}),
		dispatchDone: make(chan struct{}),
	}
	go m.dispatch()
	return m
}

// CreateTimer spawns a worker for opts and returns its handle.
// The timer is idle until Handle.Start is called.
//
// If the worker cannot be spawned, OnError is called with the
// *UnsupportedEnvironmentError before it is returned.
func (m *Manager) CreateTimer(opts Options) (*Handle, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrManagerClosed
	}
	spawner := m.config.Spawner
	if spawner == nil {
		m.mu.Unlock()
		err := &UnsupportedEnvironmentError{
			Environment: "none",
			Cause:       errors.New("no spawner configured"),
		}
		m.failCreate("", opts, err)
		return nil, err
	}

	id, err := m.newIDLocked()
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}

	w := worker.New(worker.Config{
		ID:          id,
		Clock:       m.config.Clock,
		Outbox:      m.inbox,
		MailboxSize: m.config.MailboxSize,
		Logger:      m.logger,
	})
	m.nextSeq++
	e := &entry{opts: opts, worker: w, created: time.Now(), seq: m.nextSeq}
	m.timers[id] = e
	m.mu.Unlock()

	if err := spawner.Spawn(w.Run); err != nil {
		m.mu.Lock()
		delete(m.timers, id)
		m.mu.Unlock()

		var envErr *UnsupportedEnvironmentError
		if !errors.As(err, &envErr) {
			err = &UnsupportedEnvironmentError{Environment: spawner.Name(), Cause: err}
		}
		m.failCreate(id, opts, err)
		// Close may already hold this entry and be waiting on Done.
		w.Abandon()
		return nil, err
	}

	m.logger.WithFields(logrus.Fields{
		"timer_id":    id,
		"kind":        opts.Kind,
		"duration":    opts.Duration,
		"environment": spawner.Name(),
	}).Debug("timer created")
	m.traceState(id, opts.Kind, "", StateActive, "created")

	m.post(id, e, &wire.Command{
		Type:       wire.CmdInit,
		ID:         id,
		Kind:       opts.Kind,
		DurationMs: opts.Duration.Milliseconds(),
	})
	return &Handle{id: id, m: m}, nil
}

// newIDLocked returns an id not held by a live timer. Caller holds m.mu.
func (m *Manager) newIDLocked() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := m.config.IDGenerator.NewID()
		if id == "" {
			continue
		}
		if _, exists := m.timers[id]; !exists {
			return id, nil
		}
		m.logger.WithField("timer_id", id).Debug("timer id collision, retrying")
	}
	return "", fmt.Errorf("%w after %d attempts", ErrIDExhausted, maxIDAttempts)
}

func (m *Manager) failCreate(id string, opts Options, err error) {
	m.logger.WithError(err).Warn("failed to create timer")
	m.traceError(id, opts.Kind, err.Error(), "spawn")
	if opts.OnError != nil {
		opts.OnError(err)
	}
}

// Send forwards a command to a live timer.
// Stop is routed to Manager.Stop; init is reserved for CreateTimer.
func (m *Manager) Send(id string, cmd wire.CommandType) error {
	switch {
	case cmd == wire.CmdStop:
		return m.Stop(id)
	case cmd == wire.CmdInit || !cmd.IsValid():
		return fmt.Errorf("%w: cannot send %s", wire.ErrInvalidCommand, cmd)
	}

	m.mu.Lock()
	e, ok := m.timers[id]
	m.mu.Unlock()
	if !ok {
		return ErrTimerNotFound
	}

	m.post(id, e, &wire.Command{Type: cmd, ID: id})
	return nil
}

// post encodes and delivers a command, waiting for mailbox space if needed.
func (m *Manager) post(id string, e *entry, cmd *wire.Command) bool {
	data, err := wire.EncodeCommand(cmd)
	if err != nil {
		m.logger.WithError(err).WithField("timer_id", id).Error("failed to encode command")
		return false
	}

	m.traceCommand(id, e.opts.Kind, cmd)
	return e.worker.Post(data)
}

// Stop removes the timer, sends it stop and terminates its worker.
// A second Stop for the same id returns ErrTimerNotFound.
func (m *Manager) Stop(id string) error {
	m.mu.Lock()
	e, ok := m.timers[id]
	if ok {
		delete(m.timers, id)
	}
	m.mu.Unlock()
	if !ok {
		return ErrTimerNotFound
	}

	m.teardown(id, e, StateStopped, "stop")
	return nil
}

// teardown sends stop without waiting and terminates the worker.
// The entry must already be out of the registry.
func (m *Manager) teardown(id string, e *entry, state, reason string) {
	if data, err := wire.EncodeCommand(&wire.Command{Type: wire.CmdStop, ID: id}); err == nil {
		if e.worker.TryPost(data) {
			m.traceCommand(id, e.opts.Kind, &wire.Command{Type: wire.CmdStop, ID: id})
		}
	}
	e.worker.Terminate()

	m.logger.WithFields(logrus.Fields{"timer_id": id, "reason": reason}).Debug("timer removed")
	m.traceState(id, e.opts.Kind, StateActive, state, reason)
}

// Lookup returns information about a live timer.
func (m *Manager) Lookup(id string) (Info, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.timers[id]
	if !ok {
		return Info{}, false
	}
	return e.info(id), true
}

// List returns every live timer ordered by creation time.
func (m *Manager) List() []Info {
	m.mu.Lock()
	entries := make([]*entry, 0, len(m.timers))
	ids := make(map[*entry]string, len(m.timers))
	for id, e := range m.timers {
		entries = append(entries, e)
		ids[e] = id
	}
	m.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	infos := make([]Info, len(entries))
	for i, e := range entries {
		infos[i] = e.info(ids[e])
	}
	return infos
}

// IDs returns the ids of every live timer, sorted.
func (m *Manager) IDs() []string {
	m.mu.Lock()
	ids := make([]string, 0, len(m.timers))
	for id := range m.timers {
		ids = append(ids, id)
	}
	m.mu.Unlock()

	sort.Strings(ids)
	return ids
}

// Count returns the number of live timers.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

// Close stops every timer and ends dispatch. No callback runs after Close
// returns. Close must not be called from inside a callback.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	timers := m.timers
	m.timers = make(map[string]*entry)
	m.mu.Unlock()

	for id, e := range timers {
		m.teardown(id, e, StateClosed, "manager closed")
	}
	close(m.quit)
	<-m.dispatchDone

	for _, e := range timers {
		<-e.worker.Done()
	}
	return nil
}

// dispatch delivers worker responses until Close.
func (m *Manager) dispatch() {
	defer close(m.dispatchDone)

	for {
		select {
		case data := <-m.inbox:
			m.handleResponse(data)
		case <-m.quit:
			return
		}
	}
}

func (m *Manager) handleResponse(data []byte) {
	resp, err := wire.DecodeResponse(data)
	if err != nil {
		m.logger.WithError(err).Warn("dropping undecodable worker response")
		m.traceError("", 0, err.Error(), "dispatch")
		return
	}

	m.mu.Lock()
	e, ok := m.timers[resp.ID]
	if ok && (resp.Done || resp.IsFault()) {
		delete(m.timers, resp.ID)
	}
	m.mu.Unlock()

	if !ok {
		m.logger.WithField("timer_id", resp.ID).Debug("dropping stale worker response")
		m.traceResponse(resp, 0, true)
		return
	}
	m.traceResponse(resp, e.opts.Kind, false)

	if resp.IsFault() {
		e.worker.Terminate()
		m.logger.WithFields(logrus.Fields{"timer_id": resp.ID, "reason": resp.Error}).Warn("timer worker fault")
		m.traceState(resp.ID, e.opts.Kind, StateActive, StateFaulted, resp.Error)
		if e.opts.OnError != nil {
			e.opts.OnError(&WorkerFaultError{ID: resp.ID, Reason: resp.Error})
		}
		return
	}

	e.opts.OnTick(resp.TimeString, resp.ID)

	if resp.Done {
		if e.opts.OnComplete != nil {
			e.opts.OnComplete(resp.ID)
		}
		m.teardown(resp.ID, e, StateCompleted, "completed")
	}
}

func (e *entry) info(id string) Info {
	return Info{
		ID:       id,
		Kind:     e.opts.Kind,
		Duration: e.opts.Duration,
		State:    e.worker.State(),
		Created:  e.created,
	}
}

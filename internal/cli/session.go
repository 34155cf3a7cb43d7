package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ticktock-timers/ticktock-go/pkg/timefmt"
	"github.com/ticktock-timers/ticktock-go/pkg/timer"
	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Session executes interactive commands against a timer manager.
// Timers are referred to by short labels (#1, #2, ...) assigned in
// creation order.
type Session struct {
	manager *timer.Manager

	outMu sync.Mutex
	out   io.Writer

	mu     sync.Mutex
	labels map[string]int
	ids    map[int]string
	next   int
}

// NewSession creates a session writing to out.
func NewSession(m *timer.Manager, out io.Writer) *Session {
	return &Session{
		manager: m,
		out:     out,
		labels:  make(map[string]int),
		ids:     make(map[int]string),
	}
}

// Exec runs one command line. It returns true when the session should end.
func (s *Session) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "new", "n":
		s.cmdNew(args)

	case "start", "pause", "resume", "continue", "reset", "stop":
		s.cmdControl(cmd, args)

	case "list", "ls":
		s.cmdList()

	case "quit", "exit", "q":
		return true

	default:
		s.printf("Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Session) printHelp() {
	s.printf(`
Timer Commands:
  new <countdown|stopwatch> <duration>  - Create a timer (idle until started)
  start <timer>                         - Start ticking
  pause <timer>                         - Freeze elapsed time
  resume <timer>                        - Continue after pause
  reset <timer>                         - Halt and show the zero value
  stop <timer>                          - Remove the timer
  list                                  - Show live timers

  <timer> is a label such as #1, or a timer id.

  help                                  - Show this help
  exit                                  - Leave interactive mode
`)
}

func (s *Session) cmdNew(args []string) {
	if len(args) != 2 {
		s.printf("Usage: new <countdown|stopwatch> <duration>\n")
		return
	}
	kind, err := wire.ParseKind(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	d, err := ParseDuration(args[1])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}

	h, err := s.manager.CreateTimer(timer.Options{
		Kind:       kind,
		Duration:   d,
		OnTick:     s.onTick,
		OnComplete: s.onComplete,
		OnError:    s.onError,
	})
	if err != nil {
		// OnError has already reported spawn failures.
		if !errors.Is(err, timer.ErrUnsupportedEnvironment) {
			s.printf("Error: %v\n", err)
		}
		return
	}

	s.mu.Lock()
	s.next++
	label := s.next
	s.labels[h.ID()] = label
	s.ids[label] = h.ID()
	s.mu.Unlock()

	s.printf("Created #%d %s %s (%s)\n", label, kind, timefmt.Format(d), h.ID())
}

func (s *Session) cmdControl(cmd string, args []string) {
	if len(args) != 1 {
		s.printf("Usage: %s <timer>\n", cmd)
		return
	}
	typ, err := wire.ParseCommandType(cmd)
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}
	id, err := s.resolve(args[0])
	if err != nil {
		s.printf("Error: %v\n", err)
		return
	}

	if err := s.manager.Send(id, typ); err != nil {
		s.printf("Error: %s: %v\n", args[0], err)
		return
	}
	if typ == wire.CmdStop {
		s.printf("[%s] stopped\n", s.forget(id))
	}
}

func (s *Session) cmdList() {
	infos := s.manager.List()
	if len(infos) == 0 {
		s.printf("No active timers.\n")
		return
	}

	s.printf("  %-4s %-10s %-9s %-9s %s\n", "#", "KIND", "DURATION", "STATE", "ID")
	for _, info := range infos {
		s.printf("  %-4s %-10s %-9s %-9s %s\n",
			s.label(info.ID), info.Kind, timefmt.Format(info.Duration), info.State, info.ID)
	}
}

// resolve maps a label ("#2" or "2") or an id to a timer id.
func (s *Session) resolve(ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n, err := strconv.Atoi(strings.TrimPrefix(ref, "#")); err == nil {
		if id, ok := s.ids[n]; ok {
			return id, nil
		}
		return "", fmt.Errorf("%w: #%d", timer.ErrTimerNotFound, n)
	}
	if _, ok := s.labels[ref]; ok {
		return ref, nil
	}
	return "", fmt.Errorf("%w: %s", timer.ErrTimerNotFound, ref)
}

// label returns "#n" for a known id, or the id itself.
func (s *Session) label(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n, ok := s.labels[id]; ok {
		return "#" + strconv.Itoa(n)
	}
	return id
}

// forget drops the label of a timer that is gone and returns it.
func (s *Session) forget(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.labels[id]
	if !ok {
		return id
	}
	delete(s.labels, id)
	delete(s.ids, n)
	return "#" + strconv.Itoa(n)
}

func (s *Session) onTick(display, id string) {
	s.printf("[%s] %s\n", s.label(id), display)
}

func (s *Session) onComplete(id string) {
	s.printf("[%s] complete\n", s.forget(id))
}

func (s *Session) onError(err error) {
	var fault *timer.WorkerFaultError
	if errors.As(err, &fault) {
		s.printf("[%s] error: %s\n", s.forget(fault.ID), fault.Reason)
		return
	}
	s.printf("Error: %v\n", err)
}

func (s *Session) printf(format string, args ...any) {
	s.outMu.Lock()
	defer s.outMu.Unlock()
	fmt.Fprintf(s.out, format, args...)
}

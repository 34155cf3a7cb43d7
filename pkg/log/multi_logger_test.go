package log

import (
	"testing"
	"time"
)

// recordingLogger records events for testing
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(event Event) {
	r.events = append(r.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	rec1 := &recordingLogger{}
	rec2 := &recordingLogger{}

	multi := NewMultiLogger(rec1, rec2)
	multi.Log(Event{Timestamp: time.Now(), TimerID: "timer-123", Category: CategoryState})

	for i, rec := range []*recordingLogger{rec1, rec2} {
		if len(rec.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(rec.events))
			continue
		}
		if rec.events[0].TimerID != "timer-123" {
			t.Errorf("logger %d: TimerID = %q, want %q", i, rec.events[0].TimerID, "timer-123")
		}
	}
}

func TestMultiLoggerSkipsNil(t *testing.T) {
	rec := &recordingLogger{}

	multi := NewMultiLogger(nil, rec, nil)
	multi.Log(Event{TimerID: "timer-1"})

	if len(rec.events) != 1 {
		t.Errorf("got %d events, want 1", len(rec.events))
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()
	multi.Log(Event{TimerID: "timer-1"})
}

type panickingLogger struct{}

func (panickingLogger) Log(Event) { panic("sink broken") }

func TestMultiLoggerIsolatesPanickingSink(t *testing.T) {
	before := &recordingLogger{}
	after := &recordingLogger{}

	multi := NewMultiLogger(before, panickingLogger{}, after)
	multi.Log(Event{TimerID: "timer-1"})
	multi.Log(Event{TimerID: "timer-2"})

	if len(before.events) != 2 || len(after.events) != 2 {
		t.Fatalf("healthy sinks got %d and %d events, want 2 each", len(before.events), len(after.events))
	}
	n, last := multi.Panics()
	if n != 2 {
		t.Errorf("Panics() = %d, want 2", n)
	}
	if last != "sink 1: sink broken" {
		t.Errorf("last panic = %q", last)
	}
}

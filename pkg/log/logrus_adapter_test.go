package log

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

func newJSONLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	return logger
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestLogrusAdapterLogsCommand(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewLogrusAdapter(newJSONLogger(&buf))

	adapter.Log(Event{
		Timestamp: time.Now(),
		TimerID:   "timer-1",
		Direction: DirectionOut,
		Category:  CategoryCommand,
		Kind:      wire.KindStopwatch,
		Command:   &CommandEvent{Type: wire.CmdInit, DurationMs: 2000},
	})

	entry := decodeEntry(t, &buf)
	if entry["timer_id"] != "timer-1" {
		t.Errorf("timer_id: got %v, want timer-1", entry["timer_id"])
	}
	if entry["direction"] != "OUT" {
		t.Errorf("direction: got %v, want OUT", entry["direction"])
	}
	if entry["command"] != "init" {
		t.Errorf("command: got %v, want init", entry["command"])
	}
	if entry["kind"] != "stopwatch" {
		t.Errorf("kind: got %v, want stopwatch", entry["kind"])
	}
	if entry["duration_ms"] != float64(2000) {
		t.Errorf("duration_ms: got %v, want 2000", entry["duration_ms"])
	}
	if entry["level"] != "debug" {
		t.Errorf("level: got %v, want debug", entry["level"])
	}
}

func TestLogrusAdapterLogsResponse(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewLogrusAdapter(newJSONLogger(&buf))

	adapter.Log(Event{
		TimerID:   "timer-2",
		Direction: DirectionIn,
		Category:  CategoryResponse,
		Response:  &ResponseEvent{TimeString: "00:00:00", Done: true},
	})

	entry := decodeEntry(t, &buf)
	if entry["display"] != "00:00:00" {
		t.Errorf("display: got %v, want 00:00:00", entry["display"])
	}
	if _, ok := entry["fields.time"]; ok {
		t.Error("display must not clash with the reserved time key")
	}
	if entry["done"] != true {
		t.Errorf("done: got %v, want true", entry["done"])
	}
	if _, ok := entry["kind"]; ok {
		t.Error("kind should be omitted when unknown")
	}
}

func TestLogrusAdapterLogsError(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewLogrusAdapter(newJSONLogger(&buf))

	adapter.Log(Event{
		TimerID:  "timer-3",
		Category: CategoryError,
		Error:    &ErrorEventData{Message: "worker panic", Context: "tick"},
	})

	entry := decodeEntry(t, &buf)
	if entry["error_msg"] != "worker panic" {
		t.Errorf("error_msg: got %v", entry["error_msg"])
	}
	if entry["error_context"] != "tick" {
		t.Errorf("error_context: got %v", entry["error_context"])
	}
}

func TestLogrusAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newJSONLogger(&buf)
	logger.SetLevel(logrus.InfoLevel)

	NewLogrusAdapter(logger).Log(Event{TimerID: "timer-4"})

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

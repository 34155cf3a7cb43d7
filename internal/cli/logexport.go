package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ticktock-timers/ticktock-go/pkg/log"
)

// RunExport exports the trace file to jsonl or csv, writing to output or
// to w when output is empty.
func RunExport(path, format, output string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

// jsonEvent is the flattened JSON form of a trace event.
type jsonEvent struct {
	Timestamp string `json:"timestamp"`
	TimerID   string `json:"timer_id"`
	Direction string `json:"direction"`
	Category  string `json:"category"`
	Kind      string `json:"kind,omitempty"`
	Type      string `json:"type"`

	DurationMs int64  `json:"duration_ms,omitempty"`
	Time       string `json:"time,omitempty"`
	Done       bool   `json:"done,omitempty"`
	Stale      bool   `json:"stale,omitempty"`
	OldState   string `json:"old_state,omitempty"`
	NewState   string `json:"new_state,omitempty"`
	Reason     string `json:"reason,omitempty"`
	Error      string `json:"error,omitempty"`
	Context    string `json:"context,omitempty"`
}

func toJSONEvent(event log.Event) jsonEvent {
	je := jsonEvent{
		Timestamp: event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		TimerID:   event.TimerID,
		Direction: event.Direction.String(),
		Category:  event.Category.String(),
		Type:      eventLabel(event),
	}
	if event.Kind.IsValid() {
		je.Kind = event.Kind.String()
	}
	switch {
	case event.Command != nil:
		je.DurationMs = event.Command.DurationMs
	case event.Response != nil:
		je.Time = event.Response.TimeString
		je.Done = event.Response.Done
		je.Stale = event.Response.Stale
	case event.StateChange != nil:
		je.OldState = event.StateChange.OldState
		je.NewState = event.StateChange.NewState
		je.Reason = event.StateChange.Reason
	case event.Error != nil:
		je.Error = event.Error.Message
		je.Context = event.Error.Context
	}
	return je
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(toJSONEvent(event)); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "timer_id", "direction", "category", "kind", "type", "time"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		je := toJSONEvent(event)
		row := []string{je.Timestamp, je.TimerID, je.Direction, je.Category, je.Kind, je.Type, je.Time}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
}

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ticktock-timers/ticktock-go/pkg/log"
	"github.com/ticktock-timers/ticktock-go/pkg/timer"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	TimerID   string
	Direction *log.Direction
	Category  *log.Category
}

func (f ViewFilter) logFilter() log.Filter {
	return log.Filter{
		TimerID:   f.TimerID,
		Direction: f.Direction,
		Category:  f.Category,
	}
}

// RunView writes every matching event in path to w.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.logFilter())
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [timer] DIRECTION CATEGORY label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	fmt.Fprintf(w, "%s [%s] %-3s %s %s\n",
		ts, shortenTimerID(event.TimerID), event.Direction, event.Category, eventLabel(event))

	switch {
	case event.Command != nil:
		if event.Kind.IsValid() {
			fmt.Fprintf(w, "  Kind: %s\n", event.Kind)
		}
		if event.Command.DurationMs > 0 {
			fmt.Fprintf(w, "  Duration: %s\n", time.Duration(event.Command.DurationMs)*time.Millisecond)
		}
	case event.Response != nil:
		fmt.Fprintf(w, "  Time: %s\n", event.Response.TimeString)
	case event.StateChange != nil:
		if event.StateChange.OldState != "" {
			fmt.Fprintf(w, "  %s -> %s\n", event.StateChange.OldState, event.StateChange.NewState)
		} else {
			fmt.Fprintf(w, "  -> %s\n", event.StateChange.NewState)
		}
		if event.StateChange.Reason != "" {
			fmt.Fprintf(w, "  Reason: %s\n", event.StateChange.Reason)
		}
	case event.Error != nil:
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w) // Blank line between events
}

// eventLabel names the payload of an event.
func eventLabel(event log.Event) string {
	switch {
	case event.Command != nil:
		return event.Command.Type.String()
	case event.Response != nil:
		switch {
		case event.Response.Stale:
			return "stale"
		case event.Response.Done:
			return "done"
		default:
			return "tick"
		}
	case event.StateChange != nil:
		return "state"
	case event.Error != nil:
		return "error"
	default:
		return "unknown"
	}
}

// shortenTimerID drops the id prefix and keeps 8 characters.
func shortenTimerID(id string) string {
	if id == "" {
		return "-"
	}
	id = strings.TrimPrefix(id, timer.IDPrefix)
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// parseDirection parses a direction string (case-insensitive).
func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// parseCategory parses a category string (case-insensitive).
func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "command":
		return log.CategoryCommand, nil
	case "response":
		return log.CategoryResponse, nil
	case "state":
		return log.CategoryState, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be command, response, state, or error)", s)
	}
}

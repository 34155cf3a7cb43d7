package cli

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ticktock-timers/ticktock-go/pkg/log"
	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Stats holds aggregate statistics about a trace file.
type Stats struct {
	TotalEvents       int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Timers            map[string]*TimerStats
	Stale             int
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// TimerStats holds statistics for a single timer.
type TimerStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Kind      wire.Kind
	Events    int
	Ticks     int
	LastState string
}

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Timers:            make(map[string]*TimerStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}

	printStats(w, stats)
	return nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	// Track time range
	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Error != nil {
		s.Errors++
	}
	if event.Response != nil && event.Response.Stale {
		s.Stale++
		return
	}
	if event.TimerID == "" {
		return
	}

	ts, ok := s.Timers[event.TimerID]
	if !ok {
		ts = &TimerStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Timers[event.TimerID] = ts
	}
	ts.Events++
	if event.Timestamp.After(ts.LastSeen) {
		ts.LastSeen = event.Timestamp
	}
	if event.Kind.IsValid() {
		ts.Kind = event.Kind
	}
	if event.Response != nil {
		ts.Ticks++
	}
	if event.StateChange != nil {
		ts.LastState = event.StateChange.NewState
	}
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== ticktock Event Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.UTC().Format(time.RFC3339),
			stats.TimeRange.End.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryCommand, log.CategoryResponse, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Timers: %d\n", len(stats.Timers))
	if len(stats.Timers) > 0 {
		type timerInfo struct {
			id    string
			stats *TimerStats
		}
		timers := make([]timerInfo, 0, len(stats.Timers))
		for id, ts := range stats.Timers {
			timers = append(timers, timerInfo{id, ts})
		}
		sort.Slice(timers, func(i, j int) bool {
			if timers[i].stats.FirstSeen.Equal(timers[j].stats.FirstSeen) {
				return timers[i].id < timers[j].id
			}
			return timers[i].stats.FirstSeen.Before(timers[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, t := range timers {
			duration := t.stats.LastSeen.Sub(t.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %s, %d events, %d ticks, span %s\n",
				shortenTimerID(t.id), t.stats.Kind, t.stats.Events, t.stats.Ticks, duration)
			if t.stats.LastState != "" {
				fmt.Fprintf(w, "             Last state: %s\n", t.stats.LastState)
			}
		}
	}

	if stats.Stale > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Stale responses: %d\n", stats.Stale)
	}
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}

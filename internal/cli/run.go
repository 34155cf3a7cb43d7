package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ticktock-timers/ticktock-go/pkg/timer"
	"github.com/ticktock-timers/ticktock-go/pkg/wire"
)

// Timer command names.
const (
	KindCountdownName = "countdown"
	KindStopwatchName = "stopwatch"
)

// NewTimerCommand creates the countdown or stopwatch command.
func NewTimerCommand(rootOpts *RootOptions, kindName string) *cobra.Command {
	kind, err := wire.ParseKind(kindName)
	if err != nil {
		panic(err)
	}

	short := "Count down from <duration> to zero"
	if kind == timer.Stopwatch {
		short = "Count up from zero, stopping at <duration>"
	}

	cmd := &cobra.Command{
		Use:   kindName + " <duration>",
		Short: short,
		Long: short + `.

The duration is a Go duration ("90s", "1h30m"), a whole number of seconds,
or a clock value ("MM:SS" or "HH:MM:SS"). One line is printed per tick until
the timer completes or the command is interrupted.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := ParseDuration(args[0])
			if err != nil {
				return err
			}
			rt, err := rootOpts.newRuntime(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			return runTimer(cmd.Context(), rt.manager, kind, d, cmd.OutOrStdout())
		},
	}

	return cmd
}

// runTimer runs one timer to completion, printing each tick to w.
// Cancelling ctx stops the timer and returns ctx's error.
func runTimer(ctx context.Context, m *timer.Manager, kind timer.Kind, d time.Duration, w io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	done := make(chan struct{})
	failed := make(chan error, 1)

	h, err := m.CreateTimer(timer.Options{
		Kind:     kind,
		Duration: d,
		OnTick: func(display, _ string) {
			fmt.Fprintln(w, display)
		},
		OnComplete: func(string) {
			close(done)
		},
		OnError: func(err error) {
			select {
			case failed <- err:
			default:
			}
		},
	})
	if err != nil {
		return err
	}

	if err := h.Start(); err != nil {
		return err
	}

	select {
	case <-done:
		fmt.Fprintf(w, "%s complete\n", kind)
		return nil
	case err := <-failed:
		return err
	case <-ctx.Done():
		h.Stop()
		if errors.Is(ctx.Err(), context.Canceled) {
			fmt.Fprintf(w, "%s stopped\n", kind)
			return nil
		}
		return ctx.Err()
	}
}

// maxSeconds is the largest whole number of seconds a time.Duration holds.
const maxSeconds = int64(math.MaxInt64 / int64(time.Second))

// ParseDuration accepts a Go duration, a whole number of seconds, or a
// clock value in MM:SS or HH:MM:SS form.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}

	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("invalid duration %q: must not be negative", s)
		}
		if secs > maxSeconds {
			return 0, fmt.Errorf("invalid duration %q: out of range", s)
		}
		return time.Duration(secs) * time.Second, nil
	}

	if strings.Contains(s, ":") {
		return parseClock(s)
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid duration %q: must not be negative", s)
	}
	return d, nil
}

func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid duration %q: want MM:SS or HH:MM:SS", s)
	}

	var total int64
	units := []int64{1, 60, 3600}
	for i := range parts {
		part := parts[len(parts)-1-i]
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q: bad field %q", s, part)
		}
		if i < len(parts)-1 && n >= 60 {
			return 0, fmt.Errorf("invalid duration %q: field %q out of range", s, part)
		}
		if int64(n) > (maxSeconds-total)/units[i] {
			return 0, fmt.Errorf("invalid duration %q: out of range", s)
		}
		total += int64(n) * units[i]
	}
	return time.Duration(total) * time.Second, nil
}

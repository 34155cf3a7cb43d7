package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticktock-timers/ticktock-go/pkg/log"
	"github.com/ticktock-timers/ticktock-go/pkg/spawn"
	"github.com/ticktock-timers/ticktock-go/pkg/timer"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRunZeroDuration(t *testing.T) {
	for _, kind := range []string{KindCountdownName, KindStopwatchName} {
		t.Run(kind, func(t *testing.T) {
			out, _, err := execute(t, kind, "0s")
			require.NoError(t, err)
			newGoldie(t).Assert(t, "run_"+kind+"_zero", []byte(out))
		})
	}
}

func TestRunRecordsEventLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.tlog")

	_, _, err := execute(t, "countdown", "0", "--event-log", path)
	require.NoError(t, err)

	events, err := log.ReadAll(path, log.Filter{})
	require.NoError(t, err)
	require.NotEmpty(t, events)

	var commands, done int
	for _, e := range events {
		if e.Command != nil {
			commands++
		}
		if e.Response != nil && e.Response.Done {
			done++
		}
	}
	assert.GreaterOrEqual(t, commands, 2, "init and start")
	assert.Equal(t, 1, done)
}

func TestRunWithPoolEnvironment(t *testing.T) {
	out, _, err := execute(t, "stopwatch", "0s", "--environment", "pool", "--pool-size", "2")
	require.NoError(t, err)
	assert.Equal(t, "00:00:00\nstopwatch complete\n", out)
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad duration", []string{"countdown", "soon"}, "invalid duration"},
		{"negative", []string{"countdown", "--", "-5"}, "must not be negative"},
		{"missing arg", []string{"stopwatch"}, "accepts 1 arg"},
		{"bad environment", []string{"countdown", "1s", "--environment", "threads"}, "unsupported"},
		{"pool without size", []string{"countdown", "1s", "--environment", "pool"}, "pool_size"},
		{"bad log level", []string{"countdown", "1s", "--log-level", "loud"}, "log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRunUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	trace := filepath.Join(dir, "cfg.tlog")
	cfgPath := filepath.Join(dir, "ticktock.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("environment: goroutine\nevent_log: "+trace+"\n"), 0o644))

	out, _, err := execute(t, "countdown", "0s", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "00:00:00\ncountdown complete\n", out)

	_, err = os.Stat(trace)
	assert.NoError(t, err)
}

func TestRunTimerCancel(t *testing.T) {
	m := timer.NewManager(timer.Config{Spawner: spawn.NewGoroutine()})
	defer m.Close()

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	errc := make(chan error, 1)
	go func() { errc <- runTimer(ctx, m, timer.Countdown, time.Hour, &out) }()

	require.Eventually(t, func() bool { return strings.Contains(out.String(), "01:00:00") },
		2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-errc:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runTimer did not return after cancel")
	}
	assert.True(t, strings.HasSuffix(out.String(), "countdown stopped\n"))
	assert.Zero(t, m.Count())
}

func TestRunTimerDeadline(t *testing.T) {
	m := timer.NewManager(timer.Config{Spawner: spawn.NewGoroutine()})
	defer m.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	var out syncBuffer
	err := runTimer(ctx, m, timer.Stopwatch, time.Hour, &out)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"0", 0, false},
		{"90", 90 * time.Second, false},
		{" 5 ", 5 * time.Second, false},
		{"1m30s", 90 * time.Second, false},
		{"1500ms", 1500 * time.Millisecond, false},
		{"01:30", 90 * time.Second, false},
		{"1:02:03", time.Hour + 2*time.Minute + 3*time.Second, false},
		{"100:00", 100 * time.Minute, false},
		{"", 0, true},
		{"-1", 0, true},
		{"-1s", 0, true},
		{"1:60", 0, true},
		{"1:2:3:4", 0, true},
		{"a:b", 0, true},
		{"soon", 0, true},
		{"9223372036", 9223372036 * time.Second, false},
		{"9223372037", 0, true},
		{"2562047:00:00", 2562047 * time.Hour, false},
		{"2562048:00:00", 0, true},
		{"2562047:47:17", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

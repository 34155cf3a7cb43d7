package timer

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestOptionsValidate(t *testing.T) {
	onTick := func(string, string) {}

	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"countdown", Options{Kind: Countdown, Duration: time.Second, OnTick: onTick}, false},
		{"stopwatch zero duration", Options{Kind: Stopwatch, OnTick: onTick}, false},
		{"no kind", Options{Duration: time.Second, OnTick: onTick}, true},
		{"negative", Options{Kind: Countdown, Duration: -1, OnTick: onTick}, true},
		{"no OnTick", Options{Kind: Countdown, Duration: time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidOptions) {
					t.Errorf("Validate() = %v, want ErrInvalidOptions", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestUUIDGenerator(t *testing.T) {
	gen := UUIDGenerator{}
	a, b := gen.NewID(), gen.NewID()

	if !strings.HasPrefix(a, IDPrefix) {
		t.Errorf("id %q lacks prefix %q", a, IDPrefix)
	}
	if len(a) != len(IDPrefix)+36 {
		t.Errorf("id %q has unexpected length %d", a, len(a))
	}
	if a == b {
		t.Errorf("two ids are equal: %q", a)
	}
}

func TestWorkerFaultErrorMatches(t *testing.T) {
	var err error = &WorkerFaultError{ID: "timer-1", Reason: "panic: boom"}

	if !errors.Is(err, ErrWorkerFault) {
		t.Error("WorkerFaultError should match ErrWorkerFault")
	}
	if !strings.Contains(err.Error(), "timer-1") || !strings.Contains(err.Error(), "panic: boom") {
		t.Errorf("Error() = %q", err.Error())
	}
}

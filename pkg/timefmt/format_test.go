package timefmt

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "00:00:00"},
		{"sub-second floors", 999 * time.Millisecond, "00:00:00"},
		{"one second", time.Second, "00:00:01"},
		{"just under three", 2999 * time.Millisecond, "00:00:02"},
		{"minutes", 65 * time.Second, "00:01:05"},
		{"hours", 3923 * time.Second, "01:05:23"},
		{"past a day", 25 * time.Hour, "25:00:00"},
		{"three digit hours", 100*time.Hour + 59*time.Minute + 59*time.Second, "100:59:59"},
		{"negative clamps", -5 * time.Second, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatMillis(t *testing.T) {
	if got := FormatMillis(3923000); got != "01:05:23" {
		t.Errorf("FormatMillis(3923000) = %q, want 01:05:23", got)
	}
	if got := FormatMillis(0); got != Zero {
		t.Errorf("FormatMillis(0) = %q, want %q", got, Zero)
	}
}

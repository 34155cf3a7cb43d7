// Package timefmt renders timer values as fixed-width HH:MM:SS strings.
package timefmt

import (
	"fmt"
	"time"
)

// Zero is the formatted value of a zero duration.
const Zero = "00:00:00"

// Format floors d to whole seconds and renders it as HH:MM:SS.
// The hours field is not wrapped at 24, so 100 hours renders as "100:00:00".
// Negative durations are clamped to zero.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatMillis formats a millisecond count.
func FormatMillis(ms int64) string {
	return Format(time.Duration(ms) * time.Millisecond)
}

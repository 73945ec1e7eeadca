// Package duration renders elapsed time compactly for status messages,
// e.g. "3d, 4h" for the age of the page cache.
package duration

import (
	"fmt"
	"time"
)

const (
	minute = 60
	hour   = 60 * minute
	day    = 24 * hour
)

// Format renders secs using its two largest units among days, hours, minutes
// and seconds. Only the largest non-zero unit and the one right below it are
// considered, and the lower one is omitted when zero:
//
//	Format(61)    // "1min, 1s"
//	Format(3601)  // "1h"
//	Format(90000) // "1d, 1h"
func Format(secs uint64) string {
	days := secs / day
	hours := secs % day / hour
	minutes := secs % hour / minute
	seconds := secs % minute

	switch {
	case days > 0:
		if hours == 0 {
			return fmt.Sprintf("%dd", days)
		}
		return fmt.Sprintf("%dd, %dh", days, hours)
	case hours > 0:
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh, %dmin", hours, minutes)
	case minutes > 0:
		if seconds == 0 {
			return fmt.Sprintf("%dmin", minutes)
		}
		return fmt.Sprintf("%dmin, %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatDuration is Format for a time.Duration truncated to whole seconds.
// Negative durations render as "0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return Format(uint64(d / time.Second))
}

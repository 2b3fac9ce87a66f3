// Package format provides small pure formatting helpers shared by the CLI and
// the TUI: human-readable durations, bit widths and sweep ETA tracking.
package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// FormatBitWidth renders an operand width with a binary unit suffix,
// e.g. 4096 -> "4.0 Kib", 16777216 -> "16.0 Mib".
func FormatBitWidth(bits int) string {
	switch {
	case bits >= 1<<20:
		return fmt.Sprintf("%.1f Mib", float64(bits)/float64(1<<20))
	case bits >= 1<<10:
		return fmt.Sprintf("%.1f Kib", float64(bits)/float64(1<<10))
	default:
		return fmt.Sprintf("%d b", bits)
	}
}

// This file implements smoothed ETA estimation for the benchmark sweep.

package format

import (
	"fmt"
	"time"
)

// rateSmoothing is the exponential moving average factor applied to the
// observed progress rate. Lower values react slower but jitter less.
const rateSmoothing = 0.3

// ETATracker estimates the remaining time of a long-running sweep from its
// progress fraction. The rate is smoothed with an exponential moving average
// so a single slow point does not whipsaw the estimate.
type ETATracker struct {
	startTime time.Time
	lastTime  time.Time
	lastFrac  float64
	rate      float64 // fraction per second, smoothed
}

// NewETATracker creates a tracker anchored at the current time.
func NewETATracker() *ETATracker {
	now := time.Now()
	return &ETATracker{startTime: now, lastTime: now}
}

// Update records the current progress fraction (0.0 to 1.0) and refreshes the
// smoothed rate estimate.
func (t *ETATracker) Update(frac float64) {
	now := time.Now()
	elapsed := now.Sub(t.lastTime).Seconds()
	if elapsed > 0 && frac > t.lastFrac {
		instant := (frac - t.lastFrac) / elapsed
		if t.rate == 0 {
			t.rate = instant
		} else {
			t.rate = rateSmoothing*instant + (1-rateSmoothing)*t.rate
		}
	}
	t.lastTime = now
	t.lastFrac = frac
}

// ETA returns the estimated remaining duration, or 0 while there is not yet
// enough data for an estimate.
func (t *ETATracker) ETA() time.Duration {
	if t.rate <= 0 || t.lastFrac >= 1 {
		return 0
	}
	remaining := (1 - t.lastFrac) / t.rate
	return time.Duration(remaining * float64(time.Second))
}

// Elapsed returns the time since the tracker was created.
func (t *ETATracker) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// FormatETA renders an ETA for display. A zero estimate renders as
// "calculating..." since it means no data yet.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Minute {
		return fmt.Sprintf("%ds", int(eta.Seconds()+0.5))
	}
	return eta.Round(time.Second).String()
}

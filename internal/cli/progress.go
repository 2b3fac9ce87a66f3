package cli

import (
	"fmt"
	"io"

	"github.com/briandowns/spinner"

	"github.com/agbru/bitadd/internal/bench"
	"github.com/agbru/bitadd/internal/format"
)

// BenchProgress renders a spinner, a progress bar and a smoothed ETA while
// the benchmark sweep runs. It is fed one Measurement per completed sweep
// point via Point.
type BenchProgress struct {
	sp    Spinner
	eta   *format.ETATracker
	total int
	done  int
}

// NewBenchProgress creates a progress display for a sweep of total points
// writing to out.
func NewBenchProgress(total int, out io.Writer) *BenchProgress {
	return &BenchProgress{
		sp:    newSpinner(spinner.WithWriter(out)),
		eta:   format.NewETATracker(),
		total: total,
	}
}

// Start begins the spinner animation.
func (p *BenchProgress) Start() {
	p.sp.UpdateSuffix(" preparing sweep...")
	p.sp.Start()
}

// Point records a completed sweep point and refreshes the display.
func (p *BenchProgress) Point(m bench.Measurement) {
	p.done++
	frac := 0.0
	if p.total > 0 {
		frac = float64(p.done) / float64(p.total)
	}
	p.eta.Update(frac)

	label := fmt.Sprintf("barrier %d", m.Barrier)
	if m.Barrier == bench.SequentialBarrier {
		label = "baseline"
	}
	p.sp.UpdateSuffix(fmt.Sprintf(" [%s] %3.0f%%  %s @ %s  ETA %s",
		progressBar(frac, ProgressBarWidth), frac*100,
		label, format.FormatBitWidth(m.Width), format.FormatETA(p.eta.ETA())))
}

// Stop halts the spinner animation.
func (p *BenchProgress) Stop() {
	p.sp.Stop()
}

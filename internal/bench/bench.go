// Package bench runs barrier sweep benchmarks comparing the fork-join adder
// against the ripple-carry baseline across operand widths.
package bench

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/agbru/bitadd/internal/adder"
	"github.com/agbru/bitadd/internal/bitvec"
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/logging"
	"github.com/agbru/bitadd/internal/metrics"
	"github.com/agbru/bitadd/internal/sysmon"
)

// Options configures a benchmark sweep.
type Options struct {
	// Widths lists the operand widths in bits, one sweep per width.
	Widths []int
	// Barriers lists the split barriers to test at each width. Use
	// GenerateBarriers for a hardware-adapted default.
	Barriers []int
	// Reps is the number of repetitions per point; the reported duration is
	// the minimum across repetitions.
	Reps int
	// Seed seeds the operand generator so sweeps are reproducible.
	Seed int64
	// Recorder receives per-addition observations. May be nil.
	Recorder *metrics.Recorder
	// OnPoint, when non-nil, is called after each completed measurement.
	// Used by the progress display.
	OnPoint func(m Measurement)
}

// Measurement is the outcome of one (width, barrier) sweep point.
type Measurement struct {
	// Width is the operand width in bits.
	Width int
	// Barrier is the split barrier tested. A negative value marks the
	// sequential baseline row.
	Barrier int
	// Duration is the minimum duration across repetitions.
	Duration time.Duration
	// Speedup is the sequential baseline duration divided by Duration.
	// It is 1.0 for the baseline row itself.
	Speedup float64
	// Load is the peak system load observed while measuring this point.
	Load sysmon.Stats
	// Err is non-nil if any repetition failed or produced a sum different
	// from the baseline.
	Err error
}

// SequentialBarrier marks baseline rows in sweep results.
const SequentialBarrier = -1

// Run executes the sweep described by opts and returns one Measurement per
// (width, barrier) pair, plus one baseline row per width. Results are ordered
// by width, baseline first.
//
// Run stops early and returns the measurements taken so far when ctx is
// canceled.
func Run(ctx context.Context, opts Options, log logging.Logger) ([]Measurement, error) {
	if len(opts.Widths) == 0 {
		return nil, apperrors.NewConfigError("benchmark requires at least one operand width")
	}
	if opts.Reps < 1 {
		return nil, apperrors.NewConfigError("benchmark repetitions must be >= 1, got %d", opts.Reps)
	}
	barriers := opts.Barriers
	if len(barriers) == 0 {
		barriers = GenerateBarriers()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	measurements := make([]Measurement, 0, len(opts.Widths)*(len(barriers)+1))

	memory := metrics.NewMemoryCollector()
	memBefore := memory.Snapshot()

	for _, width := range opts.Widths {
		if err := ctx.Err(); err != nil {
			return measurements, err
		}
		log.Debug("sweep width", logging.Int("bits", width), logging.Int("barriers", len(barriers)))

		b1 := bitvec.Random(rng, width)
		b2 := bitvec.Random(rng, width)

		baseline, want := measureSequential(b1, b2, opts)
		measurements = append(measurements, baseline)
		if opts.OnPoint != nil {
			opts.OnPoint(baseline)
		}
		if baseline.Err != nil {
			continue
		}

		for _, barrier := range barriers {
			if err := ctx.Err(); err != nil {
				return measurements, err
			}
			m := measureParallel(ctx, b1, b2, barrier, baseline, want, opts)
			measurements = append(measurements, m)
			if opts.OnPoint != nil {
				opts.OnPoint(m)
			}
		}
	}

	memAfter := memory.Snapshot()
	log.Debug("sweep finished",
		logging.Int("points", len(measurements)),
		logging.Uint64("heap_alloc_bytes", memAfter.HeapAlloc),
		logging.Int("gc_cycles", int(metrics.DeltaGC(memBefore, memAfter))))

	return measurements, nil
}

func measureSequential(b1, b2 bitvec.Vector, opts Options) (Measurement, adder.Result) {
	m := Measurement{Width: len(b1), Barrier: SequentialBarrier, Speedup: 1.0}
	var peak sysmon.Peak
	var want adder.Result

	best := time.Duration(0)
	for rep := 0; rep < opts.Reps; rep++ {
		start := time.Now()
		res, err := adder.AddSequential(b1, b2)
		elapsed := time.Since(start)
		peak.Observe(sysmon.Sample())
		if opts.Recorder != nil {
			opts.Recorder.ObserveAddition("sequential", len(b1), elapsed, err)
		}
		if err != nil {
			m.Err = err
			return m, want
		}
		want = res
		if best == 0 || elapsed < best {
			best = elapsed
		}
	}
	m.Duration = best
	m.Load = peak.Stats()
	return m, want
}

func measureParallel(ctx context.Context, b1, b2 bitvec.Vector, barrier int, baseline Measurement, want adder.Result, opts Options) Measurement {
	m := Measurement{Width: len(b1), Barrier: barrier}
	var peak sysmon.Peak

	best := time.Duration(0)
	for rep := 0; rep < opts.Reps; rep++ {
		start := time.Now()
		res, err := adder.AddParallel(ctx, b1, b2, barrier)
		elapsed := time.Since(start)
		peak.Observe(sysmon.Sample())
		if opts.Recorder != nil {
			opts.Recorder.ObserveAddition("parallel", len(b1), elapsed, err)
		}
		if err != nil {
			m.Err = err
			return m
		}
		if res.Carry != want.Carry || !res.Sum.Equal(want.Sum) {
			m.Err = fmt.Errorf("barrier %d produced a sum different from the sequential baseline at %d bits", barrier, len(b1))
			return m
		}
		if best == 0 || elapsed < best {
			best = elapsed
		}
	}
	m.Duration = best
	m.Load = peak.Stats()
	if best > 0 {
		m.Speedup = float64(baseline.Duration) / float64(best)
	}
	return m
}

// BestBarrier returns the barrier of the fastest successful parallel
// measurement, or SequentialBarrier when no parallel point beat the baseline.
func BestBarrier(measurements []Measurement) int {
	best := SequentialBarrier
	var bestSpeedup float64 = 1.0
	for _, m := range measurements {
		if m.Err != nil || m.Barrier == SequentialBarrier {
			continue
		}
		if m.Speedup > bestSpeedup {
			bestSpeedup = m.Speedup
			best = m.Barrier
		}
	}
	return best
}

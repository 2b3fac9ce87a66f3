package orchestration

import (
	"context"

	"github.com/agbru/bitadd/internal/adder"
	"github.com/agbru/bitadd/internal/bitvec"
	"github.com/agbru/bitadd/internal/config"
)

// Strategy display names. Kept stable so output, metrics and logs agree.
const (
	SequentialName = "Ripple Carry"
	ParallelName   = "Fork-Join"
)

type sequentialAdder struct{}

func (sequentialAdder) Name() string { return SequentialName }

func (sequentialAdder) Add(_ context.Context, b1, b2 bitvec.Vector) (adder.Result, error) {
	return adder.AddSequential(b1, b2)
}

type parallelAdder struct {
	barrier int
}

func (parallelAdder) Name() string { return ParallelName }

func (p parallelAdder) Add(ctx context.Context, b1, b2 bitvec.Vector) (adder.Result, error) {
	return adder.AddParallel(ctx, b1, b2, p.barrier)
}

// NewSequentialAdder returns the single-goroutine ripple-carry strategy.
func NewSequentialAdder() Adder { return sequentialAdder{} }

// NewParallelAdder returns the fork-join strategy splitting down to
// 2^barrier-bit leaves.
func NewParallelAdder(barrier int) Adder { return parallelAdder{barrier: barrier} }

// AddersToRun determines which adders should be executed based on the
// configuration. For "both" the sequential adder comes first so its result
// anchors the consistency check.
//
// Parameters:
//   - cfg: The application configuration containing the algorithm selection.
//
// Returns:
//   - []Adder: A slice of adders to execute. Nil for an unknown selection.
func AddersToRun(cfg config.AppConfig) []Adder {
	switch cfg.Algo {
	case "seq":
		return []Adder{NewSequentialAdder()}
	case "par":
		return []Adder{NewParallelAdder(cfg.Barrier)}
	case "both":
		return []Adder{NewSequentialAdder(), NewParallelAdder(cfg.Barrier)}
	}
	return nil
}

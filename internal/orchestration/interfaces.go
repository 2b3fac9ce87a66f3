package orchestration

import (
	"context"
	"io"
	"time"

	"github.com/agbru/bitadd/internal/adder"
	"github.com/agbru/bitadd/internal/bitvec"
)

// Adder is the contract every addition strategy satisfies. Implementations
// must not mutate the operand vectors.
type Adder interface {
	// Name returns the identifier of the strategy (e.g., "Ripple Carry").
	Name() string
	// Add computes b1 + b2 and reports the final carry-out.
	Add(ctx context.Context, b1, b2 bitvec.Vector) (adder.Result, error)
}

// AdderFunc is a function adapter that implements Adder.
type AdderFunc struct {
	AdderName string
	Fn        func(ctx context.Context, b1, b2 bitvec.Vector) (adder.Result, error)
}

// Name returns the adapter's name.
func (a AdderFunc) Name() string { return a.AdderName }

// Add calls the underlying function.
func (a AdderFunc) Add(ctx context.Context, b1, b2 bitvec.Vector) (adder.Result, error) {
	return a.Fn(ctx, b1, b2)
}

// AdditionResult encapsulates the outcome of a single addition.
// It serves as the shared domain type between orchestration and presentation
// layers.
type AdditionResult struct {
	// Name is the identifier of the strategy used.
	Name string
	// Result holds the computed sum and carry-out. It is only meaningful
	// when Err is nil.
	Result adder.Result
	// Duration is the time taken to complete the addition.
	Duration time.Duration
	// Err contains any error that occurred during the addition.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Bits      int
	Verbose   bool
	ShowValue bool
}

// ResultPresenter defines the interface for presenting addition results.
// This interface decouples the orchestration layer from presentation
// concerns, allowing different output formats without modifying the
// orchestration logic.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []AdditionResult, out io.Writer)

	// PresentResult displays the final addition result.
	PresentResult(result AdditionResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler handles addition errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

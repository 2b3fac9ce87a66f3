package app

import (
	"context"
	"io"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/bitadd/internal/bitvec"
	"github.com/agbru/bitadd/internal/cli"
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/logging"
	"github.com/agbru/bitadd/internal/orchestration"
)

// runCalculate executes the one-shot addition mode: it builds the operands,
// runs the selected adders concurrently and presents the outcome.
func (a *Application) runCalculate(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	b1, b2, err := a.buildOperands()
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}

	adders := orchestration.AddersToRun(a.Config)
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, len(b1), out)
		cli.PrintExecutionMode(adders, out)
	}
	a.Log.Debug("run configured",
		logging.String("summary", a.Config.Summary()),
		logging.Int("width", len(b1)))

	start := time.Now()
	results := orchestration.ExecuteAdditions(ctx, adders, b1, b2, a.Metrics)
	elapsed := time.Since(start)
	a.Log.Debug("additions complete",
		logging.Duration("elapsed", elapsed),
		logging.Int("adders", len(results)))

	if a.Config.Quiet {
		return a.presentQuiet(results, elapsed, out)
	}

	opts := orchestration.PresentationOptions{
		Bits:      len(b1),
		Verbose:   a.Config.Verbose,
		ShowValue: a.Config.ShowValue,
	}
	presenter := cli.CLIResultPresenter{Output: cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Verbose:    a.Config.Verbose,
		ShowValue:  a.Config.ShowValue,
	}}
	return orchestration.AnalyzeComparisonResults(results, opts, presenter, presenter, out)
}

// buildOperands constructs the two operand vectors. Explicit operands of
// different widths are zero-extended to the wider of the two; without
// explicit operands, random vectors of the configured width are generated.
func (a *Application) buildOperands() (bitvec.Vector, bitvec.Vector, error) {
	if a.Config.A != "" {
		va, err := bitvec.ParseBinary(a.Config.A)
		if err != nil {
			return nil, nil, err
		}
		vb, err := bitvec.ParseBinary(a.Config.B)
		if err != nil {
			return nil, nil, err
		}
		va, vb = bitvec.PadToEqual(va, vb)
		return va, vb, nil
	}

	seed := a.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	return bitvec.Random(rng, a.Config.Bits), bitvec.Random(rng, a.Config.Bits), nil
}

// presentQuiet emits the single machine-readable result line from the
// fastest successful adder, writing the result file when requested.
func (a *Application) presentQuiet(results []orchestration.AdditionResult, elapsed time.Duration, out io.Writer) int {
	best := findBestResult(results)
	if best == nil {
		var firstErr error
		for _, r := range results {
			if r.Err != nil {
				firstErr = r.Err
				break
			}
		}
		return apperrors.HandleCalculationError(firstErr, elapsed, out, nil)
	}

	cli.DisplayQuietResult(out, best.Result)

	if a.Config.OutputFile != "" {
		outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: true}
		if err := cli.WriteResultToFile(best.Result, best.Duration, best.Name, outputCfg); err != nil {
			a.Log.Error("failed to write result file", err,
				logging.String("path", a.Config.OutputFile))
		}
	}
	return apperrors.ExitSuccess
}

// findBestResult returns the fastest successful result, or nil when every
// adder failed.
func findBestResult(results []orchestration.AdditionResult) *orchestration.AdditionResult {
	var best *orchestration.AdditionResult
	for i := range results {
		r := &results[i]
		if r.Err != nil {
			continue
		}
		if best == nil || r.Duration < best.Duration {
			best = r
		}
	}
	return best
}

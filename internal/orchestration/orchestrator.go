package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/bitadd/internal/bitvec"
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/metrics"
)

const tracerName = "github.com/agbru/bitadd/internal/orchestration"

// ExecuteAdditions orchestrates the concurrent execution of one or more
// addition strategies over the same pair of operands.
//
// It manages the lifecycle of the worker goroutines, times each strategy, and
// records the outcome on the metrics recorder. Each strategy runs under its
// own trace span. This function is the core of the application's concurrency
// model.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - adders: A slice of adders to execute.
//   - b1, b2: The operand vectors. They are shared read-only across adders.
//   - recorder: The metrics recorder. May be nil to skip instrumentation.
//
// Returns:
//   - []AdditionResult: A slice containing the results of each addition, in
//     the same order as adders.
func ExecuteAdditions(ctx context.Context, adders []Adder, b1, b2 bitvec.Vector, recorder *metrics.Recorder) []AdditionResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]AdditionResult, len(adders))
	tracer := otel.Tracer(tracerName)

	for i, a := range adders {
		idx, strategy := i, a
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "bitadd.addition")
			span.SetAttributes(
				attribute.String("adder", strategy.Name()),
				attribute.Int("operand.bits", len(b1)),
			)

			startTime := time.Now()
			res, err := strategy.Add(spanCtx, b1, b2)
			elapsed := time.Since(startTime)

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()

			if recorder != nil {
				recorder.ObserveAddition(strategy.Name(), len(b1), elapsed, err)
			}
			results[idx] = AdditionResult{
				Name: strategy.Name(), Result: res, Duration: elapsed, Err: err,
			}
			return nil
		})
	}

	g.Wait()
	return results
}

// AnalyzeComparisonResults processes the results from multiple strategies and
// generates a summary report.
//
// It sorts the results by execution time, validates that all successful
// strategies produced the same sum and carry-out, and displays a comparative
// table. It handles the logic for determining global success or failure based
// on the individual outcomes.
//
// Parameters:
//   - results: The slice of addition results to analyze.
//   - opts: Presentation options forwarded to the presenter.
//   - presenter: The result presenter for display formatting.
//   - errHandler: The error handler mapping failures to exit codes.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeComparisonResults(results []AdditionResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *AdditionResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No adder could complete the addition.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	mismatch := false
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if res.Result.Carry != firstValidResult.Result.Carry ||
			!res.Result.Sum.Equal(firstValidResult.Result.Sum) {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! An inconsistency was detected between the results of the adders.")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}

package cli

import (
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/format"
	"github.com/agbru/bitadd/internal/orchestration"
	"github.com/agbru/bitadd/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider with the active theme.
type CLIColorProvider struct{}

// Verify interface compliance.
var _ apperrors.ColorProvider = CLIColorProvider{}

// ErrorColor returns the theme's error color.
func (CLIColorProvider) ErrorColor() string { return ui.ColorError() }

// WarningColor returns the theme's warning color.
func (CLIColorProvider) WarningColor() string { return ui.ColorWarning() }

// Reset returns the theme's reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
// It provides formatted, colorized output for addition results in the
// command-line interface.
type CLIResultPresenter struct {
	// Output holds the file/quiet output settings applied when presenting
	// the final result.
	Output OutputConfig
}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays the comparison summary table with adder
// names, durations, and status in a formatted tabular layout. Uses manual
// padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.AdditionResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	// Find the maximum name width for proper alignment
	maxNameLen := 5     // "Adder" header length
	maxDurationLen := 8 // "Duration" header length
	for _, res := range results {
		if len(res.Name) > maxNameLen {
			maxNameLen = len(res.Name)
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		if len(duration) > maxDurationLen {
			maxDurationLen = len(duration)
		}
	}

	// Print header with proper padding
	fmt.Fprintf(out, "%sAdder%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorBold(), ui.ColorReset(), padRight("", maxNameLen-5),
		ui.ColorBold(), ui.ColorReset(), padRight("", maxDurationLen-8),
		ui.ColorBold(), ui.ColorReset())

	// Print each result row
	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorError(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorSuccess(), ui.ColorReset())
		}
		duration := format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			duration = "< 1µs"
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorInfo(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorWarning(), duration, ui.ColorReset(), padRight("", maxDurationLen-len(duration)),
			status)
	}
}

// padRight returns a string of spaces with the given length.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the final addition result using the CLI's
// DisplayResult function, honoring the configured output settings.
func (p CLIResultPresenter) PresentResult(result orchestration.AdditionResult, opts orchestration.PresentationOptions, out io.Writer) {
	cfg := p.Output
	cfg.Verbose = cfg.Verbose || opts.Verbose
	cfg.ShowValue = cfg.ShowValue || opts.ShowValue
	if err := DisplayResultWithConfig(out, result.Result, result.Duration, result.Name, cfg); err != nil {
		fmt.Fprintf(out, "%sFailed to write result file: %v%s\n", ui.ColorError(), err, ui.ColorReset())
	}
}

// HandleError handles addition errors and returns an appropriate exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

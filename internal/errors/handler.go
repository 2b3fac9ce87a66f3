package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// ColorProvider supplies ANSI sequences for error display. A nil provider
// disables colorization, which is what non-terminal consumers want.
type ColorProvider interface {
	// ErrorColor returns the sequence that opens error-highlighted text.
	ErrorColor() string
	// WarningColor returns the sequence that opens warning-highlighted text.
	WarningColor() string
	// Reset returns the sequence that restores the default style.
	Reset() string
}

// HandleCalculationError prints a user-facing diagnostic for an addition run
// failure and maps it to the process exit code.
//
// Parameters:
//   - err: The error to handle. nil yields ExitSuccess.
//   - duration: How long the run lasted before failing. Zero when unknown.
//   - out: The writer for the diagnostic message.
//   - colors: Optional color provider. May be nil.
//
// Returns:
//   - int: The exit code corresponding to the error category.
func HandleCalculationError(err error, duration time.Duration, out io.Writer, colors ColorProvider) int {
	if err == nil {
		return ExitSuccess
	}

	var red, yellow, reset string
	if colors != nil {
		red, yellow, reset = colors.ErrorColor(), colors.WarningColor(), colors.Reset()
	}

	var timeoutErr TimeoutError
	var cfgErr ConfigError

	switch {
	case errors.Is(err, context.DeadlineExceeded) || errors.As(err, &timeoutErr):
		fmt.Fprintf(out, "%sTimeout:%s the addition did not complete within %s%s%s.\n",
			red, reset, yellow, duration, reset)
		return ExitErrorTimeout

	case errors.Is(err, context.Canceled):
		fmt.Fprintf(out, "%sCanceled:%s the addition was interrupted after %s.\n",
			red, reset, duration)
		return ExitErrorCanceled

	case errors.As(err, &cfgErr):
		fmt.Fprintf(out, "%sConfiguration error:%s %v\n", red, reset, err)
		return ExitErrorConfig

	default:
		fmt.Fprintf(out, "%sError:%s %v\n", red, reset, err)
		return ExitErrorGeneric
	}
}

// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult], [FormatSum].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/bitadd/internal/adder"
	"github.com/agbru/bitadd/internal/bitvec"
	"github.com/agbru/bitadd/internal/format"
	"github.com/agbru/bitadd/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows width and carry details.
	Verbose bool
	// ShowValue forces the full sum display regardless of width.
	ShowValue bool
}

// FormatSum renders the sum as an MSB-first binary string, truncating the
// middle of results wider than TruncationLimit bits unless full is set.
func FormatSum(sum bitvec.Vector, full bool) string {
	s := sum.String()
	if full || len(sum) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (truncated, %d bits)",
		s[:DisplayEdges], s[len(s)-DisplayEdges:], len(sum))
}

// FormatQuietResult formats a result for quiet mode output: the carry bit
// followed by the full sum, suitable for scripting.
func FormatQuietResult(res adder.Result) string {
	carry := "0"
	if res.Carry {
		carry = "1"
	}
	return carry + " " + res.Sum.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res adder.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult displays an addition result with colorized formatting.
//
// Parameters:
//   - res: The addition result.
//   - duration: The time the addition took.
//   - verbose: Whether to include width and environment details.
//   - showValue: Whether to print the full sum and its decimal value.
//   - out: The output writer.
func DisplayResult(res adder.Result, duration time.Duration, verbose, showValue bool, out io.Writer) {
	fmt.Fprintf(out, "\n%sResult:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Time:  %s%s%s\n", ui.ColorSuccess(), format.FormatExecutionDuration(duration), ui.ColorReset())
	fmt.Fprintf(out, "  Width: %s%s%s\n", ui.ColorInfo(), format.FormatBitWidth(len(res.Sum)), ui.ColorReset())

	carry := "0"
	if res.Carry {
		carry = "1"
	}
	fmt.Fprintf(out, "  Carry: %s%s%s\n", ui.ColorInfo(), carry, ui.ColorReset())
	fmt.Fprintf(out, "  Sum  = %s%s%s\n", ui.ColorSuccess(), FormatSum(res.Sum, showValue), ui.ColorReset())

	if showValue {
		fmt.Fprintf(out, "  Value = %s%s%s\n",
			ui.ColorSuccess(), format.FormatNumberString(res.Sum.ToBigInt().String()), ui.ColorReset())
	}
	if verbose {
		fmt.Fprintf(out, "  (interpretation: bit 0 is the least significant; carry is the overflow out of bit %d)\n",
			len(res.Sum)-1)
	}
}

// WriteResultToFile writes an addition result to a file.
//
// Parameters:
//   - res: The addition result.
//   - duration: The addition duration.
//   - algo: The adder name used.
//   - config: Output configuration.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res adder.Result, duration time.Duration, algo string, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	carry := 0
	if res.Carry {
		carry = 1
	}

	// Write header
	fmt.Fprintf(file, "# Binary Addition Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Adder: %s\n", algo)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Width: %d\n", len(res.Sum))
	fmt.Fprintf(file, "# Carry: %d\n", carry)
	fmt.Fprintf(file, "\n")

	// Write result
	fmt.Fprintf(file, "%s\n", res.Sum.String())

	return nil
}

// DisplayResultWithConfig displays a result with the given output
// configuration. This is a unified function that handles all output modes.
//
// Returns:
//   - error: An error if file output fails.
func DisplayResultWithConfig(out io.Writer, res adder.Result, duration time.Duration, algo string, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, res)
	} else {
		DisplayResult(res, duration, config.Verbose, config.ShowValue, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, duration, algo, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorSuccess(), ui.ColorInfo(), config.OutputFile, ui.ColorReset())
		}
	}

	return nil
}

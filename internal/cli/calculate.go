package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bitadd/internal/config"
	"github.com/agbru/bitadd/internal/format"
	"github.com/agbru/bitadd/internal/orchestration"
	"github.com/agbru/bitadd/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the operand width, timeout, environment details, and the
// split barrier in effect.
//
// Parameters:
//   - cfg: The application configuration.
//   - width: The resolved operand width in bits.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, width int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Adding two %s%s%s operands with a timeout of %s%s%s.\n",
		ui.ColorPrimary(), format.FormatBitWidth(width), ui.ColorReset(),
		ui.ColorWarning(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorInfo(), runtime.NumCPU(), ui.ColorReset(), ui.ColorInfo(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "Split barrier: %s2^%d%s bits (leaves below this ripple sequentially).\n",
		ui.ColorInfo(), cfg.Barrier, ui.ColorReset())
}

// PrintExecutionMode displays the execution mode (single adder vs comparison).
//
// Parameters:
//   - adders: The slice of adders that will be executed.
//   - out: The writer for standard output.
func PrintExecutionMode(adders []orchestration.Adder, out io.Writer) {
	var modeDesc string
	if len(adders) > 1 {
		modeDesc = "Parallel comparison of all adders"
	} else {
		modeDesc = fmt.Sprintf("Single addition with the %s%s%s adder",
			ui.ColorSuccess(), adders[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

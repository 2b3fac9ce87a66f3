package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/agbru/bitadd/internal/bench"
	"github.com/agbru/bitadd/internal/format"
	"github.com/agbru/bitadd/internal/ui"
)

// DisplayBenchTable formats and prints the sweep results, one block per
// operand width, highlighting the fastest barrier.
func DisplayBenchTable(out io.Writer, measurements []bench.Measurement) {
	fmt.Fprintf(out, "\n--- Benchmark Summary ---\n")

	byWidth := groupByWidth(measurements)
	for _, group := range byWidth {
		best := bench.BestBarrier(group)

		fmt.Fprintf(out, "\nOperand width: %s%s%s\n",
			ui.ColorPrimary(), format.FormatBitWidth(group[0].Width), ui.ColorReset())

		tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintf(tw, "  %sBarrier%s\t│ %sDuration%s\t│ %sSpeedup%s\t│ %sPeak CPU%s\n",
			ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(),
			ui.ColorBold(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset())
		fmt.Fprintf(tw, "  %s\t┼%s\n", strings.Repeat("─", 12), strings.Repeat("─", 40))

		for _, m := range group {
			label := fmt.Sprintf("2^%d bits", m.Barrier)
			if m.Barrier == bench.SequentialBarrier {
				label = "Sequential"
			}

			durationStr := fmt.Sprintf("%sN/A%s", ui.ColorError(), ui.ColorReset())
			speedupStr := ""
			if m.Err == nil {
				durationStr = format.FormatExecutionDuration(m.Duration)
				if m.Duration == 0 {
					durationStr = "< 1µs"
				}
				speedupStr = fmt.Sprintf("%.2fx", m.Speedup)
			}

			highlight := ""
			if m.Barrier == best && m.Barrier != bench.SequentialBarrier && m.Err == nil {
				highlight = fmt.Sprintf(" %s(Optimal)%s", ui.ColorSuccess(), ui.ColorReset())
			}

			fmt.Fprintf(tw, "  %s%-10s%s\t│ %s%s%s\t│ %s\t│ %.0f%%%s\n",
				ui.ColorInfo(), label, ui.ColorReset(),
				ui.ColorWarning(), durationStr, ui.ColorReset(),
				speedupStr, m.Load.CPUPercent, highlight)
		}
		tw.Flush()

		if best != bench.SequentialBarrier {
			fmt.Fprintf(out, "  Best barrier: %s2^%d%s bits\n", ui.ColorSuccess(), best, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "  No barrier beat the sequential baseline at this width.\n")
		}
	}
}

// WriteBenchCSV writes the sweep results as CSV to the given path, creating
// parent directories as needed. Baseline rows carry "seq" in the barrier
// column; failed points carry the error text and empty numeric columns.
func WriteBenchCSV(path string, measurements []bench.Measurement) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"width_bits", "barrier", "duration_ns", "speedup", "peak_cpu_percent", "error"}); err != nil {
		return err
	}
	for _, m := range measurements {
		barrier := strconv.Itoa(m.Barrier)
		if m.Barrier == bench.SequentialBarrier {
			barrier = "seq"
		}
		row := []string{strconv.Itoa(m.Width), barrier, "", "", "", ""}
		if m.Err != nil {
			row[5] = m.Err.Error()
		} else {
			row[2] = strconv.FormatInt(m.Duration.Nanoseconds(), 10)
			row[3] = strconv.FormatFloat(m.Speedup, 'f', 2, 64)
			row[4] = strconv.FormatFloat(m.Load.CPUPercent, 'f', 0, 64)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// groupByWidth splits measurements into per-width groups, preserving the
// sweep order within each group.
func groupByWidth(measurements []bench.Measurement) [][]bench.Measurement {
	var groups [][]bench.Measurement
	index := map[int]int{}
	for _, m := range measurements {
		i, ok := index[m.Width]
		if !ok {
			i = len(groups)
			index[m.Width] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], m)
	}
	return groups
}

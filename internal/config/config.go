// Package config defines the application configuration and its resolution
// chain: command-line flags take priority over BITADD_-prefixed environment
// variables, which take priority over defaults; the barrier additionally
// falls back to an adaptive hardware estimate when left on auto.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/bitadd/internal/errors"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "BITADD_"

// AutoBarrier marks the barrier as unset so the adaptive estimation applies.
const AutoBarrier = -1

// Default configuration values.
const (
	DefaultTimeout    = 2 * time.Minute
	DefaultBits       = 1 << 20
	DefaultAlgo       = "both"
	DefaultBenchReps  = 5
	DefaultBenchSizes = "4096,65536,1048576,16777216"
)

// AppConfig holds the complete runtime configuration of the bitadd CLI.
type AppConfig struct {
	// A and B are the operands as MSB-first binary strings. When both are
	// empty, random operands of Bits width are generated instead.
	A string
	B string
	// Bits is the width of the generated random operands.
	Bits int
	// Seed seeds the random operand generator (0 means time-based).
	Seed int64
	// Barrier is the fork-join recursion barrier exponent; AutoBarrier
	// selects a hardware-adapted value.
	Barrier int
	// Algo selects the adder(s) to run: "seq", "par" or "both".
	Algo string
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Bench enables the barrier/width sweep mode.
	Bench bool
	// BenchReps is the number of repetitions per sweep point.
	BenchReps int
	// BenchSizes is the comma-separated list of operand widths to sweep.
	BenchSizes string
	// TUI enables the live dashboard for bench mode.
	TUI bool
	// Interactive starts the REPL instead of a one-shot run.
	Interactive bool
	// OutputFile receives the result (empty for no file output).
	OutputFile string
	// Verbose enables detailed output.
	Verbose bool
	// Quiet reduces output to a single machine-readable line.
	Quiet bool
	// ShowValue prints the full sum even for very wide results.
	ShowValue bool
}

// ParseConfig parses command-line flags, applies environment overrides for
// flags not explicitly set, and validates the resulting configuration.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The raw command-line arguments (excluding the program name).
//   - errWriter: The writer for flag-parsing diagnostics.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.A, "a", "", "first operand as a binary string (MSB first)")
	fs.StringVar(&cfg.B, "b", "", "second operand as a binary string (MSB first)")
	fs.IntVar(&cfg.Bits, "bits", DefaultBits, "width of generated random operands when -a/-b are absent")
	fs.Int64Var(&cfg.Seed, "seed", 0, "seed for random operand generation (0 = time-based)")
	fs.IntVar(&cfg.Barrier, "barrier", AutoBarrier, "recursion barrier exponent k: split only above 2^k bits (-1 = auto)")
	fs.StringVar(&cfg.Algo, "algo", DefaultAlgo, "adder to run: seq, par or both")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "global timeout for the run")
	fs.BoolVar(&cfg.Bench, "bench", false, "run the barrier/width benchmark sweep")
	fs.IntVar(&cfg.BenchReps, "bench-reps", DefaultBenchReps, "repetitions per benchmark point")
	fs.StringVar(&cfg.BenchSizes, "bench-sizes", DefaultBenchSizes, "comma-separated operand widths for the sweep")
	fs.BoolVar(&cfg.TUI, "tui", false, "show the live dashboard in bench mode")
	fs.BoolVar(&cfg.Interactive, "interactive", false, "start an interactive session")
	fs.BoolVar(&cfg.Interactive, "i", false, "start an interactive session (shorthand)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result (or benchmark CSV) to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "write the result (or benchmark CSV) to this file (shorthand)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output")
	fs.BoolVar(&cfg.Quiet, "q", false, "quiet, script-friendly output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "quiet, script-friendly output")
	fs.BoolVar(&cfg.ShowValue, "show-value", false, "print the full sum regardless of width")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for contradictions and out-of-range
// values. It returns a ConfigError describing the first problem found.
func (c AppConfig) Validate() error {
	switch c.Algo {
	case "seq", "par", "both":
	default:
		return apperrors.NewConfigError("unknown algo %q: must be seq, par or both", c.Algo)
	}

	if (c.A == "") != (c.B == "") {
		return apperrors.NewConfigError("operands must be given together: provide both -a and -b, or neither")
	}
	if c.A == "" && c.Bits <= 0 {
		return apperrors.NewConfigError("invalid width %d: -bits must be positive when no operands are given", c.Bits)
	}
	if c.Barrier < AutoBarrier {
		return apperrors.NewConfigError("invalid barrier %d: must be non-negative (or -1 for auto)", c.Barrier)
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("invalid timeout %s: must be positive", c.Timeout)
	}
	if c.Bench {
		if c.BenchReps <= 0 {
			return apperrors.NewConfigError("invalid bench-reps %d: must be positive", c.BenchReps)
		}
		if _, err := ParseWidthList(c.BenchSizes); err != nil {
			return err
		}
	}
	return nil
}

// ParseWidthList parses a comma-separated list of positive operand widths.
func ParseWidthList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	widths := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		w, err := strconv.Atoi(p)
		if err != nil || w <= 0 {
			return nil, apperrors.NewConfigError("invalid width %q in size list: must be a positive integer", p)
		}
		widths = append(widths, w)
	}
	if len(widths) == 0 {
		return nil, apperrors.NewConfigError("size list %q contains no widths", s)
	}
	return widths, nil
}

// Summary returns a one-line description of the run for logging.
func (c AppConfig) Summary() string {
	operands := fmt.Sprintf("random %d-bit", c.Bits)
	if c.A != "" {
		operands = fmt.Sprintf("explicit (%d/%d bits)", len(c.A), len(c.B))
	}
	return fmt.Sprintf("algo=%s barrier=%d operands=%s timeout=%s", c.Algo, c.Barrier, operands, c.Timeout)
}

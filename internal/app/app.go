// Package app wires configuration, orchestration and presentation together
// and dispatches between the application's run modes: one-shot addition,
// benchmark sweep (plain or TUI) and the interactive REPL.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/bitadd/internal/bench"
	"github.com/agbru/bitadd/internal/cli"
	"github.com/agbru/bitadd/internal/config"
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/logging"
	"github.com/agbru/bitadd/internal/metrics"
	"github.com/agbru/bitadd/internal/tui"
	"github.com/agbru/bitadd/internal/ui"
	"github.com/rs/zerolog"
)

// Application represents the bitadd application instance.
type Application struct {
	Config    config.AppConfig
	Log       logging.Logger
	Metrics   *metrics.Recorder
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger sets a custom logger for the application.
func WithLogger(log logging.Logger) AppOption {
	return func(a *Application) { a.Log = log }
}

// WithRecorder sets a custom metrics recorder for the application.
func WithRecorder(rec *metrics.Recorder) AppOption {
	return func(a *Application) { a.Metrics = rec }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Log == nil {
		app.Log = logging.NewDefaultLogger()
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewRecorder()
	}

	programName := "bitadd"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = config.ApplyAdaptiveBarrier(cfg)
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	switch {
	case a.Config.Quiet:
		level = zerolog.ErrorLevel
	case a.Config.Verbose:
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(false)

	if a.Config.Interactive {
		return a.runInteractive(out)
	}
	if a.Config.Bench {
		return a.runBench(ctx, out)
	}
	return a.runCalculate(ctx, out)
}

// runInteractive starts the REPL session on the given writer.
func (a *Application) runInteractive(out io.Writer) int {
	repl := cli.NewREPL(cli.REPLConfig{
		Barrier:   a.Config.Barrier,
		Timeout:   a.Config.Timeout,
		ShowValue: a.Config.ShowValue,
	})
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runBench runs the barrier/width sweep, either behind the live dashboard or
// with a plain spinner, and prints the summary table afterwards.
func (a *Application) runBench(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	widths, err := config.ParseWidthList(a.Config.BenchSizes)
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}
	barriers := bench.GenerateBarriers()

	opts := bench.Options{
		Widths:   widths,
		Barriers: barriers,
		Reps:     a.Config.BenchReps,
		Seed:     a.Config.Seed,
		Recorder: a.Metrics,
	}

	if a.Config.TUI {
		measurements, code := tui.Run(ctx, opts, a.Log, Version)
		cli.DisplayBenchTable(out, measurements)
		a.exportBenchCSV(measurements)
		return code
	}

	var progress *cli.BenchProgress
	if !a.Config.Quiet {
		total := len(widths) * (len(barriers) + 1)
		progress = cli.NewBenchProgress(total, out)
		opts.OnPoint = progress.Point
		progress.Start()
	}

	measurements, err := bench.Run(ctx, opts, a.Log)
	if progress != nil {
		progress.Stop()
	}
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, out, cli.CLIColorProvider{})
	}

	cli.DisplayBenchTable(out, measurements)
	a.exportBenchCSV(measurements)
	return apperrors.ExitSuccess
}

// exportBenchCSV writes the sweep results to the configured output file,
// if any.
func (a *Application) exportBenchCSV(measurements []bench.Measurement) {
	if a.Config.OutputFile == "" || len(measurements) == 0 {
		return
	}
	if err := cli.WriteBenchCSV(a.Config.OutputFile, measurements); err != nil {
		a.Log.Error("failed to write benchmark CSV", err,
			logging.String("path", a.Config.OutputFile))
		return
	}
	a.Log.Info("benchmark results written",
		logging.String("path", a.Config.OutputFile),
		logging.Int("points", len(measurements)))
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bitadd/internal/bench"
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/format"
	"github.com/agbru/bitadd/internal/logging"
	"github.com/agbru/bitadd/internal/sysmon"
)

const (
	// recentPoints is how many completed measurements the dashboard lists.
	recentPoints = 8
	// sparklineCap bounds the CPU history shown in the load panel.
	sparklineCap = 48
	// tickInterval drives the live load sampling.
	tickInterval = 500 * time.Millisecond
)

// Model is the root bubbletea model for the benchmark dashboard.
type Model struct {
	opts    bench.Options
	log     logging.Logger
	version string

	ctx    context.Context
	cancel context.CancelFunc
	ref    *programRef

	bar     progress.Model
	keymap  KeyMap
	cpuHist *RingBuffer

	recent       []bench.Measurement
	measurements []bench.Measurement
	total        int
	done         int
	finished     bool
	exitCode     int
	err          error

	startTime time.Time
	width     int
}

// NewModel creates a new dashboard model for the given sweep.
func NewModel(parentCtx context.Context, opts bench.Options, log logging.Logger, version string) Model {
	ctx, cancel := context.WithCancel(parentCtx)

	barriers := opts.Barriers
	if len(barriers) == 0 {
		barriers = bench.GenerateBarriers()
	}

	return Model{
		opts:      opts,
		log:       log,
		version:   version,
		ctx:       ctx,
		cancel:    cancel,
		ref:       &programRef{},
		bar:       progress.New(progress.WithDefaultGradient()),
		keymap:    DefaultKeyMap(),
		cpuHist:   NewRingBuffer(sparklineCap),
		total:     len(opts.Widths) * (len(barriers) + 1),
		exitCode:  apperrors.ExitSuccess,
		startTime: time.Now(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startSweepCmd(m.ref, m.ctx, m.opts, m.log),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			m.cancel()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = msg.Width - 8
		if m.bar.Width > 60 {
			m.bar.Width = 60
		}
		return m, nil

	case PointMsg:
		m.done++
		m.recent = append(m.recent, bench.Measurement(msg))
		if len(m.recent) > recentPoints {
			m.recent = m.recent[len(m.recent)-recentPoints:]
		}
		return m, nil

	case SweepDoneMsg:
		m.finished = true
		m.measurements = msg.Measurements
		m.err = msg.Err
		if msg.Err != nil {
			m.exitCode = apperrors.HandleCalculationError(msg.Err, time.Since(m.startTime), io.Discard, nil)
		}
		return m, nil

	case TickMsg:
		if m.finished {
			return m, nil
		}
		return m, tea.Batch(sampleSysStatsCmd(), tickCmd())

	case SysStatsMsg:
		m.cpuHist.Push(msg.CPUPercent)
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("bitadd sweep "),
		versionStyle.Render(m.version),
		elapsedStyle.Render(fmt.Sprintf("  %s", time.Since(m.startTime).Round(time.Second))),
		"  ", m.statusView(),
	)

	frac := 0.0
	if m.total > 0 {
		frac = float64(m.done) / float64(m.total)
	}
	bar := fmt.Sprintf("%s %d/%d", m.bar.ViewAs(frac), m.done, m.total)

	load := lipgloss.JoinHorizontal(lipgloss.Center,
		rowLabelStyle.Render("cpu "),
		sparklineStyle.Render(RenderSparkline(m.cpuHist.Slice(), 100)),
		rowLabelStyle.Render(fmt.Sprintf(" %3.0f%%", m.cpuHist.Last())),
	)

	footer := lipgloss.JoinHorizontal(lipgloss.Center,
		footerKeyStyle.Render("q"),
		footerDescStyle.Render(" quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, bar, "", m.pointsView(), "", load)),
		footer,
	)
}

func (m Model) statusView() string {
	switch {
	case m.err != nil:
		return statusErrorStyle.Render("ERROR")
	case m.finished:
		return statusDoneStyle.Render("DONE (q to quit)")
	default:
		return statusRunStyle.Render("RUNNING")
	}
}

// pointsView lists the most recent completed measurements.
func (m Model) pointsView() string {
	if len(m.recent) == 0 {
		return rowLabelStyle.Render("waiting for first measurement...")
	}

	rows := make([]string, 0, len(m.recent))
	for _, p := range m.recent {
		label := fmt.Sprintf("barrier 2^%-2d", p.Barrier)
		if p.Barrier == bench.SequentialBarrier {
			label = "baseline    "
		}

		var outcome string
		switch {
		case p.Err != nil:
			outcome = rowErrorStyle.Render(p.Err.Error())
		case p.Barrier == bench.SequentialBarrier:
			outcome = rowValueStyle.Render(format.FormatExecutionDuration(p.Duration))
		default:
			outcome = lipgloss.JoinHorizontal(lipgloss.Center,
				rowValueStyle.Render(format.FormatExecutionDuration(p.Duration)),
				rowSuccessStyle.Render(fmt.Sprintf("  %.2fx", p.Speedup)),
			)
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			rowLabelStyle.Render(fmt.Sprintf("%-10s ", format.FormatBitWidth(p.Width))),
			rowLabelStyle.Render(label+"  "),
			outcome,
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Run is the public entry point for the dashboard mode. It runs the sweep
// under the TUI and returns the collected measurements and an exit code.
func Run(ctx context.Context, opts bench.Options, log logging.Logger, version string) ([]bench.Measurement, int) {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, opts, log, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	// Inject the program reference before running so the sweep goroutine can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return nil, apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.measurements, m.exitCode
	}
	return nil, apperrors.ExitSuccess
}

// startSweepCmd returns a tea.Cmd that launches the benchmark sweep.
// Completed points are forwarded as PointMsg through the program reference.
func startSweepCmd(ref *programRef, ctx context.Context, opts bench.Options, log logging.Logger) tea.Cmd {
	return func() tea.Msg {
		opts.OnPoint = func(m bench.Measurement) {
			ref.Send(PointMsg(m))
		}
		measurements, err := bench.Run(ctx, opts, log)
		return SweepDoneMsg{Measurements: measurements, Err: err}
	}
}

// tickCmd returns a command that sends a TickMsg after the tick interval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// sampleSysStatsCmd reads system-wide CPU and memory stats off the UI thread.
func sampleSysStatsCmd() tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg(sysmon.Sample())
	}
}

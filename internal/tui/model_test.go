package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bitadd/internal/bench"
	apperrors "github.com/agbru/bitadd/internal/errors"
	"github.com/agbru/bitadd/internal/logging"
)

func newTestModel() Model {
	opts := bench.Options{Widths: []int{64}, Barriers: []int{4, 6}, Reps: 1}
	return NewModel(context.Background(), opts, logging.NewLogger(io.Discard, "tui-test"), "test")
}

func TestNewModel_TotalPoints(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	// One baseline point plus one per barrier.
	if m.total != 3 {
		t.Errorf("total = %d, want 3", m.total)
	}
	if m.exitCode != apperrors.ExitSuccess {
		t.Errorf("initial exit code = %d, want success", m.exitCode)
	}
}

func TestUpdate_PointMsg(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	next, _ := m.Update(PointMsg(bench.Measurement{Width: 64, Barrier: 4, Speedup: 1.5}))
	got := next.(Model)

	if got.done != 1 {
		t.Errorf("done = %d, want 1", got.done)
	}
	if len(got.recent) != 1 || got.recent[0].Barrier != 4 {
		t.Errorf("unexpected recent points: %+v", got.recent)
	}
}

func TestUpdate_RecentPointsBounded(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	var model tea.Model = m
	for i := 0; i < recentPoints+5; i++ {
		model, _ = model.Update(PointMsg(bench.Measurement{Width: 64, Barrier: i}))
	}
	got := model.(Model)
	if len(got.recent) != recentPoints {
		t.Errorf("recent length = %d, want %d", len(got.recent), recentPoints)
	}
}

func TestUpdate_SweepDone(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	measurements := []bench.Measurement{{Width: 64, Barrier: bench.SequentialBarrier}}

	next, _ := m.Update(SweepDoneMsg{Measurements: measurements})
	got := next.(Model)
	if !got.finished {
		t.Error("model should be finished")
	}
	if got.exitCode != apperrors.ExitSuccess {
		t.Errorf("exit code = %d, want success", got.exitCode)
	}

	next, _ = m.Update(SweepDoneMsg{Err: errors.New("boom")})
	got = next.(Model)
	if got.exitCode != apperrors.ExitErrorGeneric {
		t.Errorf("exit code = %d, want generic error", got.exitCode)
	}
}

func TestUpdate_QuitKey(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if msg := cmd(); msg == nil {
		t.Error("expected tea.Quit message")
	}
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the sweep context")
	}
}

func TestView_ShowsStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	m.width = 80
	if !strings.Contains(m.View(), "RUNNING") {
		t.Error("expected RUNNING status while sweeping")
	}

	next, _ := m.Update(SweepDoneMsg{})
	got := next.(Model)
	got.width = 80
	if !strings.Contains(got.View(), "DONE") {
		t.Error("expected DONE status after the sweep")
	}
}

func TestUpdate_SysStats(t *testing.T) {
	t.Parallel()

	m := newTestModel()
	next, _ := m.Update(SysStatsMsg{CPUPercent: 42})
	got := next.(Model)
	if got.cpuHist.Last() != 42 {
		t.Errorf("cpu history last = %v, want 42", got.cpuHist.Last())
	}
}

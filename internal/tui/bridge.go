package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/bitadd/internal/bench"
	"github.com/agbru/bitadd/internal/sysmon"
)

// programRef is a shared reference to the tea.Program.
// Because bubbletea copies the model on every Update, we need a pointer
// that survives copies so the sweep goroutine can send messages.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// PointMsg carries one completed sweep measurement to the dashboard.
type PointMsg bench.Measurement

// SweepDoneMsg signals that the sweep finished.
type SweepDoneMsg struct {
	Measurements []bench.Measurement
	Err          error
}

// SysStatsMsg carries a system load sample.
type SysStatsMsg sysmon.Stats

// TickMsg drives the periodic refresh of live indicators.
type TickMsg struct{}

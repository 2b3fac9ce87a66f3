// Package sysmon provides system-wide CPU and memory usage sampling for the
// benchmark sweep, so each measurement can be annotated with the load it ran
// under.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}

// Peak tracks the highest CPU and memory usage seen across samples.
// The zero value is ready to use.
type Peak struct {
	stats Stats
}

// Observe folds a sample into the peak.
func (p *Peak) Observe(s Stats) {
	if s.CPUPercent > p.stats.CPUPercent {
		p.stats.CPUPercent = s.CPUPercent
	}
	if s.MemPercent > p.stats.MemPercent {
		p.stats.MemPercent = s.MemPercent
	}
}

// Stats returns the peak usage observed so far.
func (p *Peak) Stats() Stats {
	return p.stats
}

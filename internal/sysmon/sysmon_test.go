package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()

	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent = %v, want within [0, 100]", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent = %v, want within [0, 100]", s.MemPercent)
	}
}

func TestSample_MemPercentNonZero(t *testing.T) {
	s := Sample()

	// Memory usage of a running system is never exactly zero; a zero value
	// indicates the underlying read failed.
	if s.MemPercent == 0 {
		t.Error("MemPercent = 0, expected a non-zero reading")
	}
}

func TestPeak_TracksMaxima(t *testing.T) {
	var p Peak
	p.Observe(Stats{CPUPercent: 10, MemPercent: 40})
	p.Observe(Stats{CPUPercent: 55, MemPercent: 30})
	p.Observe(Stats{CPUPercent: 20, MemPercent: 70})

	got := p.Stats()
	if got.CPUPercent != 55 {
		t.Errorf("peak CPUPercent = %v, want 55", got.CPUPercent)
	}
	if got.MemPercent != 70 {
		t.Errorf("peak MemPercent = %v, want 70", got.MemPercent)
	}
}

package format

import (
	"testing"
	"time"
)

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{999 * time.Millisecond, "999ms"},
		{2 * time.Second, "2s"},
		{90 * time.Second, "1m30s"},
	}

	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatBitWidth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		bits int
		want string
	}{
		{0, "0 b"},
		{512, "512 b"},
		{4096, "4.0 Kib"},
		{1 << 20, "1.0 Mib"},
		{16 << 20, "16.0 Mib"},
	}

	for _, tt := range tests {
		if got := FormatBitWidth(tt.bits); got != tt.want {
			t.Errorf("FormatBitWidth(%d) = %q, want %q", tt.bits, got, tt.want)
		}
	}
}

func TestETATrackerInitialState(t *testing.T) {
	t.Parallel()
	tr := NewETATracker()
	if tr.ETA() != 0 {
		t.Errorf("initial ETA = %v, want 0", tr.ETA())
	}
	if tr.startTime.IsZero() {
		t.Error("startTime should not be zero")
	}
}

func TestETATrackerEstimate(t *testing.T) {
	t.Parallel()
	tr := NewETATracker()

	// Simulate half the work done at 10% per second.
	tr.lastTime = time.Now().Add(-5 * time.Second)
	tr.Update(0.5)

	eta := tr.ETA()
	want := 5 * time.Second
	tolerance := time.Second
	if eta < want-tolerance || eta > want+tolerance {
		t.Errorf("ETA = %v, want approximately %v", eta, want)
	}
}

func TestETATrackerCompleteHasNoETA(t *testing.T) {
	t.Parallel()
	tr := NewETATracker()
	tr.lastTime = time.Now().Add(-time.Second)
	tr.Update(1.0)
	if tr.ETA() != 0 {
		t.Errorf("ETA after completion = %v, want 0", tr.ETA())
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	tests := []struct {
		eta  time.Duration
		want string
	}{
		{0, "calculating..."},
		{-time.Second, "calculating..."},
		{5 * time.Second, "5s"},
		{59 * time.Second, "59s"},
		{2*time.Minute + 30*time.Second, "2m30s"},
	}

	for _, tt := range tests {
		if got := FormatETA(tt.eta); got != tt.want {
			t.Errorf("FormatETA(%v) = %q, want %q", tt.eta, got, tt.want)
		}
	}
}

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestDeltaGC(t *testing.T) {
	t.Parallel()

	before := MemorySnapshot{NumGC: 3}
	after := MemorySnapshot{NumGC: 7}
	if got := DeltaGC(before, after); got != 4 {
		t.Errorf("DeltaGC = %d, want 4", got)
	}
}

func TestRecorderObserveAddition(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObserveAddition("sequential", 1024, 5*time.Millisecond, nil)
	r.ObserveAddition("sequential", 1024, 7*time.Millisecond, nil)
	r.ObserveAddition("parallel", 1024, time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(r.additionsTotal.WithLabelValues("sequential", "success")); got != 2 {
		t.Errorf("sequential success count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.additionsTotal.WithLabelValues("parallel", "error")); got != 1 {
		t.Errorf("parallel error count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.operandBits); got != 1024 {
		t.Errorf("operand width gauge = %v, want 1024", got)
	}
}

func TestRecorderRegistryGathers(t *testing.T) {
	t.Parallel()

	r := NewRecorder()
	r.ObserveAddition("parallel", 64, time.Millisecond, nil)

	families, err := r.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Fatal("expected at least one metric family")
	}
}

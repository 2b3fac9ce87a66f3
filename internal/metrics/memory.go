// Package metrics collects runtime and Prometheus instrumentation for
// addition runs: process memory snapshots for verbose reporting and
// counters/histograms for scraping.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading. The bench sweep takes
// one before and one after a run to report allocation pressure: wide operands
// allocate a vector per addition, so GC churn directly distorts timings.
type MemorySnapshot struct {
	HeapAlloc uint64 // bytes in use by application
	HeapSys   uint64 // bytes obtained from OS for heap
	Sys       uint64 // total bytes obtained from OS
	NumGC     uint32 // number of completed GC cycles
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc: m.HeapAlloc,
		HeapSys:   m.HeapSys,
		Sys:       m.Sys,
		NumGC:     m.NumGC,
	}
}

// DeltaGC returns the number of GC cycles completed between two snapshots.
func DeltaGC(before, after MemorySnapshot) uint32 {
	return after.NumGC - before.NumGC
}

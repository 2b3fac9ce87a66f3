package config

import "runtime"

// Barrier resolution chain (highest priority first):
//   1. CLI flag (--barrier)
//   2. Environment variable (BITADD_BARRIER)
//   3. Adaptive hardware estimation (this file)
//   4. Static default in adder/constants.go

// ApplyAdaptiveBarrier fills in the recursion barrier from hardware
// characteristics (CPU core count) when the configuration left it on auto.
// User-specified values via flag or environment are preserved.
func ApplyAdaptiveBarrier(cfg AppConfig) AppConfig {
	if cfg.Barrier == AutoBarrier {
		cfg.Barrier = EstimateOptimalBarrier()
	}
	return cfg
}

// EstimateOptimalBarrier provides a heuristic estimate of the optimal
// recursion barrier without running benchmarks.
//
// The barrier is the log2 of the minimum width worth splitting. Fewer cores
// mean goroutine-spawn overhead dominates sooner, so the leaves should stay
// larger; more cores tolerate finer-grained leaves.
func EstimateOptimalBarrier() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 62 // Effectively sequential - parallelism cannot help
	case numCPU <= 2:
		return 14 // 16384-bit leaves - spawn overhead is significant
	case numCPU <= 4:
		return 12 // 4096-bit leaves
	case numCPU <= 8:
		return 11 // 2048-bit leaves - the static default
	case numCPU <= 16:
		return 10 // 1024-bit leaves
	default:
		return 9 // High core count - aggressive splitting
	}
}

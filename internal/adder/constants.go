package adder

// ─────────────────────────────────────────────────────────────────────────────
// Performance Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// These constants control the recursion threshold of the fork-join adder and
// are based on empirical benchmarks across various hardware configurations.

const (
	// DefaultBarrier is the default recursion barrier: the parallel adder
	// splits an operand only while both halves stay at or above 2^DefaultBarrier
	// bits. Below that width the ripple-carry work per leaf is cheaper done
	// directly than the cost of spawning two more goroutines.
	//
	// Empirically determined: 2^11 = 2048-bit leaves balance task-spawn
	// overhead against useful work per leaf on most modern multi-core CPUs.
	DefaultBarrier = 11

	// maxSplitBarrier bounds the barrier exponent used when computing the
	// minimum split width 2^barrier. Any barrier above it cannot be satisfied
	// by a representable slice length, so the adder falls back to the
	// sequential path without shifting past the word size.
	maxSplitBarrier = 62
)

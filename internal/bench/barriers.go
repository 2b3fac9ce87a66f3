// This file implements adaptive barrier list generation based on hardware
// characteristics.

package bench

import (
	"runtime"

	"github.com/agbru/bitadd/internal/config"
)

// GenerateBarriers generates the list of split barriers to sweep based on the
// number of available CPU cores.
//
// The rationale:
// - Single-core: nothing to sweep, parallelism has no benefit
// - 2-4 cores: test coarse barriers as goroutine overhead is relatively high
// - 8+ cores: include finer barriers as more parallelism can be beneficial
// - 16+ cores: add even finer barriers for very fine-grained splitting
func GenerateBarriers() []int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return nil

	case numCPU <= 4:
		return []int{11, 12, 13, 14}

	case numCPU <= 8:
		return []int{10, 11, 12, 13, 14}

	case numCPU <= 16:
		return []int{9, 10, 11, 12, 13, 14}

	default:
		return []int{8, 9, 10, 11, 12, 13, 14, 15}
	}
}

// GenerateQuickBarriers generates a smaller set of barriers for a quick sweep.
func GenerateQuickBarriers() []int {
	numCPU := runtime.NumCPU()

	if numCPU == 1 {
		return nil
	}

	switch {
	case numCPU <= 4:
		return []int{11, 13}
	case numCPU <= 8:
		return []int{10, 11, 13}
	default:
		return []int{9, 11, 13}
	}
}

// EstimateOptimalBarrier delegates to config.EstimateOptimalBarrier.
func EstimateOptimalBarrier() int { return config.EstimateOptimalBarrier() }

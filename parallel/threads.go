package parallel

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// Threads reports the number of logical cores, falling back to the runtime when
// the CPU can't be identified.
func Threads() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

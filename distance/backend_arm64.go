//go:build arm64

package distance

import "golang.org/x/sys/cpu"

func init() {
	// ARM64's NEON (ASIMD) unit, present on effectively every arm64 CPU
	// Go supports, provides a vectorized popcount via VCNT.
	hasHardwarePopcount = cpu.ARM64.HasASIMD
	initBackend()
}

package distance

import (
	"os"
	"strings"
)

// Backend identifies which popcount implementation PopcountXOR uses.
type Backend uint8

const (
	// BackendSoftware is the portable Brian Kernighan bit-clearing loop.
	BackendSoftware Backend = iota
	// BackendHardware is math/bits.OnesCount64, which the Go compiler
	// lowers to a hardware POPCNT instruction on platforms that have one.
	BackendHardware
)

func (b Backend) String() string {
	switch b {
	case BackendHardware:
		return "hardware"
	case BackendSoftware:
		return "software"
	default:
		return "unknown"
	}
}

// Package-level state, set once by the platform-specific init in
// backend_amd64.go, backend_arm64.go or backend_generic.go.
var (
	activeBackend       Backend
	hasOverride         bool
	hasHardwarePopcount bool
	popcountFn          func(uint64) int
)

// initBackend is called from platform-specific init functions after
// hasHardwarePopcount has been detected.
func initBackend() {
	if override, ok := os.LookupEnv("HAMMINGINDEX_POPCOUNT"); ok {
		switch strings.ToLower(strings.TrimSpace(override)) {
		case "software":
			hasOverride = true
			activeBackend = BackendSoftware
			popcountFn = popcountSoftware
			return
		case "hardware":
			if hasHardwarePopcount {
				hasOverride = true
				activeBackend = BackendHardware
				popcountFn = popcountHardware
				return
			}
			// Requested but unavailable: fall through to auto-detection.
		}
	}

	if hasHardwarePopcount {
		activeBackend = BackendHardware
		popcountFn = popcountHardware
	} else {
		activeBackend = BackendSoftware
		popcountFn = popcountSoftware
	}
}

// ActiveBackend returns the popcount backend PopcountXOR currently uses.
func ActiveBackend() Backend {
	return activeBackend
}

// IsOverridden reports whether HAMMINGINDEX_POPCOUNT forced the backend.
func IsOverridden() bool {
	return hasOverride
}

// SelfTest verifies that the hardware and software popcount
// implementations agree on a battery of bit patterns, independent of
// which one is currently active. Callers that need both backends to be
// trustworthy (construction of a MultiIndex) should check this once.
func SelfTest() bool {
	patterns := []uint64{
		0,
		^uint64(0),
		0x0F0F0F0F0F0F0F0F,
		0xAAAAAAAAAAAAAAAA,
		0x5555555555555555,
		1,
		1 << 63,
		0x1234567890ABCDEF,
	}
	for _, p := range patterns {
		if popcountHardware(p) != popcountSoftware(p) {
			return false
		}
	}
	return true
}

//go:build amd64

package distance

import "golang.org/x/sys/cpu"

func init() {
	hasHardwarePopcount = cpu.X86.HasPOPCNT
	initBackend()
}

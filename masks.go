package hammingindex

import (
	"math/bits"
	"sort"
)

// maskEntry pairs a 16-bit bit-flip mask with its popcount, so the
// optimized query path can stop scanning the table as soon as the
// popcount exceeds its per-word bit budget.
type maskEntry struct {
	mask     uint16
	popcount uint8
}

// buildMaskTable enumerates every possible 16-bit mask, stable-sorted
// ascending by popcount. Each MultiIndex computes its own copy at
// construction; the table is small (256 KB) and cheap to recompute, so
// there is no process-wide cache to keep consistent.
func buildMaskTable() []maskEntry {
	table := make([]maskEntry, 1<<16)
	for m := 0; m < 1<<16; m++ {
		table[m] = maskEntry{
			mask:     uint16(m),
			popcount: uint8(bits.OnesCount16(uint16(m))),
		}
	}
	// Stable sort preserves ascending-mask order within a popcount tier,
	// which keeps candidate enumeration deterministic.
	sort.SliceStable(table, func(i, j int) bool {
		return table[i].popcount < table[j].popcount
	})
	return table
}

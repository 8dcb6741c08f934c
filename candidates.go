package hammingindex

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// candidateSet accumulates candidate keys produced by the optimized
// query's bucket probes. Backing it with a Roaring bitmap gives
// deduplication for free — a key probed by more than one mask or word
// position is only ever added once — and ascending iteration order,
// which is the tie-break order the optimized path's dedup step requires.
type candidateSet struct {
	rb *roaring.Bitmap
}

func newCandidateSet() *candidateSet {
	return &candidateSet{rb: roaring.New()}
}

// Add records key as a candidate. It has the signature Bucket.ForEach
// expects, so it can be passed directly as the visitor function.
func (c *candidateSet) Add(key uint32) {
	c.rb.Add(key)
}

// IsEmpty reports whether no candidate has been added.
func (c *candidateSet) IsEmpty() bool {
	return c.rb.IsEmpty()
}

// Len returns the number of distinct candidates accumulated.
func (c *candidateSet) Len() int {
	return int(c.rb.GetCardinality())
}

// Iterator yields every candidate key exactly once, in ascending order.
func (c *candidateSet) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := c.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

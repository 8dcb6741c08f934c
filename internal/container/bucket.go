package container

// Bucket is an append-only linked list of fixed-capacity pages holding
// uint32 values (the multi-index stores caller keys in them). It is the
// per-bucket storage unit of the multi-index's
// bucket directory: one Bucket exists per (word position, word value)
// pair, and most buckets stay empty for the lifetime of an index, so an
// empty Bucket must not allocate any page.
//
// Bucket performs no internal synchronization; it is built for a
// single-writer, non-reentrant caller.
type Bucket struct {
	pageCap    uint32
	count      uint32
	first, last *bucketPage
}

type bucketPage struct {
	next  *bucketPage
	slots []uint32
	used  uint32
}

// NewBucket creates an empty Bucket whose pages hold pageCap items each.
// pageCap must be positive. No page is allocated until the first Push.
func NewBucket(pageCap uint32) Bucket {
	return Bucket{pageCap: pageCap}
}

// Push appends a value to the bucket, allocating a new page if the last
// page is full or no page exists yet.
func (b *Bucket) Push(v uint32) {
	if b.last == nil || b.last.used == b.pageCap {
		p := &bucketPage{slots: make([]uint32, b.pageCap)}
		if b.last == nil {
			b.first = p
		} else {
			b.last.next = p
		}
		b.last = p
	}
	b.last.slots[b.last.used] = v
	b.last.used++
	b.count++
}

// ForEach calls fn with every value in the bucket, in insertion order.
func (b *Bucket) ForEach(fn func(uint32)) {
	for p := b.first; p != nil; p = p.next {
		for i := uint32(0); i < p.used; i++ {
			fn(p.slots[i])
		}
	}
}

// CollectInto appends every value in the bucket to out, in insertion
// order.
func (b *Bucket) CollectInto(out *[]uint32) {
	b.ForEach(func(v uint32) {
		*out = append(*out, v)
	})
}

// Size returns the number of values pushed into the bucket.
func (b *Bucket) Size() uint32 {
	return b.count
}

// Clear drops all pages and resets the bucket to empty.
func (b *Bucket) Clear() {
	b.first = nil
	b.last = nil
	b.count = 0
}

// AllocatedSize returns the approximate number of bytes held across all
// pages of this bucket, not counting the bucket header itself.
func (b *Bucket) AllocatedSize() int {
	pages := 0
	for p := b.first; p != nil; p = p.next {
		pages++
	}
	return pages * int(b.pageCap) * 4
}

package container

// ByteStore is a directory of fixed-capacity pages holding fixed-size
// byte records, addressed by a stable ordinal assigned on Push. Pages
// are never reallocated once allocated, so a slice returned by Get
// stays valid for the lifetime of the ByteStore and aliases the
// underlying page — callers must not retain it past a Clear.
//
// ByteStore performs no internal synchronization; it is built for a
// single-writer, non-reentrant caller.
type ByteStore struct {
	recordSize int
	pageCap    int
	pages      [][]byte
	count      uint32
}

// NewByteStore creates a ByteStore whose records are recordSize bytes
// long and whose pages hold pageCap records each. Both must be
// positive.
func NewByteStore(recordSize, pageCap int) *ByteStore {
	return &ByteStore{recordSize: recordSize, pageCap: pageCap}
}

// Push copies record into the store and returns the ordinal it was
// stored at. record must be exactly recordSize bytes.
func (s *ByteStore) Push(record []byte) uint32 {
	if len(record) != s.recordSize {
		panic("container: ByteStore.Push record size mismatch")
	}

	pageIdx := int(s.count) / s.pageCap
	slot := int(s.count) % s.pageCap

	if pageIdx == len(s.pages) {
		s.pages = append(s.pages, make([]byte, s.pageCap*s.recordSize))
	}

	off := slot * s.recordSize
	copy(s.pages[pageIdx][off:off+s.recordSize], record)

	ordinal := s.count
	s.count++
	return ordinal
}

// Get returns the record stored at ordinal as a slice aliasing the
// underlying page. Get panics if ordinal is out of range.
func (s *ByteStore) Get(ordinal uint32) []byte {
	if ordinal >= s.count {
		panic("container: ByteStore.Get out of range")
	}
	pageIdx := int(ordinal) / s.pageCap
	slot := int(ordinal) % s.pageCap
	off := slot * s.recordSize
	return s.pages[pageIdx][off : off+s.recordSize]
}

// Size returns the number of records pushed.
func (s *ByteStore) Size() uint32 {
	return s.count
}

// Clear drops all pages and resets the ordinal counter to zero.
func (s *ByteStore) Clear() {
	s.pages = nil
	s.count = 0
}

// AllocatedSize returns the number of bytes held across all allocated
// pages, not counting the directory itself.
func (s *ByteStore) AllocatedSize() int {
	return len(s.pages) * s.pageCap * s.recordSize
}

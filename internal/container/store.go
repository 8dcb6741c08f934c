package container

// Store is a directory of fixed-capacity pages holding records of type
// T, addressed by a stable ordinal assigned on Push. Pages are never
// reallocated once allocated, so a pointer returned by Get stays valid
// for the lifetime of the Store.
//
// Store is append-only and performs no internal synchronization; it is
// built for a single-writer, non-reentrant caller.
type Store[T any] struct {
	pageCap int
	pages   []*storePage[T]
	count   uint32
}

type storePage[T any] struct {
	items []T
}

// NewStore creates a Store whose pages hold pageCap records each.
// pageCap must be positive.
func NewStore[T any](pageCap int) *Store[T] {
	return &Store[T]{pageCap: pageCap}
}

// Push appends a record and returns the ordinal it was stored at.
func (s *Store[T]) Push(record T) uint32 {
	pageIdx := int(s.count) / s.pageCap
	slot := int(s.count) % s.pageCap

	if pageIdx == len(s.pages) {
		s.pages = append(s.pages, &storePage[T]{items: make([]T, s.pageCap)})
	}

	s.pages[pageIdx].items[slot] = record
	ordinal := s.count
	s.count++
	return ordinal
}

// Get returns a pointer to the record at ordinal. The pointer remains
// valid until Clear is called. Get panics if ordinal is out of range,
// the same contract as indexing a slice.
func (s *Store[T]) Get(ordinal uint32) *T {
	if ordinal >= s.count {
		panic("container: Store.Get out of range")
	}
	pageIdx := int(ordinal) / s.pageCap
	slot := int(ordinal) % s.pageCap
	return &s.pages[pageIdx].items[slot]
}

// Size returns the number of records pushed.
func (s *Store[T]) Size() uint32 {
	return s.count
}

// Clear drops all pages and resets the ordinal counter to zero.
func (s *Store[T]) Clear() {
	s.pages = nil
	s.count = 0
}

// AllocatedSize returns the approximate number of bytes held across all
// allocated pages, not counting the directory itself.
func (s *Store[T]) AllocatedSize() int {
	var zero T
	recordSize := sizeOf(zero)
	return len(s.pages) * s.pageCap * recordSize
}

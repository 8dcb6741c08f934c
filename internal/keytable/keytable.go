// Package keytable implements a separate-chaining hash table mapping a
// caller-supplied key to its insertion ordinal.
package keytable

import (
	"fmt"

	"github.com/binaryindex/hammingindex/internal/container"
)

const sentinel = ^uint32(0)

type chainRecord struct {
	key  uint32
	next uint32
}

// DuplicateKeyError is returned by Insert when key is already present.
// The MultiIndex boundary translates this into its own duplicate-key
// error type.
type DuplicateKeyError struct {
	Key uint32
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("keytable: key %d already present", e.Key)
}

// ChainedKeyTable maps a uint32 key to the ordinal it was inserted at.
// It performs no internal synchronization; it is built for a
// single-writer, non-reentrant caller.
type ChainedKeyTable struct {
	heads    []uint32
	chain    *container.Store[chainRecord]
	hashSize uint32
}

// New creates an empty ChainedKeyTable with hashSize hash slots, each
// chain page holding pageCap records. hashSize and pageCap must be
// positive.
func New(hashSize, pageCap int) *ChainedKeyTable {
	heads := make([]uint32, hashSize)
	for i := range heads {
		heads[i] = sentinel
	}
	return &ChainedKeyTable{
		heads:    heads,
		chain:    container.NewStore[chainRecord](pageCap),
		hashSize: uint32(hashSize),
	}
}

func (t *ChainedKeyTable) hash(key uint32) uint32 {
	return key % t.hashSize
}

// Has reports whether key is present.
func (t *ChainedKeyTable) Has(key uint32) bool {
	return t.indexOf(key) != sentinel
}

// Lookup returns the ordinal key was inserted at, or false if key is
// not present.
func (t *ChainedKeyTable) Lookup(key uint32) (uint32, bool) {
	idx := t.indexOf(key)
	if idx == sentinel {
		return 0, false
	}
	return idx, true
}

func (t *ChainedKeyTable) indexOf(key uint32) uint32 {
	idx := t.heads[t.hash(key)]
	for idx != sentinel {
		rec := t.chain.Get(idx)
		if rec.key == key {
			return idx
		}
		idx = rec.next
	}
	return sentinel
}

// Insert adds key, returning the ordinal assigned to it. It returns a
// *DuplicateKeyError if key is already present, leaving the table
// unchanged.
func (t *ChainedKeyTable) Insert(key uint32) (uint32, error) {
	h := t.hash(key)
	if t.indexOf(key) != sentinel {
		return 0, &DuplicateKeyError{Key: key}
	}

	ordinal := t.chain.Push(chainRecord{key: key, next: t.heads[h]})
	t.heads[h] = ordinal
	return ordinal, nil
}

// KeyAt returns the key stored at ordinal. KeyAt panics if ordinal is
// out of range.
func (t *ChainedKeyTable) KeyAt(ordinal uint32) uint32 {
	return t.chain.Get(ordinal).key
}

// Size returns the number of keys inserted.
func (t *ChainedKeyTable) Size() uint32 {
	return t.chain.Size()
}

// Clear removes every key and resets ordinal assignment to zero.
func (t *ChainedKeyTable) Clear() {
	for i := range t.heads {
		t.heads[i] = sentinel
	}
	t.chain.Clear()
}

// AllocatedSize returns the approximate number of bytes held by the
// hash directory and the chain store, not counting the ChainedKeyTable
// header itself.
func (t *ChainedKeyTable) AllocatedSize() int {
	return len(t.heads)*4 + t.chain.AllocatedSize()
}

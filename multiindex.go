package hammingindex

import (
	"time"
	"unsafe"

	"github.com/binaryindex/hammingindex/distance"
	"github.com/binaryindex/hammingindex/internal/container"
	"github.com/binaryindex/hammingindex/internal/keytable"
)

const wordsPerBucketDirectory = 1 << 16

// Result is a single range-query match: the caller's key and its
// normalized Hamming distance to the query, in [0, 1].
type Result struct {
	Key      uint32
	Distance float32
}

// MultiIndex is a fixed-length binary-vector index supporting range
// queries under Hamming distance.
//
// MultiIndex performs no internal synchronization; callers must not
// invoke its methods concurrently, including concurrently with reads.
type MultiIndex struct {
	itemBytes       int
	numWords        int
	bruteForceBound float32

	buckets []container.Bucket
	keys    *keytable.ChainedKeyTable
	items   *container.ByteStore
	masks   []maskEntry

	logger  *Logger
	metrics MetricsCollector
}

// New constructs a MultiIndex for items of itemBytes bytes, which must
// be a positive multiple of 8. It returns *ErrBadAlignment,
// *ErrPopcountUnsupported, or *ErrBadParameter on construction failure;
// a returned MultiIndex is always usable.
func New(itemBytes int, optFns ...Option) (*MultiIndex, error) {
	if itemBytes <= 0 || itemBytes%8 != 0 {
		return nil, &ErrBadAlignment{ItemBytes: itemBytes}
	}
	if !distance.SelfTest() {
		return nil, &ErrPopcountUnsupported{}
	}

	opts := applyOptions(optFns)
	if opts.bucketPageSize == 0 {
		return nil, &ErrBadParameter{Name: "bucket_page_size", Value: opts.bucketPageSize}
	}
	if opts.hashTableSize == 0 {
		return nil, &ErrBadParameter{Name: "hash_table_size", Value: opts.hashTableSize}
	}
	if opts.blobPageSize == 0 {
		return nil, &ErrBadParameter{Name: "blob_page_size", Value: opts.blobPageSize}
	}
	if opts.bruteForceBound < 0 || opts.bruteForceBound > 1 {
		return nil, &ErrBadParameter{Name: "brute_force_bound", Value: opts.bruteForceBound}
	}

	numWords := itemBytes / 2
	buckets := make([]container.Bucket, numWords*wordsPerBucketDirectory)
	for i := range buckets {
		buckets[i] = container.NewBucket(opts.bucketPageSize)
	}

	return &MultiIndex{
		itemBytes:       itemBytes,
		numWords:        numWords,
		bruteForceBound: opts.bruteForceBound,
		buckets:         buckets,
		keys:            keytable.New(int(opts.hashTableSize), int(opts.blobPageSize)),
		items:           container.NewByteStore(itemBytes, int(opts.blobPageSize)),
		masks:           buildMaskTable(),
		logger:          opts.logger,
		metrics:         opts.metricsCollector,
	}, nil
}

// Size returns the number of items currently indexed.
func (m *MultiIndex) Size() uint32 {
	return m.items.Size()
}

// ItemBytes returns L, the fixed item length in bytes.
func (m *MultiIndex) ItemBytes() int {
	return m.itemBytes
}

// AddItem inserts v under key. It returns *ErrDuplicateKey if key is
// already present, leaving the index unchanged, or *ErrBadParameter if
// v's length does not match the index's item length.
func (m *MultiIndex) AddItem(key uint32, v []byte) error {
	start := time.Now()
	err := m.addItem(key, v)
	m.metrics.RecordAdd(time.Since(start), err)
	m.logger.LogAdd(key, err)
	return err
}

func (m *MultiIndex) addItem(key uint32, v []byte) error {
	if len(v) != m.itemBytes {
		return &ErrBadParameter{Name: "item_length", Value: len(v)}
	}

	// The key table insert is the only step that can fail (duplicate
	// key), so it runs first: if it fails, nothing else has been
	// touched and the index is left exactly as it was.
	ordinal, err := m.keys.Insert(key)
	if err != nil {
		return translateKeyTableError(err)
	}

	for i := 0; i < m.numWords; i++ {
		w := wordAt(v, i)
		m.buckets[bucketIndex(i, w)].Push(key)
	}

	pushed := m.items.Push(v)
	if pushed != ordinal {
		panic("hammingindex: key table and blob store ordinals diverged")
	}
	return nil
}

// AddMany inserts each item in items under the corresponding key in
// keys. A duplicate key is swallowed and does not stop the batch — it
// is simply not counted in added, and every other item is still
// inserted. A non-duplicate error (a bad item length) aborts the batch
// immediately and is returned alongside the count added so far.
func (m *MultiIndex) AddMany(keys []uint32, items [][]byte) (added int, err error) {
	start := time.Now()
	if len(keys) != len(items) {
		err = &ErrBadParameter{Name: "items", Value: len(items)}
		m.metrics.RecordBatchAdd(len(keys), 0, time.Since(start))
		m.logger.LogBatchAdd(len(keys), 0, time.Since(start))
		return 0, err
	}

	for i, k := range keys {
		e := m.addItem(k, items[i])
		if e == nil {
			added++
			continue
		}
		if _, isDup := e.(*ErrDuplicateKey); isDup {
			continue
		}
		err = e
		break
	}

	m.metrics.RecordBatchAdd(len(keys), added, time.Since(start))
	m.logger.LogBatchAdd(len(keys), added, time.Since(start))
	return added, err
}

// Clear removes every item from the index, releasing all page memory.
// Ordinals assigned after Clear start again from 0.
func (m *MultiIndex) Clear() {
	cleared := int(m.items.Size())
	for i := range m.buckets {
		m.buckets[i].Clear()
	}
	m.keys.Clear()
	m.items.Clear()
	m.metrics.RecordClear()
	m.logger.LogClear(cleared)
}

// AllocatedSize returns the approximate number of bytes the index
// currently holds: the fixed bucket directory, every allocated bucket
// page, the key table, the item blob store, and the mask table.
func (m *MultiIndex) AllocatedSize() int {
	total := len(m.buckets) * int(unsafe.Sizeof(container.Bucket{}))
	for i := range m.buckets {
		total += m.buckets[i].AllocatedSize()
	}
	total += m.keys.AllocatedSize()
	total += m.items.AllocatedSize()
	total += len(m.masks) * 4
	return total
}

func wordAt(v []byte, i int) uint16 {
	return uint16(v[2*i]) | uint16(v[2*i+1])<<8
}

func bucketIndex(wordPos int, wordValue uint16) int {
	return wordPos*wordsPerBucketDirectory + int(wordValue)
}

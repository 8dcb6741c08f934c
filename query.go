package hammingindex

import (
	"sort"
	"time"

	"github.com/binaryindex/hammingindex/distance"
)

// RangeQueryBruteForce appends to out every indexed item whose
// normalized Hamming distance to q is at most r, sorted by ascending
// distance. out is cleared first. It returns *ErrBadRange if r is
// outside [0, 1], leaving out empty.
func (m *MultiIndex) RangeQueryBruteForce(q []byte, r float32, out *[]Result) error {
	start := time.Now()
	err := m.rangeQueryBruteForce(q, r, out)
	n := int(m.items.Size())
	m.metrics.RecordQuery("bruteforce", n, len(*out), time.Since(start), err)
	m.logger.LogQuery("bruteforce", r, n, len(*out), time.Since(start), err)
	return err
}

func (m *MultiIndex) rangeQueryBruteForce(q []byte, r float32, out *[]Result) error {
	*out = (*out)[:0]
	if len(q) != m.itemBytes {
		return &ErrBadParameter{Name: "query_length", Value: len(q)}
	}
	if r < 0 || r > 1 {
		return &ErrBadRange{Range: r}
	}

	totalBits := m.itemBytes * 8
	n := m.items.Size()
	for ordinal := uint32(0); ordinal < n; ordinal++ {
		d := distance.Normalize(distance.PopcountXOR(q, m.items.Get(ordinal)), totalBits)
		if d <= r {
			*out = append(*out, Result{Key: m.keys.KeyAt(ordinal), Distance: d})
		}
	}
	sort.SliceStable(*out, func(i, j int) bool { return (*out)[i].Distance < (*out)[j].Distance })
	return nil
}

// RangeQueryOptimized appends to out every indexed item whose
// normalized Hamming distance to q is at most r, sorted by ascending
// distance. out is cleared first.
//
// For r above the index's brute-force bound, it delegates to
// RangeQueryBruteForce: above that radius the candidate set approaches
// the whole corpus, so the linear scan is faster. Otherwise it
// enumerates candidates via bit-flip masks on each word and evaluates
// only those. The candidate set is a superset of the true answer by
// pigeonhole: an item within r·8·L differing bits of q has at least one
// 16-bit word differing from q's word by at most floor(r·16) bits, and
// every mask up to that popcount is probed for every word. Ties are broken by ascending key, which can differ from
// RangeQueryBruteForce's ordinal-ordered ties at equal distance.
func (m *MultiIndex) RangeQueryOptimized(q []byte, r float32, out *[]Result) error {
	start := time.Now()
	candidates, err := m.rangeQueryOptimized(q, r, out)
	m.metrics.RecordQuery("optimized", candidates, len(*out), time.Since(start), err)
	m.logger.LogQuery("optimized", r, candidates, len(*out), time.Since(start), err)
	return err
}

func (m *MultiIndex) rangeQueryOptimized(q []byte, r float32, out *[]Result) (candidateCount int, err error) {
	if len(q) != m.itemBytes {
		*out = (*out)[:0]
		return 0, &ErrBadParameter{Name: "query_length", Value: len(q)}
	}

	if r > m.bruteForceBound {
		if err := m.rangeQueryBruteForce(q, r, out); err != nil {
			return 0, err
		}
		return int(m.items.Size()), nil
	}

	*out = (*out)[:0]
	if r < 0 || r > 1 {
		return 0, &ErrBadRange{Range: r}
	}

	budget := uint8(r * 16) // floor(r*16): truncation toward zero is floor for r >= 0.

	candidates := newCandidateSet()
	for i := 0; i < m.numWords; i++ {
		qWord := wordAt(q, i)
		for _, me := range m.masks {
			if me.popcount > budget {
				break
			}
			maskedWord := qWord ^ me.mask
			m.buckets[bucketIndex(i, maskedWord)].ForEach(candidates.Add)
		}
	}

	if candidates.IsEmpty() {
		return 0, nil
	}

	totalBits := m.itemBytes * 8
	for key := range candidates.Iterator() {
		ordinal, ok := m.keys.Lookup(key)
		if !ok {
			panic("hammingindex: candidate key missing from key table")
		}
		d := distance.Normalize(distance.PopcountXOR(q, m.items.Get(ordinal)), totalBits)
		if d <= r {
			*out = append(*out, Result{Key: key, Distance: d})
		}
	}
	sort.SliceStable(*out, func(i, j int) bool { return (*out)[i].Distance < (*out)[j].Distance })
	return candidates.Len(), nil
}

package hammingindex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binaryindex/hammingindex"
	"github.com/binaryindex/hammingindex/testutil"
)

const itemBytes = 32 // 256-bit vectors

func buildIndex(t *testing.T, n int, seed int64, optFns ...hammingindex.Option) (*hammingindex.MultiIndex, []uint32, [][]byte) {
	t.Helper()

	idx, err := hammingindex.New(itemBytes, optFns...)
	require.NoError(t, err)

	rng := testutil.NewRNG(seed)
	keys := rng.UniqueKeys(n)
	items := rng.RandomVectors(n, itemBytes)

	for i := range keys {
		require.NoError(t, idx.AddItem(keys[i], items[i]))
	}

	return idx, keys, items
}

func TestRangeQueryBruteForceRejectsWrongQueryLength(t *testing.T) {
	idx, _, _ := buildIndex(t, 4, 1)

	var out []hammingindex.Result
	err := idx.RangeQueryBruteForce([]byte{0, 1}, 0.1, &out)

	var badParam *hammingindex.ErrBadParameter
	assert.True(t, errors.As(err, &badParam))
}

func TestRangeQueryBruteForceRejectsOutOfRangeRadius(t *testing.T) {
	idx, _, _ := buildIndex(t, 4, 1)

	var out []hammingindex.Result
	err := idx.RangeQueryBruteForce(make([]byte, itemBytes), 1.5, &out)

	var badRange *hammingindex.ErrBadRange
	assert.True(t, errors.As(err, &badRange))
}

func TestRangeQueryFindsExactQueryAtZeroRadius(t *testing.T) {
	idx, keys, items := buildIndex(t, 16, 2)

	var out []hammingindex.Result
	require.NoError(t, idx.RangeQueryBruteForce(items[0], 0, &out))

	require.Len(t, out, 1)
	assert.Equal(t, keys[0], out[0].Key)
	assert.Equal(t, float32(0), out[0].Distance)
}

func TestRangeQueryOptimizedFindsExactQueryAtZeroRadius(t *testing.T) {
	idx, keys, items := buildIndex(t, 16, 2)

	var out []hammingindex.Result
	require.NoError(t, idx.RangeQueryOptimized(items[0], 0, &out))

	require.Len(t, out, 1)
	assert.Equal(t, keys[0], out[0].Key)
}

func TestRangeQueryResultsAreSortedByAscendingDistance(t *testing.T) {
	idx, _, items := buildIndex(t, 200, 3)

	var out []hammingindex.Result
	require.NoError(t, idx.RangeQueryBruteForce(items[0], 0.3, &out))

	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].Distance, out[i].Distance)
	}
}

func TestRangeQueryDistancesAreNormalizedToUnitInterval(t *testing.T) {
	idx, _, items := buildIndex(t, 200, 4)

	var out []hammingindex.Result
	require.NoError(t, idx.RangeQueryBruteForce(items[0], 1.0, &out))

	for _, r := range out {
		assert.GreaterOrEqual(t, r.Distance, float32(0))
		assert.LessOrEqual(t, r.Distance, float32(1))
	}
}

func TestRangeQueryBruteForceMatchesIndependentGroundTruth(t *testing.T) {
	idx, keys, items := buildIndex(t, 300, 5)

	rng := testutil.NewRNG(6)
	query := rng.RandomVector(itemBytes)

	var out []hammingindex.Result
	require.NoError(t, idx.RangeQueryBruteForce(query, 0.4, &out))

	want := testutil.BruteForceRange(keys, items, query, 0.4)

	assert.Equal(t, len(want), len(out))
	assert.Equal(t, keySetOf(want), keySetOfResults(out))
}

func TestRangeQueryOptimizedMatchesBruteForceBelowBound(t *testing.T) {
	idx, _, items := buildIndex(t, 500, 7, hammingindex.WithBruteForceBound(0.25))

	for i := 0; i < 5; i++ {
		query := items[i*50]

		var bruteForce, optimized []hammingindex.Result
		require.NoError(t, idx.RangeQueryBruteForce(query, 0.15, &bruteForce))
		require.NoError(t, idx.RangeQueryOptimized(query, 0.15, &optimized))

		assert.Equal(t, keySetOfResults(bruteForce), keySetOfResults(optimized))
	}
}

func TestRangeQueryOptimizedDelegatesToBruteForceAboveBound(t *testing.T) {
	idx, _, items := buildIndex(t, 200, 8, hammingindex.WithBruteForceBound(0.1))
	query := items[0]

	var bruteForce, optimized []hammingindex.Result
	require.NoError(t, idx.RangeQueryBruteForce(query, 0.5, &bruteForce))
	require.NoError(t, idx.RangeQueryOptimized(query, 0.5, &optimized))

	assert.Equal(t, keySetOfResults(bruteForce), keySetOfResults(optimized))
}

func TestRangeQueryOptimizedRejectsOutOfRangeRadius(t *testing.T) {
	idx, _, _ := buildIndex(t, 4, 9)

	var out []hammingindex.Result
	err := idx.RangeQueryOptimized(make([]byte, itemBytes), -0.1, &out)

	var badRange *hammingindex.ErrBadRange
	assert.True(t, errors.As(err, &badRange))
}

func TestRangeQueryOptimizedFindsKnownNearNeighborViaBitFlip(t *testing.T) {
	idx, err := hammingindex.New(itemBytes, hammingindex.WithBruteForceBound(0.2))
	require.NoError(t, err)

	rng := testutil.NewRNG(10)
	base := rng.RandomVector(itemBytes)
	near := rng.FlipBits(base, 3) // distance 3/256

	require.NoError(t, idx.AddItem(1, near))
	for i := 0; i < 500; i++ {
		require.NoError(t, idx.AddItem(uint32(i+2), rng.RandomVector(itemBytes)))
	}

	var out []hammingindex.Result
	require.NoError(t, idx.RangeQueryOptimized(base, 0.02, &out)) // 0.02*256 ≈ 5 bits

	found := false
	for _, r := range out {
		if r.Key == 1 {
			found = true
		}
	}
	assert.True(t, found, "expected bit-flip candidate enumeration to surface the known near neighbor")
}

func TestClearEmptiesQueryResults(t *testing.T) {
	idx, _, items := buildIndex(t, 8, 11)

	idx.Clear()

	var out []hammingindex.Result
	require.NoError(t, idx.RangeQueryBruteForce(items[0], 1.0, &out))
	assert.Empty(t, out)
}

func keySetOf(results []testutil.SearchResult) map[uint32]struct{} {
	return testutil.KeySet(results)
}

func keySetOfResults(results []hammingindex.Result) map[uint32]struct{} {
	set := make(map[uint32]struct{}, len(results))
	for _, r := range results {
		set[r.Key] = struct{}{}
	}
	return set
}

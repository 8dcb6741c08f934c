// Package testutil provides testing utilities for hammingindex.
//
// This package is intended for use in tests and benchmarks only. It
// provides helpers for generating random byte vectors and keys, and an
// independent brute-force ground-truth oracle for range queries.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	vec := rng.RandomVector(32)         // 32-byte (256-bit) vector
//	near := rng.FlipBits(vec, 4)        // a vector at distance 4/256 from vec
//
// # Ground Truth
//
//	matches := testutil.BruteForceRange(keys, items, query, 0.1)
package testutil

// Package hammingindex implements an in-memory spatial index for
// fixed-length binary vectors under Hamming distance. It answers range
// queries: given a query vector and a radius, return every indexed
// vector within that normalized Hamming distance, paired with its
// caller-supplied key, sorted by ascending distance.
//
// # Quick Start
//
//	idx, err := hammingindex.New(32) // 32-byte (256-bit) vectors
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := idx.AddItem(1, vector); err != nil {
//	    log.Fatal(err)
//	}
//	var results []hammingindex.Result
//	if err := idx.RangeQueryOptimized(query, 0.1, &results); err != nil {
//	    log.Fatal(err)
//	}
//
// # Scope
//
// The index is single-writer and non-reentrant: it performs no internal
// synchronization, and callers that share an instance across goroutines
// must serialize every call themselves. It supports insertion and range
// queries only — no deletion, no in-place mutation, no approximate or
// k-NN search.
package hammingindex

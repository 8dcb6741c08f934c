// Package container implements the paged, append-only storage primitives
// that back the Hamming multi-index: a per-bucket linked list of pages
// and a directory-of-pages store for fixed-size records. Neither type
// synchronizes internally; callers must not access a container
// concurrently with a mutation of it.
package container

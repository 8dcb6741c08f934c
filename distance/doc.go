// Package distance computes Hamming distance between fixed-length byte
// vectors, backed by a hardware popcount where the platform has one and
// a portable software fallback otherwise.
//
// # Supported operation
//
//   - PopcountXOR: number of differing bits between two equal-length
//     byte slices.
//   - Normalize: converts a raw bit count into a distance in [0, 1]
//     relative to the vector's total bit length.
//
// # Backend selection
//
//	SelfTest verifies the hardware and software backends agree before a
//	caller trusts PopcountXOR's result.
package distance

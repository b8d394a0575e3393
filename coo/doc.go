// Package coo implements the compacted coordinate (triplet) sparse
// structure: parallel row-index, column-index and value arrays in
// canonical row-major, column-ascending order, plus a zero-copy
// permutation-based transpose view and the matrix-vector kernels that
// traverse both.
//
// A Structure is immutable once built. Dimensions are inferred from the
// data as 1 + the maximum observed index, which means trailing all-empty
// rows or columns beyond that maximum are never represented; this is an
// inherent property of index inference, not a defect. Callers that need
// explicit trailing dimensions can construct through NewStructure.
package coo

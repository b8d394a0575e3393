package coo

import "github.com/hupe1980/coomat/numeric"

// TransposeView is a read-only, permutation-based reindexing of a
// Structure in column-major, row-ascending order. It never owns
// storage: entry k of the view is entry perm[k] of the base structure
// with row and column swapped. A view is invalidated by every commit
// and must be rebuilt from the replacing structure.
type TransposeView[T numeric.Value] struct {
	base *Structure[T]
	perm []uint32
}

// Transpose builds the transpose permutation: a counting sort of entry
// positions keyed by column index over [0, numCols), O(n + numCols).
// The base structure is row-major with ascending columns, so the
// position order within each column bucket is row-ascending by
// construction.
func (s *Structure[T]) Transpose() *TransposeView[T] {
	n := len(s.values)
	perm := make([]uint32, n)

	counts := make([]int, s.numCols+1)
	for _, c := range s.cols {
		counts[c+1]++
	}
	for j := 1; j <= s.numCols; j++ {
		counts[j] += counts[j-1]
	}
	for k, c := range s.cols {
		perm[counts[c]] = uint32(k)
		counts[c]++
	}

	return &TransposeView[T]{base: s, perm: perm}
}

// NumRows returns the number of rows of the transposed matrix.
func (t *TransposeView[T]) NumRows() int { return t.base.numCols }

// NumCols returns the number of columns of the transposed matrix.
func (t *TransposeView[T]) NumCols() int { return t.base.numRows }

// NumEntries returns the number of stored entries.
func (t *TransposeView[T]) NumEntries() int { return len(t.perm) }

// Permutation returns the backing permutation array. Read-only.
func (t *TransposeView[T]) Permutation() []uint32 { return t.perm }

// Entry returns the k-th entry of the transposed matrix in its
// canonical (column-major over the base) order.
func (t *TransposeView[T]) Entry(k int) (row, col uint32, v T) {
	p := t.perm[k]
	return t.base.cols[p], t.base.rows[p], t.base.values[p]
}

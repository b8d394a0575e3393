package coo

import (
	"cmp"
	"slices"

	"github.com/hupe1980/coomat/numeric"
)

type triplet[T numeric.Value] struct {
	row, col uint32
	val      T
}

// Build compacts raw triplets into a canonical structure. Entries whose
// value equals the additive identity are dropped. Callers supply at most
// one value per coordinate (the entry map guarantees uniqueness);
// duplicates are not merged here.
//
// Ordering uses two stable sort passes, first by column and then by
// row. Stability of the second pass preserves the column order within
// equal rows, yielding row-major, column-ascending order from two
// O(n log n) passes instead of one composite-key sort.
//
// Dimensions are inferred as 1 + the maximum observed index. The empty
// result is special-cased to a zero-sized structure so no maximum is
// ever taken over an empty sequence.
func Build[T numeric.Value](rows, cols []uint32, values []T) *Structure[T] {
	var zero T
	ts := make([]triplet[T], 0, len(values))
	for k := range values {
		if values[k] == zero {
			continue
		}
		ts = append(ts, triplet[T]{row: rows[k], col: cols[k], val: values[k]})
	}

	if len(ts) == 0 {
		return Empty[T]()
	}

	slices.SortStableFunc(ts, func(a, b triplet[T]) int { return cmp.Compare(a.col, b.col) })
	slices.SortStableFunc(ts, func(a, b triplet[T]) int { return cmp.Compare(a.row, b.row) })

	s := &Structure[T]{
		rows:   make([]uint32, len(ts)),
		cols:   make([]uint32, len(ts)),
		values: make([]T, len(ts)),
	}

	var maxCol uint32
	for k, t := range ts {
		s.rows[k] = t.row
		s.cols[k] = t.col
		s.values[k] = t.val
		if t.col > maxCol {
			maxCol = t.col
		}
	}

	// Rows are sorted, so the last entry carries the maximum row index.
	s.numRows = int(ts[len(ts)-1].row) + 1
	s.numCols = int(maxCol) + 1

	return s
}

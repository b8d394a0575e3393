package coo

import (
	"fmt"

	"github.com/hupe1980/coomat/numeric"
)

// Structure is a compacted sparse matrix in coordinate form. The three
// arrays are parallel and sorted primarily by row index ascending,
// secondarily by column index ascending. No entry holds the additive
// identity.
//
// The structure exclusively owns its arrays. Accessors return the
// backing slices without copying; callers must treat them as read-only.
type Structure[T numeric.Value] struct {
	rows    []uint32
	cols    []uint32
	values  []T
	numRows int
	numCols int
}

// Empty returns the zero-entry, zero-dimension structure.
func Empty[T numeric.Value]() *Structure[T] {
	return &Structure[T]{}
}

// NewStructure adopts pre-built triplet arrays after validating the
// invariants the entry-based build path guarantees by construction:
// equal lengths, canonical strict ordering (which also excludes
// duplicates), in-bounds indices and no explicit zeros.
//
// Unlike Build, declared dimensions are taken as-is, so trailing empty
// rows/columns beyond the maximum observed index are representable
// through this path.
func NewStructure[T numeric.Value](rows, cols []uint32, values []T, numRows, numCols int) (*Structure[T], error) {
	if len(rows) != len(cols) || len(rows) != len(values) {
		return nil, fmt.Errorf("%w: %d rows, %d cols, %d values", ErrLengthMismatch, len(rows), len(cols), len(values))
	}
	if numRows < 0 || numCols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, numRows, numCols)
	}

	var zero T
	for k := range rows {
		if int(rows[k]) >= numRows || int(cols[k]) >= numCols {
			return nil, fmt.Errorf("%w: entry %d at (%d,%d) in %dx%d", ErrIndexOutOfBounds, k, rows[k], cols[k], numRows, numCols)
		}
		if values[k] == zero {
			return nil, fmt.Errorf("%w: entry %d at (%d,%d)", ErrExplicitZero, k, rows[k], cols[k])
		}
		if k > 0 && (rows[k-1] > rows[k] || (rows[k-1] == rows[k] && cols[k-1] >= cols[k])) {
			return nil, fmt.Errorf("%w: entry %d at (%d,%d) after (%d,%d)", ErrNotCanonical, k, rows[k], cols[k], rows[k-1], cols[k-1])
		}
	}

	return &Structure[T]{
		rows:    rows,
		cols:    cols,
		values:  values,
		numRows: numRows,
		numCols: numCols,
	}, nil
}

// NumRows returns the number of rows.
func (s *Structure[T]) NumRows() int { return s.numRows }

// NumCols returns the number of columns.
func (s *Structure[T]) NumCols() int { return s.numCols }

// NumEntries returns the number of stored entries.
func (s *Structure[T]) NumEntries() int { return len(s.values) }

// RowIndices returns the backing row-index array. Read-only.
func (s *Structure[T]) RowIndices() []uint32 { return s.rows }

// ColIndices returns the backing column-index array. Read-only.
func (s *Structure[T]) ColIndices() []uint32 { return s.cols }

// Values returns the backing value array. Read-only.
func (s *Structure[T]) Values() []T { return s.values }

// Entry returns the k-th entry in canonical order.
func (s *Structure[T]) Entry(k int) (row, col uint32, v T) {
	return s.rows[k], s.cols[k], s.values[k]
}

// String returns a short human-readable summary.
func (s *Structure[T]) String() string {
	return fmt.Sprintf("coo.Structure[%s](%dx%d, %d entries)", numeric.KindOf[T](), s.numRows, s.numCols, len(s.values))
}

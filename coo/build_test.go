package coo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Run("canonical ordering", func(t *testing.T) {
		// Shuffled input covering duplicate rows and columns.
		s := Build(
			[]uint32{1, 0, 1, 0},
			[]uint32{0, 1, 1, 0},
			[]float64{3, 2, 4, 1},
		)

		require.Equal(t, []uint32{0, 0, 1, 1}, s.RowIndices())
		require.Equal(t, []uint32{0, 1, 0, 1}, s.ColIndices())
		require.Equal(t, []float64{1, 2, 3, 4}, s.Values())
		require.Equal(t, 2, s.NumRows())
		require.Equal(t, 2, s.NumCols())
	})

	t.Run("explicit zeros dropped", func(t *testing.T) {
		s := Build(
			[]uint32{0, 1},
			[]uint32{0, 2},
			[]float64{5, 0},
		)

		require.Equal(t, 1, s.NumEntries())
		row, col, v := s.Entry(0)
		require.Equal(t, uint32(0), row)
		require.Equal(t, uint32(0), col)
		require.Equal(t, 5.0, v)
	})

	t.Run("empty input", func(t *testing.T) {
		s := Build[float64](nil, nil, nil)
		require.Equal(t, 0, s.NumEntries())
		require.Equal(t, 0, s.NumRows())
		require.Equal(t, 0, s.NumCols())
	})

	t.Run("all zeros collapses to empty", func(t *testing.T) {
		s := Build(
			[]uint32{0, 1},
			[]uint32{0, 1},
			[]float64{0, 0},
		)
		require.Equal(t, 0, s.NumEntries())
		require.Equal(t, 0, s.NumRows())
		require.Equal(t, 0, s.NumCols())
	})

	t.Run("dimensions from maximum index", func(t *testing.T) {
		s := Build(
			[]uint32{7},
			[]uint32{3},
			[]float64{1},
		)
		require.Equal(t, 8, s.NumRows())
		require.Equal(t, 4, s.NumCols())
	})

	t.Run("deterministic", func(t *testing.T) {
		rows := []uint32{2, 0, 1, 2, 0}
		cols := []uint32{1, 2, 0, 0, 1}
		values := []float64{1, 2, 3, 4, 5}

		a := Build(rows, cols, values)
		b := Build(rows, cols, values)

		require.Equal(t, a.RowIndices(), b.RowIndices())
		require.Equal(t, a.ColIndices(), b.ColIndices())
		require.Equal(t, a.Values(), b.Values())
	})
}

func TestNewStructure(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := NewStructure(
			[]uint32{0, 1},
			[]uint32{1, 0},
			[]float64{2, 3},
			4, 4,
		)
		require.NoError(t, err)
		require.Equal(t, 4, s.NumRows())
		require.Equal(t, 4, s.NumCols())
		require.Equal(t, 2, s.NumEntries())
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := NewStructure([]uint32{0}, []uint32{0, 1}, []float64{1}, 2, 2)
		require.ErrorIs(t, err, ErrLengthMismatch)
	})

	t.Run("negative shape", func(t *testing.T) {
		_, err := NewStructure[float64](nil, nil, nil, -1, 0)
		require.ErrorIs(t, err, ErrBadShape)
	})

	t.Run("index out of bounds", func(t *testing.T) {
		_, err := NewStructure([]uint32{2}, []uint32{0}, []float64{1}, 2, 2)
		require.ErrorIs(t, err, ErrIndexOutOfBounds)
	})

	t.Run("explicit zero rejected", func(t *testing.T) {
		_, err := NewStructure([]uint32{0}, []uint32{0}, []float64{0}, 1, 1)
		require.ErrorIs(t, err, ErrExplicitZero)
	})

	t.Run("unsorted rejected", func(t *testing.T) {
		_, err := NewStructure(
			[]uint32{1, 0},
			[]uint32{0, 0},
			[]float64{1, 2},
			2, 2,
		)
		require.ErrorIs(t, err, ErrNotCanonical)
	})

	t.Run("duplicate coordinate rejected", func(t *testing.T) {
		_, err := NewStructure(
			[]uint32{0, 0},
			[]uint32{1, 1},
			[]float64{1, 2},
			2, 2,
		)
		require.ErrorIs(t, err, ErrNotCanonical)
	})
}

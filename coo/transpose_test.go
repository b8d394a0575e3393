package coo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranspose(t *testing.T) {
	// A = [[1, 2], [3, 4]] in canonical order.
	s := Build(
		[]uint32{0, 0, 1, 1},
		[]uint32{0, 1, 0, 1},
		[]float64{1, 2, 3, 4},
	)

	view := s.Transpose()

	require.Equal(t, 2, view.NumRows())
	require.Equal(t, 2, view.NumCols())
	require.Equal(t, 4, view.NumEntries())

	// Column-major over the base: (0,0), (1,0), (0,1), (1,1).
	require.Equal(t, []uint32{0, 2, 1, 3}, view.Permutation())

	row, col, v := view.Entry(1)
	require.Equal(t, uint32(0), row)
	require.Equal(t, uint32(1), col)
	require.Equal(t, 3.0, v)
}

func TestTransposeRectangular(t *testing.T) {
	// 1x3 row vector transposes to a 3x1 column vector.
	s := Build(
		[]uint32{0, 0, 0},
		[]uint32{0, 1, 2},
		[]float64{1, 2, 3},
	)

	view := s.Transpose()
	require.Equal(t, 3, view.NumRows())
	require.Equal(t, 1, view.NumCols())

	for k := 0; k < 3; k++ {
		row, col, v := view.Entry(k)
		require.Equal(t, uint32(k), row)
		require.Equal(t, uint32(0), col)
		require.Equal(t, float64(k+1), v)
	}
}

func TestTransposeEmpty(t *testing.T) {
	view := Empty[float64]().Transpose()
	require.Equal(t, 0, view.NumRows())
	require.Equal(t, 0, view.NumCols())
	require.Equal(t, 0, view.NumEntries())
}

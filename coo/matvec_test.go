package coo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulVec(t *testing.T) {
	// A = [[1, 2], [3, 4]].
	s := Build(
		[]uint32{0, 0, 1, 1},
		[]uint32{0, 1, 0, 1},
		[]float64{1, 2, 3, 4},
	)

	t.Run("forward", func(t *testing.T) {
		dst := make([]float64, 2)
		s.MulVec(dst, []float64{1, 1}, false)
		require.Equal(t, []float64{3, 7}, dst)
	})

	t.Run("transpose", func(t *testing.T) {
		dst := make([]float64, 2)
		s.Transpose().MulVec(dst, []float64{1, 1}, false)
		require.Equal(t, []float64{4, 6}, dst)
	})

	t.Run("dst is overwritten", func(t *testing.T) {
		dst := []float64{99, 99}
		s.MulVec(dst, []float64{1, 0}, false)
		require.Equal(t, []float64{1, 3}, dst)
	})
}

func TestMulVecConjugate(t *testing.T) {
	// A = [[i]].
	s := Build(
		[]uint32{0},
		[]uint32{0},
		[]complex128{complex(0, 1)},
	)

	dst := make([]complex128, 1)
	s.MulVec(dst, []complex128{1}, true)
	require.Equal(t, []complex128{complex(0, -1)}, dst)

	// The stored value is untouched.
	_, _, v := s.Entry(0)
	require.Equal(t, complex(0, 1), v)

	// Conjugated transpose through the view.
	s.Transpose().MulVec(dst, []complex128{1}, true)
	require.Equal(t, []complex128{complex(0, -1)}, dst)
}

func TestMulVecEmpty(t *testing.T) {
	s := Empty[float64]()
	dst := make([]float64, 0)
	s.MulVec(dst, nil, false)
	require.Empty(t, dst)
}

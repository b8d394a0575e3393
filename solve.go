package coomat

import (
	"time"

	"github.com/hupe1980/coomat/solver"
)

// Dims returns the dimensions of the committed structure, implementing
// solver.Operator.
func (m *Matrix[T]) Dims() (rows, cols int) {
	structure, _ := m.snapshot()
	return structure.NumRows(), structure.NumCols()
}

// MulVecTo computes dst = A·x, or dst = Aᵗ·x when transpose is set,
// implementing solver.Operator. dst must not alias x.
func (m *Matrix[T]) MulVecTo(dst []T, transpose bool, x []T) error {
	return m.applyInto(dst, x, ApplyOptions{Transpose: transpose}, false)
}

// Solve solves A·x = b using the given backend.
func (m *Matrix[T]) Solve(backend solver.LinearSolver[T], b []T, opts *solver.Options) ([]T, *solver.Result, error) {
	start := time.Now()
	x, res, err := backend.Solve(m, b, opts)
	duration := time.Since(start)

	m.metrics.RecordSolve(duration, err)
	m.logger.LogSolve("solve", duration, err)
	return x, res, err
}

// SpectralRadius estimates the largest eigenvalue magnitude of the
// committed structure using the given backend.
func (m *Matrix[T]) SpectralRadius(backend solver.SpectralRadiusEstimator[T], opts *solver.Options) (float64, error) {
	start := time.Now()
	radius, err := backend.SpectralRadius(m, opts)
	duration := time.Since(start)

	m.metrics.RecordSolve(duration, err)
	m.logger.LogSolve("spectral_radius", duration, err)
	return radius, err
}

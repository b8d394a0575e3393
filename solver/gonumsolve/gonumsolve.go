// Package gonumsolve backs the solver interfaces with gonum/mat. The
// operator is materialized into a dense matrix through basis-vector
// products, so it suits moderate dimensions where a direct factorization
// is acceptable.
package gonumsolve

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/hupe1980/coomat/solver"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrEmptyOperator is returned for operators with zero rows or columns.
	ErrEmptyOperator = errors.New("gonumsolve: empty operator")

	// ErrNotSquare is returned when a square operator is required.
	ErrNotSquare = errors.New("gonumsolve: operator is not square")
)

// Dense is a direct solver and eigenvalue estimator for float64
// operators. The zero value is ready to use.
//
// Solve ignores Options.Restart, MaxIterations and Iterations; the
// underlying LU factorization is direct.
type Dense struct{}

var (
	_ solver.LinearSolver[float64]            = Dense{}
	_ solver.SpectralRadiusEstimator[float64] = Dense{}
)

// Solve solves A*x = b by dense LU factorization.
func (Dense) Solve(a solver.Operator[float64], b []float64, opts *solver.Options) ([]float64, *solver.Result, error) {
	if opts == nil {
		opts = solver.NewOptions()
	}

	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return nil, nil, ErrEmptyOperator
	}
	if rows != cols {
		return nil, nil, ErrNotSquare
	}
	if len(b) != rows {
		return nil, nil, fmt.Errorf("gonumsolve: rhs length %d, want %d", len(b), rows)
	}

	dense, err := materialize(a)
	if err != nil {
		return nil, nil, err
	}

	var x mat.VecDense
	if err := x.SolveVec(dense, mat.NewVecDense(rows, b)); err != nil {
		return nil, nil, fmt.Errorf("gonumsolve: factorization failed: %w", err)
	}

	sol := make([]float64, rows)
	copy(sol, x.RawVector().Data)

	residual, err := residualNorm(a, sol, b)
	if err != nil {
		return nil, nil, err
	}

	res := &solver.Result{ResidualNorm: residual}
	if residual > opts.Tolerance*mat.Norm(mat.NewVecDense(rows, b), 2) {
		return sol, res, solver.ErrNotConverged
	}
	return sol, res, nil
}

// SpectralRadius computes the largest eigenvalue magnitude by a full
// dense eigendecomposition.
func (Dense) SpectralRadius(a solver.Operator[float64], opts *solver.Options) (float64, error) {
	if opts == nil {
		opts = solver.NewOptions()
	}

	rows, cols := a.Dims()
	if rows == 0 || cols == 0 {
		return 0, ErrEmptyOperator
	}
	if rows != cols {
		return 0, ErrNotSquare
	}

	dense, err := materialize(a)
	if err != nil {
		return 0, err
	}

	if opts.Symmetric {
		sym := mat.NewSymDense(rows, nil)
		for i := 0; i < rows; i++ {
			for j := i; j < rows; j++ {
				sym.SetSym(i, j, dense.At(i, j))
			}
		}
		var eig mat.EigenSym
		if !eig.Factorize(sym, false) {
			return 0, errors.New("gonumsolve: symmetric eigendecomposition failed")
		}
		var radius float64
		for _, v := range eig.Values(nil) {
			if abs := math.Abs(v); abs > radius {
				radius = abs
			}
		}
		return radius, nil
	}

	var eig mat.Eigen
	if !eig.Factorize(dense, mat.EigenNone) {
		return 0, errors.New("gonumsolve: eigendecomposition failed")
	}
	var radius float64
	for _, v := range eig.Values(nil) {
		if abs := cmplx.Abs(v); abs > radius {
			radius = abs
		}
	}
	return radius, nil
}

// materialize builds a dense copy of the operator one column at a time.
func materialize(a solver.Operator[float64]) (*mat.Dense, error) {
	rows, cols := a.Dims()
	dense := mat.NewDense(rows, cols, nil)

	basis := make([]float64, cols)
	column := make([]float64, rows)
	for j := 0; j < cols; j++ {
		basis[j] = 1
		if err := a.MulVecTo(column, false, basis); err != nil {
			return nil, err
		}
		basis[j] = 0
		dense.SetCol(j, column)
	}
	return dense, nil
}

func residualNorm(a solver.Operator[float64], x, b []float64) (float64, error) {
	ax := make([]float64, len(b))
	if err := a.MulVecTo(ax, false, x); err != nil {
		return 0, err
	}
	r := mat.NewVecDense(len(b), nil)
	for i := range b {
		r.SetVec(i, b[i]-ax[i])
	}
	return mat.Norm(r, 2), nil
}

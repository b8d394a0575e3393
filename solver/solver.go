// Package solver defines the boundary between assembled operators and
// external linear-algebra backends. An operator exposes its dimensions
// and matrix-vector products; everything a backend needs beyond that is
// carried in Options.
package solver

import "errors"

// ErrNotConverged is returned when a backend stops before reaching the
// requested tolerance.
var ErrNotConverged = errors.New("solver: did not converge")

// Operator is a linear operator exposed through matrix-vector products.
// Implementations must not retain dst or x beyond the call.
type Operator[T any] interface {
	// Dims returns the number of rows and columns of the operator.
	Dims() (rows, cols int)

	// MulVecTo computes dst = A*x, or dst = Aᵀ*x when transpose is set.
	MulVecTo(dst []T, transpose bool, x []T) error
}

// LinearSolver solves A*x = b for a given operator.
type LinearSolver[T any] interface {
	Solve(a Operator[T], b []T, opts *Options) ([]T, *Result, error)
}

// SpectralRadiusEstimator estimates the largest eigenvalue magnitude
// of a square operator.
type SpectralRadiusEstimator[T any] interface {
	SpectralRadius(a Operator[T], opts *Options) (float64, error)
}

// Options carries backend tuning knobs. Backends ignore fields that do
// not apply to their method.
type Options struct {
	// Restart is the restart length for Krylov methods such as GMRES.
	Restart int

	// MaxIterations bounds the outer iteration count.
	MaxIterations int

	// Tolerance is the relative residual target.
	Tolerance float64

	// Iterations is the iteration count for power-method style
	// eigenvalue estimation.
	Iterations int

	// Symmetric marks the operator as symmetric (Hermitian), allowing
	// backends to pick cheaper specialized routines.
	Symmetric bool

	// Verbose enables per-iteration diagnostics where supported.
	Verbose bool
}

// NewOptions returns Options populated with defaults.
func NewOptions(optFns ...func(o *Options)) *Options {
	opts := &Options{
		Restart:       50,
		MaxIterations: 1000,
		Tolerance:     1e-6,
		Iterations:    10,
	}
	for _, fn := range optFns {
		fn(opts)
	}
	return opts
}

// WithTolerance sets the relative residual target.
func WithTolerance(tol float64) func(o *Options) {
	return func(o *Options) {
		o.Tolerance = tol
	}
}

// WithMaxIterations bounds the outer iteration count.
func WithMaxIterations(n int) func(o *Options) {
	return func(o *Options) {
		o.MaxIterations = n
	}
}

// WithSymmetric marks the operator as symmetric.
func WithSymmetric() func(o *Options) {
	return func(o *Options) {
		o.Symmetric = true
	}
}

// Result reports what a solve cost and how well it did.
type Result struct {
	// Iterations is the number of iterations performed. Direct methods
	// report zero.
	Iterations int

	// ResidualNorm is the final 2-norm of b - A*x.
	ResidualNorm float64
}

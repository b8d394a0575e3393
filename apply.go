package coomat

import (
	"time"

	"github.com/hupe1980/coomat/numeric"
)

// ApplyOptions selects the operator variant for a single product.
type ApplyOptions struct {
	// Transpose applies Aᵗ instead of A.
	Transpose bool

	// Conjugate conjugates stored values on the fly. Ignored for real
	// value types.
	Conjugate bool
}

// ApplyOption configures a single Apply or ScaledAccumulate call.
type ApplyOption func(*ApplyOptions)

// WithTranspose applies the transposed operator.
func WithTranspose() ApplyOption {
	return func(o *ApplyOptions) {
		o.Transpose = true
	}
}

// WithConjugate conjugates stored values during the product.
func WithConjugate() ApplyOption {
	return func(o *ApplyOptions) {
		o.Conjugate = true
	}
}

func applyApplyOptions(optFns []ApplyOption) ApplyOptions {
	var opts ApplyOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// Apply computes y = A·x (or the transposed/conjugated variant) against
// the committed structure. y is fully overwritten. x and y may alias;
// an aliased product is computed into a scratch buffer first.
func (m *Matrix[T]) Apply(y, x []T, optFns ...ApplyOption) error {
	opts := applyApplyOptions(optFns)

	start := time.Now()
	if err := m.applyInto(y, x, opts, true); err != nil {
		return err
	}
	duration := time.Since(start)

	m.metrics.RecordApply(duration)
	m.logger.LogApply(opts.Transpose, opts.Conjugate, duration)
	return nil
}

// applyInto runs one traversal of the committed structure. When
// guardAlias is set and dst shares its first element with x, the
// product goes through a scratch buffer.
func (m *Matrix[T]) applyInto(dst, x []T, opts ApplyOptions, guardAlias bool) error {
	structure, transpose := m.snapshot()

	inDim, outDim := structure.NumCols(), structure.NumRows()
	if opts.Transpose {
		inDim, outDim = outDim, inDim
	}

	if len(x) != inDim {
		return &ErrDimensionMismatch{Vector: "x", Expected: inDim, Actual: len(x)}
	}
	if len(dst) != outDim {
		return &ErrDimensionMismatch{Vector: "y", Expected: outDim, Actual: len(dst)}
	}

	if guardAlias && len(dst) > 0 && len(x) > 0 && &dst[0] == &x[0] {
		scratch := make([]T, outDim)
		if opts.Transpose {
			transpose.MulVec(scratch, x, opts.Conjugate)
		} else {
			structure.MulVec(scratch, x, opts.Conjugate)
		}
		copy(dst, scratch)
		return nil
	}

	if opts.Transpose {
		transpose.MulVec(dst, x, opts.Conjugate)
	} else {
		structure.MulVec(dst, x, opts.Conjugate)
	}
	return nil
}

// ScaledAccumulate computes y = alpha·A·x + beta·y (with the usual
// transpose/conjugate variants for A).
//
// Scalar short-circuits match the accumulate conventions of BLAS-style
// kernels: when alpha is zero the matrix is never traversed, and when
// beta is zero the prior contents of y are ignored entirely, except
// that alpha == 0 && beta == 0 scales y by zero in place (NaNs in y
// propagate).
func (m *Matrix[T]) ScaledAccumulate(alpha T, x []T, beta T, y []T, optFns ...ApplyOption) error {
	opts := applyApplyOptions(optFns)

	var zero T
	one := T(1)

	if beta == zero {
		if alpha != zero {
			start := time.Now()
			if err := m.applyInto(y, x, opts, true); err != nil {
				return err
			}
			m.metrics.RecordApply(time.Since(start))
		}
		if alpha != one {
			numeric.ScaleInPlace(y, alpha)
		}
		return nil
	}

	structure, _ := m.snapshot()
	outDim := structure.NumRows()
	if opts.Transpose {
		outDim = structure.NumCols()
	}
	if len(y) != outDim {
		return &ErrDimensionMismatch{Vector: "y", Expected: outDim, Actual: len(y)}
	}

	t := make([]T, outDim)
	if alpha != zero {
		start := time.Now()
		if err := m.applyInto(t, x, opts, false); err != nil {
			return err
		}
		m.metrics.RecordApply(time.Since(start))

		if alpha != one {
			numeric.ScaleInPlace(t, alpha)
		}
	}

	if beta != one {
		numeric.ScaleInPlace(y, beta)
	}
	numeric.AddInPlace(y, t)
	return nil
}

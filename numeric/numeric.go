// Package numeric defines the scalar capability shared by all matrix
// instantiations: the closed set of supported value types, conjugation,
// and the small element-wise vector kernels the operator layer builds on.
package numeric

import (
	"math"
	"math/cmplx"
)

// Value is the set of scalar types a matrix can be instantiated with.
// Each type carries an additive identity (its zero value) and, for the
// complex variants, a conjugation operation.
//
// The set is intentionally closed (no ~ approximation elements) so that
// type switches over any(v) are exhaustive.
type Value interface {
	float32 | float64 | complex64 | complex128
}

// Kind identifies a concrete Value instantiation. It is stored in
// snapshot headers so a blob cannot be decoded into the wrong scalar type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat32
	KindFloat64
	KindComplex64
	KindComplex128
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindComplex64:
		return "complex64"
	case KindComplex128:
		return "complex128"
	default:
		return "invalid"
	}
}

// KindOf returns the Kind of the instantiation T.
func KindOf[T Value]() Kind {
	var z T
	switch any(z).(type) {
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case complex64:
		return KindComplex64
	case complex128:
		return KindComplex128
	default:
		return KindInvalid
	}
}

// IsComplex reports whether T is one of the complex instantiations.
func IsComplex[T Value]() bool {
	k := KindOf[T]()
	return k == KindComplex64 || k == KindComplex128
}

// Conj returns the complex conjugate of v. Real values are returned
// unchanged.
func Conj[T Value](v T) T {
	switch x := any(v).(type) {
	case complex64:
		return any(complex(real(x), -imag(x))).(T)
	case complex128:
		return any(cmplx.Conj(x)).(T)
	default:
		return v
	}
}

// Abs returns the magnitude of v as a float64.
func Abs[T Value](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	default:
		return 0
	}
}

// ScaleInPlace multiplies all elements of a by scalar.
func ScaleInPlace[T Value](a []T, scalar T) {
	for i := range a {
		a[i] *= scalar
	}
}

// AddInPlace adds src into dst element-wise.
// Assumes equal lengths (caller's responsibility).
func AddInPlace[T Value](dst, src []T) {
	for i := range dst {
		dst[i] += src[i]
	}
}

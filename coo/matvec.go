package coo

import "github.com/hupe1980/coomat/numeric"

// MulVec computes dst = A·x, or dst = conj(A)·x when conjugate is set.
// dst is zeroed first. Lengths are not validated here; the operator
// layer checks dimensions before dispatching. dst must not alias x.
//
// Conjugation is applied to stored values on the fly, so the structure
// is never mutated during a multiply.
func (s *Structure[T]) MulVec(dst, x []T, conjugate bool) {
	clear(dst)

	if conjugate && numeric.IsComplex[T]() {
		for k := range s.values {
			dst[s.rows[k]] += numeric.Conj(s.values[k]) * x[s.cols[k]]
		}
		return
	}

	for k := range s.values {
		dst[s.rows[k]] += s.values[k] * x[s.cols[k]]
	}
}

// MulVec computes dst = Aᵗ·x through the permutation, or dst = conj(Aᵗ)·x
// when conjugate is set. dst is zeroed first and must not alias x.
func (t *TransposeView[T]) MulVec(dst, x []T, conjugate bool) {
	clear(dst)
	s := t.base

	if conjugate && numeric.IsComplex[T]() {
		for _, p := range t.perm {
			dst[s.cols[p]] += numeric.Conj(s.values[p]) * x[s.rows[p]]
		}
		return
	}

	for _, p := range t.perm {
		dst[s.cols[p]] += s.values[p] * x[s.rows[p]]
	}
}

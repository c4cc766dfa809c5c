package algebra

import (
	"fmt"

	"github.com/matra-math/matra/internal/dense"
)

// Sum returns the sum of all elements of v.
func Sum[T dense.Element](v dense.VectorOperand[T]) T {
	return T(v.Backend().Sum(v.Raw()))
}

// Norm returns the Euclidean (L2) norm of v. The result is non-negative and
// zero exactly when every element is zero.
func Norm[T dense.Element](v dense.VectorOperand[T]) T {
	return T(v.Backend().Norm(v.Raw()))
}

// LpNorm returns the generalized p-norm (sum |v_i|^p)^(1/p). p must be at
// least 1, or math.Inf(1) for the maximum absolute element; any other p
// panics.
func LpNorm[T dense.Element](v dense.VectorOperand[T], p float64) T {
	return T(v.Backend().LpNorm(v.Raw(), p))
}

// FrobeniusNorm returns the Frobenius norm of m, the Euclidean norm of its
// entries taken as one flattened vector.
func FrobeniusNorm[T dense.Element](m dense.MatrixOperand[T]) T {
	return T(m.Backend().Norm(m.Raw()))
}

// Normalize rescales v in place to unit Euclidean norm: v /= Norm(v).
// Returns ErrZeroNorm when the norm is exactly zero, leaving v unchanged.
func Normalize[T dense.Element](v dense.VectorOperand[T]) error {
	backend := v.Backend()
	n := backend.Norm(v.Raw())
	if n == 0 {
		return fmt.Errorf("normalize: %w", dense.ErrZeroNorm)
	}
	backend.DivScalarAssign(v.Raw(), n)
	return nil
}

// NormalizeLp rescales v in place to unit p-norm. Returns ErrZeroNorm when
// the norm is exactly zero, leaving v unchanged. Invalid p panics as in
// LpNorm.
func NormalizeLp[T dense.Element](v dense.VectorOperand[T], p float64) error {
	backend := v.Backend()
	n := backend.LpNorm(v.Raw(), p)
	if n == 0 {
		return fmt.Errorf("normalizelp: %w", dense.ErrZeroNorm)
	}
	backend.DivScalarAssign(v.Raw(), n)
	return nil
}

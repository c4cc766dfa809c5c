package algebra

import (
	"fmt"

	"github.com/matra-math/matra/internal/dense"
)

// MatAdd returns the element-wise sum a + b.
// ErrDimensionMismatch when the shapes differ.
func MatAdd[T dense.Element](a, b dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	if err := sameDims("matadd", a, b); err != nil {
		return nil, err
	}
	backend := a.Backend()
	return dense.MatrixFromRaw[T](backend, backend.Add(a.Raw(), b.Raw())), nil
}

// MatSub returns the element-wise difference a - b.
// ErrDimensionMismatch when the shapes differ.
func MatSub[T dense.Element](a, b dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	if err := sameDims("matsub", a, b); err != nil {
		return nil, err
	}
	backend := a.Backend()
	return dense.MatrixFromRaw[T](backend, backend.Sub(a.Raw(), b.Raw())), nil
}

// MatScale returns m scaled by k: result[i,j] = m[i,j] * k.
func MatScale[T dense.Element](m dense.MatrixOperand[T], k T) *dense.Matrix[T] {
	backend := m.Backend()
	return dense.MatrixFromRaw[T](backend, backend.Scale(m.Raw(), float64(k)))
}

// MatDivScalar returns m divided by k: result[i,j] = m[i,j] / k.
// A zero k is not checked; division follows IEEE semantics.
func MatDivScalar[T dense.Element](m dense.MatrixOperand[T], k T) *dense.Matrix[T] {
	backend := m.Backend()
	return dense.MatrixFromRaw[T](backend, backend.DivScalar(m.Raw(), float64(k)))
}

// MatMul returns the matrix product a x b.
// ErrDimensionMismatch unless a.Cols equals b.Rows.
func MatMul[T dense.Element](a, b dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("matmul: %w ([%d,%d] x [%d,%d])",
			dense.ErrDimensionMismatch, a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	backend := a.Backend()
	return dense.MatrixFromRaw[T](backend, backend.MatMul(a.Raw(), b.Raw())), nil
}

// MatVec returns the matrix-vector product m x v.
// ErrDimensionMismatch unless m.Cols equals v.Len.
func MatVec[T dense.Element](m dense.MatrixOperand[T], v dense.VectorOperand[T]) (*dense.Vector[T], error) {
	if m.Cols() != v.Len() {
		return nil, fmt.Errorf("matvec: %w ([%d,%d] x [%d])",
			dense.ErrDimensionMismatch, m.Rows(), m.Cols(), v.Len())
	}
	backend := m.Backend()
	return dense.VectorFromRaw[T](backend, backend.MatVec(m.Raw(), v.Raw())), nil
}

// VecMat returns the row-vector times matrix product v x m, treating v as a
// transposed row vector.
// ErrDimensionMismatch unless v.Len equals m.Rows.
func VecMat[T dense.Element](v dense.VectorOperand[T], m dense.MatrixOperand[T]) (*dense.Vector[T], error) {
	if v.Len() != m.Rows() {
		return nil, fmt.Errorf("vecmat: %w ([%d] x [%d,%d])",
			dense.ErrDimensionMismatch, v.Len(), m.Rows(), m.Cols())
	}
	backend := v.Backend()
	return dense.VectorFromRaw[T](backend, backend.VecMat(v.Raw(), m.Raw())), nil
}

// Transpose returns the transpose of m. Transposing twice restores the
// original element-for-element.
func Transpose[T dense.Element](m dense.MatrixOperand[T]) *dense.Matrix[T] {
	backend := m.Backend()
	return dense.MatrixFromRaw[T](backend, backend.Transpose(m.Raw()))
}

// Inverse returns the multiplicative inverse of a square matrix.
// ErrNonSquare for a non-square operand; ErrSingular when the backend finds
// the matrix singular.
func Inverse[T dense.Element](m dense.MatrixOperand[T]) (*dense.Matrix[T], error) {
	if m.Rows() != m.Cols() {
		return nil, fmt.Errorf("inverse: %w ([%d,%d])", dense.ErrNonSquare, m.Rows(), m.Cols())
	}
	backend := m.Backend()
	raw, err := backend.Inverse(m.Raw())
	if err != nil {
		return nil, fmt.Errorf("inverse: %w", err)
	}
	return dense.MatrixFromRaw[T](backend, raw), nil
}
